// SPDX-License-Identifier: MIT

// Package dualize derives the conic dual of a model together with a
// bidirectional primal↔dual index map.
//
// What:
//
//	For a primal with normalized constraints A_i x + D_i z + b_i ∈ C_i
//	(x decision variables, z parameters) and objective
//	a₀ᵀx + ½xᵀP₁x + xᵀP₂z + ½zᵀP₃z + d₀ᵀz + b₀, Dualize builds
//
//	  opt  −σ Σ_i ⟨b_i + D_i z, y_i⟩_{C_i} − ½wᵀP₁w + b₀ + d₀ᵀz + ½zᵀP₃z
//	  s.t. Σ_i A_iᵀ y_i − σ P₁w − σ P₂z = σ a₀      (one row per x_j)
//	       y_i ∈ C_i*
//
//	with σ = +1 for minimization (dual maximizes) and σ = −1 for
//	maximization (dual minimizes). Aᵀy is expanded under the cone's own
//	inner product: the coefficient of y_{i,k} in row j is ⟨A_i[:,j], e_k⟩.
//	The free slack w exists only for variables touched by P₁ and equals x
//	at an optimum.
//
// Scalar sets:
//
//	f ≥ β, f ≤ β, f = β are normalized to f − β ∈ ℝ₊, ℝ₋, {0}; their dual
//	variables are y ≥ 0, y ≤ 0 and a free y (no dual-set constraint).
//
// Atomicity:
//
//	Every check (classifier table, registry lookups, parameter placement)
//	runs before the dual model is allocated. Dualize returns either a
//	complete DualProblem or an error, never both.
//
// Concurrency:
//
//	A Dualizer is read-only after construction; Dualize may be called from
//	many goroutines on independent models. RegisterCone mutates the
//	registry and classifier and belongs to setup.
//
// AI-Hints:
//   - Use Options.VariableParameters to treat extra variables as parameters
//     without flagging them on the model.
//   - IgnoreObjective yields a feasibility dual (KKT-style compositions).
//   - Parameters map to parameter variables of the dual model; their
//     stationarity/dual-variable lookups fail with ErrNoDualEntity.
package dualize
