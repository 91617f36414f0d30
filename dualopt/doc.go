// SPDX-License-Identifier: MIT

// Package dualopt solves a model through its dual: DualOptimizer dualizes the
// model it is given, hands the dual to a wrapped solver.Optimizer and answers
// primal queries by reading the dual solution back through the
// PrimalDualMap.
//
// Value translation (x primal, y dual variables, λ stationarity multipliers):
//
//	PrimalValue(x_j)      = −λ_j                  (λ_j: DualValue of row j)
//	PrimalValue(p)        = value of p's dual copy (parameters)
//	DualValue(c)          = [y_c,1 … y_c,d]
//	ConstraintPrimal(c)   = s_c + constants(c)    (s_c: DualValue of y_c ∈ C*)
//	ObjectiveValue        = inner objective value  (strong duality assumed)
//
// Status:
//
//	TerminationStatus is the wrapped optimizer's status, unchanged: it
//	describes the dual model. Termination pairs it with that model so callers
//	can reason about primal/dual infeasibility themselves.
//
// Errors from the wrapped optimizer are wrapped with ErrCollaborator; the
// original error stays reachable through errors.Is / errors.As.
package dualopt
