// SPDX-License-Identifier: MIT

// Package simplex is a small dense LP optimizer implementing solver.Optimizer.
//
// Method:
//
//	Two-phase tableau simplex with Bland's rule. Free variables are split
//	(x = x⁺ − x⁻), every inequality row gets a slack, every row an
//	artificial. Artificial columns stay in the tableau after phase 1 so
//	row multipliers can be read off their reduced costs.
//
// Accepted models:
//
//	Affine constraints in GreaterThan, LessThan, EqualTo, Nonnegatives,
//	Nonpositives, Zeros and Reals; affine (or purely linear quadratic)
//	objectives. Parameters are ordinary variables here.
//
// Duals follow the solver package convention: ≥ rows get y ≥ 0, ≤ rows
// y ≤ 0, and maximization duals equal those of min −f.
//
// Attributes:
//
//	"tolerance"        float64, pivot/feasibility tolerance (default 1e-9)
//	"iteration_limit"  int, total pivots over both phases (default 10000)
//
// The optimizer is meant for tests and the CLI on small problems, not for
// production-size LPs.
package simplex
