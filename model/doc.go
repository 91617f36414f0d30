// SPDX-License-Identifier: MIT

// Package model holds conic optimization models: variables (optionally flagged
// as parameters), constraints "function ∈ cone" and a scalar objective.
//
// Functions form a closed tagged variant (FunctionKind):
//
//	VariableIndex      x_i
//	ScalarAffine       Σ a_k x_k + b
//	ScalarQuadratic    ½ xᵀPx + aᵀx + b     (objective only)
//	VectorOfVariables  [x_i1, …, x_id]
//	VectorAffine       A x + b
//
// Quadratic terms follow the usual conic-modeling convention: a diagonal term
// {c, x_i, x_i} stands for ½·c·x_i², an off-diagonal term {c, x_i, x_j} for
// c·x_i·x_j.
//
// Model is safe for concurrent use (single sync.RWMutex). ModelLike is the
// read-only view consumed by the dualizer, so other model stores can be
// dualized without copying into a *Model.
//
// Stack extracts the dense conic form (A, b, cones) of a model's constraints;
// solvers and tests use it to reason about the constraint matrix directly.
package model
