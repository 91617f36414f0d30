// SPDX-License-Identifier: MIT

// Package solver defines the contract of a solve-capable collaborator: load a
// model, optimize it, answer primal/dual value queries and pass configuration
// attributes through verbatim.
//
// Value conventions:
//   - PrimalValue(v) is the value of variable v.
//   - DualValue(c) holds one multiplier per component of constraint c, in
//     the dual cone of c's set. For maximization problems the multipliers
//     are those of the equivalent minimization of −f.
//   - ConstraintPrimal(c) is f_c(x) at the solution.
//
// Optimize blocks for as long as the implementation needs; the contract
// carries no timeout or cancellation.
package solver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/conedual/model"
)

var (
	// ErrNotOptimized indicates a value query before a successful Optimize.
	ErrNotOptimized = errors.New("solver: no solution available")

	// ErrUnsupportedAttribute indicates an attribute name the optimizer
	// does not know, or a value of the wrong type.
	ErrUnsupportedAttribute = errors.New("solver: unsupported attribute")

	// ErrUnsupportedModel indicates a model the optimizer cannot load.
	ErrUnsupportedModel = errors.New("solver: unsupported model")
)

// Status is a termination status.
type Status int

// Statuses.
const (
	OptimizeNotCalled Status = iota
	Optimal
	Infeasible
	DualInfeasible
	IterationLimit
	NumericalError
)

var statusNames = map[Status]string{
	OptimizeNotCalled: "OPTIMIZE_NOT_CALLED",
	Optimal:           "OPTIMAL",
	Infeasible:        "INFEASIBLE",
	DualInfeasible:    "DUAL_INFEASIBLE",
	IterationLimit:    "ITERATION_LIMIT",
	NumericalError:    "NUMERICAL_ERROR",
}

// String returns the upper-case status name.
func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Optimizer is the solve-capable collaborator.
type Optimizer interface {
	SetModel(m model.ModelLike) error
	Optimize() error
	PrimalValue(v model.VariableID) (float64, error)
	DualValue(c model.ConstraintID) ([]float64, error)
	ConstraintPrimal(c model.ConstraintID) ([]float64, error)
	ObjectiveValue() (float64, error)
	TerminationStatus() Status
	// SetAttribute sets a solver-specific attribute (e.g. an iteration limit).
	SetAttribute(name string, value any) error
	Attribute(name string) (any, error)
}

// Constructor builds a fresh Optimizer.
type Constructor func() (Optimizer, error)

// WithAttributes returns a Constructor that applies attrs to every optimizer
// ctor builds. Attribute order follows the sorted names for determinism.
func WithAttributes(ctor Constructor, attrs map[string]any) Constructor {
	if ctor == nil {
		panic("solver: WithAttributes(nil)")
	}
	names := sortedKeys(attrs)
	return func() (Optimizer, error) {
		opt, err := ctor()
		if err != nil {
			return nil, err
		}
		for _, n := range names {
			if err := opt.SetAttribute(n, attrs[n]); err != nil {
				return nil, fmt.Errorf("WithAttributes(%s): %w", n, err)
			}
		}
		return opt, nil
	}
}
