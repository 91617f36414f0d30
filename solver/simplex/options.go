// SPDX-License-Identifier: MIT

package simplex

import "go.uber.org/zap"

const (
	// AttrTolerance names the tolerance attribute.
	AttrTolerance = "tolerance"
	// AttrIterationLimit names the iteration-limit attribute.
	AttrIterationLimit = "iteration_limit"

	// DefaultTolerance is the pivot and feasibility tolerance of New.
	DefaultTolerance = 1e-9
	// DefaultIterationLimit is the pivot cap of New.
	DefaultIterationLimit = 10000
)

// Option customizes an Optimizer.
type Option func(*Optimizer)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("simplex: WithLogger(nil)")
	}
	return func(o *Optimizer) { o.log = l }
}

// WithTolerance sets the pivot tolerance. Panics if tol <= 0.
func WithTolerance(tol float64) Option {
	if !(tol > 0) {
		panic("simplex: WithTolerance(tol<=0)")
	}
	return func(o *Optimizer) { o.tol = tol }
}

// WithIterationLimit caps the number of pivots. Panics if n <= 0.
func WithIterationLimit(n int) Option {
	if n <= 0 {
		panic("simplex: WithIterationLimit(n<=0)")
	}
	return func(o *Optimizer) { o.maxIter = n }
}
