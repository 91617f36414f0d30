// SPDX-License-Identifier: MIT
// Package: conedual/dualize
//
// options.go — per-call Options and functional options for New.
//
// Contract:
//   • Options is the explicit per-call configuration (names, parameters,
//     ignore-objective); its zero value is valid.
//   • Option constructors PANIC on nil inputs (programmer error); Dualize
//     itself never panics on model content.

package dualize

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/model"
)

// DualNames holds the prefixes used to name generated dual entities.
// Empty primal names stay empty regardless of prefix.
type DualNames struct {
	VariablePrefix   string // dual variable of constraint c: VariablePrefix + name(c)
	ConstraintPrefix string // stationarity row of variable x: ConstraintPrefix + name(x)
	ParameterPrefix  string // dual copy of parameter p: ParameterPrefix + name(p)
	QuadSlackPrefix  string // quadratic slack of x: QuadSlackPrefix + name(x)
}

// Options configures a single Dualize call.
type Options struct {
	DualNames DualNames
	// VariableParameters lists extra variables treated as parameters, on top
	// of those flagged on the model.
	VariableParameters []model.VariableID
	// IgnoreObjective skips the dual objective and yields a feasibility dual.
	IgnoreObjective bool
}

// Option customizes a Dualizer.
type Option func(*Dualizer)

// WithLogger sets the structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("dualize: WithLogger(nil)")
	}
	return func(d *Dualizer) {
		d.log = l
	}
}

// WithRegistry replaces the built-in cone registry. Panics on nil.
func WithRegistry(r *cone.Registry) Option {
	if r == nil {
		panic("dualize: WithRegistry(nil)")
	}
	return func(d *Dualizer) {
		d.reg = r
	}
}

// WithClassifier replaces the default support table. Panics on nil.
func WithClassifier(c *Classifier) Option {
	if c == nil {
		panic("dualize: WithClassifier(nil)")
	}
	return func(d *Dualizer) {
		d.cls = c
	}
}
