// SPDX-License-Identifier: MIT

package dualopt

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/conedual/dualize"
	"github.com/katalvlaran/conedual/model"
	"github.com/katalvlaran/conedual/solver"
)

// Option customizes a DualOptimizer.
type Option func(*DualOptimizer)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("dualopt: WithLogger(nil)")
	}
	return func(o *DualOptimizer) { o.log = l }
}

// WithDualizer uses d (custom registry/classifier). Panics on nil.
func WithDualizer(d *dualize.Dualizer) Option {
	if d == nil {
		panic("dualopt: WithDualizer(nil)")
	}
	return func(o *DualOptimizer) { o.dz = d }
}

// WithOptions sets the dualization options (names, parameters).
func WithOptions(opts dualize.Options) Option {
	return func(o *DualOptimizer) { o.opts = opts }
}

// Termination is the wrapped status together with the model it describes.
type Termination struct {
	Status solver.Status
	Model  *model.Model // the dual model
}

// DualOptimizer implements solver.Optimizer by solving the dual of its model
// with a wrapped optimizer. Not safe for concurrent use.
type DualOptimizer struct {
	id    uuid.UUID
	inner solver.Optimizer
	dz    *dualize.Dualizer
	opts  dualize.Options
	log   *zap.Logger
	dual  *dualize.DualProblem
}

var _ solver.Optimizer = (*DualOptimizer)(nil)

// New wraps inner. Panics on nil inner.
func New(inner solver.Optimizer, opts ...Option) *DualOptimizer {
	if inner == nil {
		panic("dualopt: New(nil)")
	}
	o := &DualOptimizer{
		id:    uuid.New(),
		inner: inner,
		dz:    dualize.New(),
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.log = o.log.With(zap.String("dual_optimizer", o.id.String()))

	return o
}

// NewFactory returns a Constructor producing a DualOptimizer around a fresh
// optimizer from ctor. Panics on nil ctor.
func NewFactory(ctor solver.Constructor, opts ...Option) solver.Constructor {
	if ctor == nil {
		panic("dualopt: NewFactory(nil)")
	}
	return func() (solver.Optimizer, error) {
		inner, err := ctor()
		if err != nil {
			return nil, collaboratorErrorf("NewFactory", err)
		}
		return New(inner, opts...), nil
	}
}

// ID identifies this wrapper in logs.
func (o *DualOptimizer) ID() uuid.UUID { return o.id }

// Inner returns the wrapped optimizer.
func (o *DualOptimizer) Inner() solver.Optimizer { return o.inner }

// DualProblem returns the dual built by the last SetModel (nil before).
func (o *DualOptimizer) DualProblem() *dualize.DualProblem { return o.dual }

// SetModel dualizes m and loads the dual into the wrapped optimizer. On error
// the previous model (if any) stays loaded.
func (o *DualOptimizer) SetModel(m model.ModelLike) error {
	dp, err := o.dz.Dualize(m, o.opts)
	if err != nil {
		return dualoptErrorf("SetModel", err)
	}
	if err := o.inner.SetModel(dp.Model); err != nil {
		return collaboratorErrorf("SetModel", err)
	}
	o.dual = dp
	o.log.Debug("dual model loaded",
		zap.Int("dual_variables", dp.Model.NumVariables()),
		zap.Int("dual_constraints", dp.Model.NumConstraints()),
		zap.Stringer("dual_sense", dp.Model.Objective().Sense))

	return nil
}

// Optimize solves the dual; it blocks for as long as the wrapped optimizer does.
func (o *DualOptimizer) Optimize() error {
	if o.dual == nil {
		return dualoptErrorf("Optimize", ErrNoModel)
	}
	if err := o.inner.Optimize(); err != nil {
		return collaboratorErrorf("Optimize", err)
	}
	o.log.Debug("dual optimized", zap.Stringer("status", o.inner.TerminationStatus()))

	return nil
}

// PrimalValue returns x_v as minus the multiplier of v's stationarity row;
// parameters return the value of their dual copy.
func (o *DualOptimizer) PrimalValue(v model.VariableID) (float64, error) {
	const tag = "PrimalValue"
	if o.dual == nil {
		return 0, dualoptErrorf(tag, ErrNoModel)
	}
	if p, err := o.dual.Map.DualParameter(v); err == nil {
		val, err := o.inner.PrimalValue(p)
		if err != nil {
			return 0, collaboratorErrorf(tag, err)
		}
		return val, nil
	}
	row, err := o.dual.Map.DualConstraint(v)
	if err != nil {
		return 0, dualoptErrorf(tag, err)
	}
	lambda, err := o.inner.DualValue(row)
	if err != nil {
		return 0, collaboratorErrorf(tag, err)
	}
	if len(lambda) != 1 {
		return 0, lengthErrorf(tag, len(lambda), 1)
	}

	return -lambda[0], nil
}

// DualValue returns the values of c's dual variables.
func (o *DualOptimizer) DualValue(c model.ConstraintID) ([]float64, error) {
	const tag = "DualValue"
	if o.dual == nil {
		return nil, dualoptErrorf(tag, ErrNoModel)
	}
	ys, err := o.dual.Map.DualVariables(c)
	if err != nil {
		return nil, dualoptErrorf(tag, err)
	}
	out := make([]float64, len(ys))
	for k, y := range ys {
		if out[k], err = o.inner.PrimalValue(y); err != nil {
			return nil, collaboratorErrorf(tag, err)
		}
	}

	return out, nil
}

// ConstraintPrimal returns f_c(x): the multiplier of "y_c ∈ C*" plus the set
// constants removed during normalization. Free dual variables have a zero
// slack.
func (o *DualOptimizer) ConstraintPrimal(c model.ConstraintID) ([]float64, error) {
	const tag = "ConstraintPrimal"
	if o.dual == nil {
		return nil, dualoptErrorf(tag, ErrNoModel)
	}
	out, err := o.dual.Map.Constants(c)
	if err != nil {
		return nil, dualoptErrorf(tag, err)
	}
	dc, err := o.dual.Map.DualSetConstraint(c)
	if err != nil {
		return out, nil
	}
	s, err := o.inner.DualValue(dc)
	if err != nil {
		return nil, collaboratorErrorf(tag, err)
	}
	if len(s) != len(out) {
		return nil, lengthErrorf(tag, len(s), len(out))
	}
	for k := range out {
		out[k] += s[k]
	}

	return out, nil
}

// ObjectiveValue returns the dual objective value.
func (o *DualOptimizer) ObjectiveValue() (float64, error) {
	if o.dual == nil {
		return 0, dualoptErrorf("ObjectiveValue", ErrNoModel)
	}
	v, err := o.inner.ObjectiveValue()
	if err != nil {
		return 0, collaboratorErrorf("ObjectiveValue", err)
	}
	return v, nil
}

// TerminationStatus returns the wrapped optimizer's status for the dual model.
func (o *DualOptimizer) TerminationStatus() solver.Status {
	return o.inner.TerminationStatus()
}

// Termination returns the status paired with the dual model it refers to.
func (o *DualOptimizer) Termination() Termination {
	t := Termination{Status: o.inner.TerminationStatus()}
	if o.dual != nil {
		t.Model = o.dual.Model
	}
	return t
}

// SetAttribute forwards to the wrapped optimizer.
func (o *DualOptimizer) SetAttribute(name string, value any) error {
	if err := o.inner.SetAttribute(name, value); err != nil {
		return collaboratorErrorf("SetAttribute", err)
	}
	return nil
}

// Attribute forwards to the wrapped optimizer.
func (o *DualOptimizer) Attribute(name string) (any, error) {
	v, err := o.inner.Attribute(name)
	if err != nil {
		return nil, collaboratorErrorf("Attribute", err)
	}
	return v, nil
}
