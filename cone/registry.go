// SPDX-License-Identifier: MIT

// Package cone: kind-keyed registry of dual-set and inner-product functions.
//
// Policy:
//   - Every kind MUST have a DualSet function; InnerProduct is optional and
//     defaults to Dot.
//   - DualSet results are checked for dimension equality on every call, so a
//     faulty user function surfaces as ErrDualDimension instead of a
//     malformed dual model.
//   - No global state: each Registry is an explicit value, pre-populated with
//     the built-in kinds by NewRegistry.

package cone

import "sort"

// DualSetFunc maps a cone to its dual cone (same dimension).
type DualSetFunc func(s Set) (Set, error)

// InnerProductFunc computes the natural inner product ⟨x, y⟩ of a cone.
// It must be bilinear; the dualizer relies on that to expand it over unit vectors.
type InnerProductFunc func(x, y []float64, s Set) float64

// Capability is implemented by user cone types that know their dual.
type Capability interface {
	DualSet(s Set) (Set, error)
}

// InnerProducer is optionally implemented by a Capability with a non-Euclidean
// inner product.
type InnerProducer interface {
	InnerProduct(x, y []float64, s Set) float64
}

type entry struct {
	dual  DualSetFunc
	inner InnerProductFunc // nil → Dot
}

// Registry maps cone kinds to their dual-set and inner-product functions.
type Registry struct {
	entries map[Kind]entry
}

// NewRegistry returns a registry pre-populated with every built-in kind.
// Complexity: O(number of built-in kinds).
func NewRegistry() *Registry {
	r := &Registry{entries: make(map[Kind]entry, 16)}
	for kind, fn := range builtinDuals {
		r.entries[kind] = entry{dual: fn}
	}
	r.entries[PSDTriangle] = entry{dual: builtinDuals[PSDTriangle], inner: TriangleInnerProduct}

	return r
}

// Register adds or replaces kind. dual is required; inner may be nil.
func (r *Registry) Register(kind Kind, dual DualSetFunc, inner InnerProductFunc) error {
	if kind == "" {
		return coneErrorf("Register", ErrEmptyKind)
	}
	if dual == nil {
		return coneErrorf("Register("+string(kind)+")", ErrMissingDualSet)
	}
	r.entries[kind] = entry{dual: dual, inner: inner}

	return nil
}

// RegisterCapability registers kind from a Capability; an InnerProducer
// implementation is picked up when present.
func (r *Registry) RegisterCapability(kind Kind, c Capability) error {
	if c == nil {
		return coneErrorf("RegisterCapability("+string(kind)+")", ErrMissingDualSet)
	}
	var inner InnerProductFunc
	if ip, ok := c.(InnerProducer); ok {
		inner = ip.InnerProduct
	}

	return r.Register(kind, c.DualSet, inner)
}

// Registered reports whether kind is known to r.
func (r *Registry) Registered(kind Kind) bool {
	_, ok := r.entries[kind]
	return ok
}

// Kinds returns the registered kinds in lexical order.
func (r *Registry) Kinds() []Kind {
	out := make([]Kind, 0, len(r.entries))
	for k := range r.entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// DualSet returns the dual cone of s.
//
// Errors:
//   - ErrUnknownCone when s.Kind is not registered.
//   - ErrMissingDualSet when the entry has no dual function.
//   - ErrDualDimension when the result has a different dimension.
//   - whatever the user DualSetFunc returns, wrapped with the kind.
func (r *Registry) DualSet(s Set) (Set, error) {
	e, ok := r.entries[s.Kind]
	if !ok {
		return Set{}, coneErrorf("DualSet("+string(s.Kind)+")", ErrUnknownCone)
	}
	if e.dual == nil {
		return Set{}, coneErrorf("DualSet("+string(s.Kind)+")", ErrMissingDualSet)
	}
	d, err := e.dual(s)
	if err != nil {
		return Set{}, coneErrorf("DualSet("+string(s.Kind)+")", err)
	}
	if d.Dim != s.Dim {
		return Set{}, coneErrorf("DualSet("+string(s.Kind)+")", ErrDualDimension)
	}

	return d, nil
}

// InnerProduct returns ⟨x, y⟩ under the inner product registered for s.Kind.
// x and y must both have length s.Dim.
func (r *Registry) InnerProduct(x, y []float64, s Set) (float64, error) {
	e, ok := r.entries[s.Kind]
	if !ok {
		return 0, coneErrorf("InnerProduct("+string(s.Kind)+")", ErrUnknownCone)
	}
	if len(x) != s.Dim || len(y) != s.Dim {
		return 0, coneErrorf("InnerProduct("+string(s.Kind)+")", ErrLengthMismatch)
	}
	if e.inner == nil {
		return Dot(x, y), nil
	}

	return e.inner(x, y, s), nil
}

// Dot is the Euclidean inner product. Lengths are assumed equal.
func Dot(x, y []float64) float64 {
	var s float64
	for i := range x {
		s += x[i] * y[i]
	}

	return s
}

// TriangleInnerProduct is the trace inner product ⟨X, Y⟩ = tr(XY) expressed
// on upper-triangular column-wise vectorisations: diagonal entries count once,
// off-diagonal entries twice.
func TriangleInnerProduct(x, y []float64, s Set) float64 {
	var (
		sum float64
		k   int
	)
	for j := 0; j < s.Side; j++ {
		for i := 0; i <= j; i++ {
			if i == j {
				sum += x[k] * y[k]
			} else {
				sum += 2 * x[k] * y[k]
			}
			k++
		}
	}

	return sum
}

// ---------- built-in duals ----------

func selfDual(s Set) (Set, error) { return s, nil }

func withKind(kind Kind) DualSetFunc {
	return func(s Set) (Set, error) {
		d := s
		d.Kind = kind
		return d, nil
	}
}

var builtinDuals = map[Kind]DualSetFunc{
	Nonnegatives:           selfDual,
	Nonpositives:           selfDual,
	Zeros:                  withKind(Reals),
	Reals:                  withKind(Zeros),
	SecondOrderCone:        selfDual,
	RotatedSecondOrderCone: selfDual,
	PSDTriangle:            selfDual,
	ExponentialCone:        withKind(DualExponentialCone),
	DualExponentialCone:    withKind(ExponentialCone),
	PowerCone:              withKind(DualPowerCone),
	DualPowerCone:          withKind(PowerCone),
	// Scalar sets are normalised (f − Bound ∈ ℝ₊/ℝ₋/{0}) before dualization,
	// so their duals carry a zero bound.
	GreaterThan: func(Set) (Set, error) { return NewGreaterThan(0), nil },
	LessThan:    func(Set) (Set, error) { return NewLessThan(0), nil },
	EqualTo:     func(Set) (Set, error) { return NewReals(1), nil },
}
