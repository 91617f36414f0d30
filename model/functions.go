// SPDX-License-Identifier: MIT

// Package model: function kinds and row extraction.

package model

import "fmt"

// VariableID identifies a variable inside one Model. Zero is never issued.
type VariableID int64

// ConstraintID identifies a constraint inside one Model. Zero is never issued.
type ConstraintID int64

// FunctionKind tags the concrete Function variants.
type FunctionKind int

// Function kinds.
const (
	KindVariableIndex FunctionKind = iota + 1
	KindScalarAffine
	KindScalarQuadratic
	KindVectorOfVariables
	KindVectorAffine
)

var kindNames = map[FunctionKind]string{
	KindVariableIndex:     "VariableIndex",
	KindScalarAffine:      "ScalarAffineFunction",
	KindScalarQuadratic:   "ScalarQuadraticFunction",
	KindVectorOfVariables: "VectorOfVariables",
	KindVectorAffine:      "VectorAffineFunction",
}

// String returns the conventional function name.
func (k FunctionKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("FunctionKind(%d)", int(k))
}

// Function is implemented by the five function variants of this package.
type Function interface {
	Kind() FunctionKind
	// Dimension is the output length: 1 for scalar functions.
	Dimension() int
	// Variables lists referenced variables in term order (repeats allowed).
	Variables() []VariableID
}

// AffineTerm is Coef·Var.
type AffineTerm struct {
	Coef float64
	Var  VariableID
}

// QuadraticTerm is Coef·Var1·Var2 (½·Coef·Var1² on the diagonal).
type QuadraticTerm struct {
	Coef float64
	Var1 VariableID
	Var2 VariableID
}

// VectorAffineTerm places an AffineTerm on output row Row (0-based).
type VectorAffineTerm struct {
	Row  int
	Term AffineTerm
}

// VariableIndex is the single variable Var.
type VariableIndex struct {
	Var VariableID
}

// ScalarAffine is Σ Terms + Constant.
type ScalarAffine struct {
	Terms    []AffineTerm
	Constant float64
}

// ScalarQuadratic is Σ Quadratic + Σ Affine + Constant.
type ScalarQuadratic struct {
	Quadratic []QuadraticTerm
	Affine    []AffineTerm
	Constant  float64
}

// VectorOfVariables stacks Vars.
type VectorOfVariables struct {
	Vars []VariableID
}

// VectorAffine is A·x + Constants with A given by Terms; len(Constants) is the dimension.
type VectorAffine struct {
	Terms     []VectorAffineTerm
	Constants []float64
}

func (VariableIndex) Kind() FunctionKind     { return KindVariableIndex }
func (ScalarAffine) Kind() FunctionKind      { return KindScalarAffine }
func (ScalarQuadratic) Kind() FunctionKind   { return KindScalarQuadratic }
func (VectorOfVariables) Kind() FunctionKind { return KindVectorOfVariables }
func (VectorAffine) Kind() FunctionKind      { return KindVectorAffine }

func (VariableIndex) Dimension() int       { return 1 }
func (ScalarAffine) Dimension() int        { return 1 }
func (ScalarQuadratic) Dimension() int     { return 1 }
func (f VectorOfVariables) Dimension() int { return len(f.Vars) }
func (f VectorAffine) Dimension() int      { return len(f.Constants) }

func (f VariableIndex) Variables() []VariableID { return []VariableID{f.Var} }

func (f ScalarAffine) Variables() []VariableID {
	out := make([]VariableID, len(f.Terms))
	for i, t := range f.Terms {
		out[i] = t.Var
	}
	return out
}

func (f ScalarQuadratic) Variables() []VariableID {
	out := make([]VariableID, 0, 2*len(f.Quadratic)+len(f.Affine))
	for _, q := range f.Quadratic {
		out = append(out, q.Var1, q.Var2)
	}
	for _, t := range f.Affine {
		out = append(out, t.Var)
	}
	return out
}

func (f VectorOfVariables) Variables() []VariableID {
	return append([]VariableID(nil), f.Vars...)
}

func (f VectorAffine) Variables() []VariableID {
	out := make([]VariableID, len(f.Terms))
	for i, t := range f.Terms {
		out[i] = t.Term.Var
	}
	return out
}

// NewScalarAffine builds Σ coefs[k]·vars[k] + constant. Lengths must match.
func NewScalarAffine(coefs []float64, vars []VariableID, constant float64) (ScalarAffine, error) {
	if len(coefs) != len(vars) {
		return ScalarAffine{}, modelErrorf("NewScalarAffine", ErrDimensionMismatch)
	}
	terms := make([]AffineTerm, len(vars))
	for i := range vars {
		terms[i] = AffineTerm{Coef: coefs[i], Var: vars[i]}
	}

	return ScalarAffine{Terms: terms, Constant: constant}, nil
}

// Row is one output component of an affine function: Σ Terms + Constant.
type Row struct {
	Terms    []AffineTerm
	Constant float64
}

// Rows splits an affine function into its output components.
// Quadratic functions fail with ErrNotAffine; a VectorAffine term whose Row
// is outside [0, dim) fails with ErrDimensionMismatch.
// Complexity: O(terms + dim).
func Rows(f Function) ([]Row, error) {
	switch g := f.(type) {
	case nil:
		return nil, modelErrorf("Rows", ErrNilFunction)
	case VariableIndex:
		return []Row{{Terms: []AffineTerm{{Coef: 1, Var: g.Var}}}}, nil
	case ScalarAffine:
		return []Row{{Terms: append([]AffineTerm(nil), g.Terms...), Constant: g.Constant}}, nil
	case VectorOfVariables:
		rows := make([]Row, len(g.Vars))
		for i, v := range g.Vars {
			rows[i] = Row{Terms: []AffineTerm{{Coef: 1, Var: v}}}
		}
		return rows, nil
	case VectorAffine:
		rows := make([]Row, len(g.Constants))
		for i, c := range g.Constants {
			rows[i].Constant = c
		}
		for _, t := range g.Terms {
			if t.Row < 0 || t.Row >= len(rows) {
				return nil, modelErrorf("Rows", ErrDimensionMismatch)
			}
			rows[t.Row].Terms = append(rows[t.Row].Terms, t.Term)
		}
		return rows, nil
	default:
		return nil, modelErrorf("Rows("+f.Kind().String()+")", ErrNotAffine)
	}
}

// Evaluate computes f at the point given by values (missing variables read 0).
func Evaluate(f Function, values map[VariableID]float64) ([]float64, error) {
	if q, ok := f.(ScalarQuadratic); ok {
		v := q.Constant
		for _, t := range q.Affine {
			v += t.Coef * values[t.Var]
		}
		for _, t := range q.Quadratic {
			if t.Var1 == t.Var2 {
				v += 0.5 * t.Coef * values[t.Var1] * values[t.Var1]
			} else {
				v += t.Coef * values[t.Var1] * values[t.Var2]
			}
		}
		return []float64{v}, nil
	}
	rows, err := Rows(f)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(rows))
	for i, r := range rows {
		v := r.Constant
		for _, t := range r.Terms {
			v += t.Coef * values[t.Var]
		}
		out[i] = v
	}

	return out, nil
}

// cloneFunction returns a deep copy so stored functions cannot be mutated
// through caller-held slices.
func cloneFunction(f Function) Function {
	switch g := f.(type) {
	case ScalarAffine:
		g.Terms = append([]AffineTerm(nil), g.Terms...)
		return g
	case ScalarQuadratic:
		g.Quadratic = append([]QuadraticTerm(nil), g.Quadratic...)
		g.Affine = append([]AffineTerm(nil), g.Affine...)
		return g
	case VectorOfVariables:
		g.Vars = append([]VariableID(nil), g.Vars...)
		return g
	case VectorAffine:
		g.Terms = append([]VectorAffineTerm(nil), g.Terms...)
		g.Constants = append([]float64(nil), g.Constants...)
		return g
	default:
		return f
	}
}
