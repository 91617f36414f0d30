// SPDX-License-Identifier: MIT

// Package modelio: the Document tree shared by the YAML and TOML codecs.

package modelio

import (
	"strconv"

	"github.com/katalvlaran/conedual/cone"
	"github.com/katalvlaran/conedual/model"
)

// Document is the serialized form of a model. Variables are referenced by
// name everywhere, so names must be unique and non-empty.
type Document struct {
	Variables   []string        `yaml:"variables" toml:"variables"`
	Parameters  []string        `yaml:"parameters,omitempty" toml:"parameters,omitempty"`
	Objective   *ObjectiveDoc   `yaml:"objective,omitempty" toml:"objective,omitempty"`
	Constraints []ConstraintDoc `yaml:"constraints,omitempty" toml:"constraints,omitempty"`
}

// ObjectiveDoc is the objective: a sense ("min", "max", "feasibility") and
// a scalar function.
type ObjectiveDoc struct {
	Sense    string      `yaml:"sense" toml:"sense"`
	Function FunctionDoc `yaml:"function" toml:"function"`
}

// ConstraintDoc is "function ∈ set".
type ConstraintDoc struct {
	Name     string      `yaml:"name,omitempty" toml:"name,omitempty"`
	Function FunctionDoc `yaml:"function" toml:"function"`
	Set      SetDoc      `yaml:"set" toml:"set"`
}

// FunctionDoc holds any of the five function kinds; Kind selects which
// fields are read.
//
//	VariableIndex            var
//	ScalarAffineFunction     terms, constant
//	ScalarQuadraticFunction  quadratic, terms, constant
//	VectorOfVariables        vars
//	VectorAffineFunction     terms (with row), constants
type FunctionDoc struct {
	Kind      string    `yaml:"kind" toml:"kind"`
	Var       string    `yaml:"var,omitempty" toml:"var,omitempty"`
	Vars      []string  `yaml:"vars,omitempty" toml:"vars,omitempty"`
	Terms     []TermDoc `yaml:"terms,omitempty" toml:"terms,omitempty"`
	Quadratic []QuadDoc `yaml:"quadratic,omitempty" toml:"quadratic,omitempty"`
	Constant  float64   `yaml:"constant,omitempty" toml:"constant,omitempty"`
	Constants []float64 `yaml:"constants,omitempty" toml:"constants,omitempty"`
}

// TermDoc is coef·var, on output row Row (0-based) for vector functions.
type TermDoc struct {
	Row  int     `yaml:"row,omitempty" toml:"row,omitempty"`
	Coef float64 `yaml:"coef" toml:"coef"`
	Var  string  `yaml:"var" toml:"var"`
}

// QuadDoc is coef·var1·var2.
type QuadDoc struct {
	Coef float64 `yaml:"coef" toml:"coef"`
	Var1 string  `yaml:"var1" toml:"var1"`
	Var2 string  `yaml:"var2" toml:"var2"`
}

// SetDoc mirrors cone.Set. Dim may be omitted for kinds whose dimension is
// implied (scalar sets, exponential and power cones, PSD cones with side).
type SetDoc struct {
	Kind     string  `yaml:"kind" toml:"kind"`
	Dim      int     `yaml:"dim,omitempty" toml:"dim,omitempty"`
	Side     int     `yaml:"side,omitempty" toml:"side,omitempty"`
	Exponent float64 `yaml:"exponent,omitempty" toml:"exponent,omitempty"`
	Bound    float64 `yaml:"bound,omitempty" toml:"bound,omitempty"`
}

var functionKinds = func() map[string]model.FunctionKind {
	out := make(map[string]model.FunctionKind, 5)
	for _, k := range []model.FunctionKind{
		model.KindVariableIndex, model.KindScalarAffine, model.KindScalarQuadratic,
		model.KindVectorOfVariables, model.KindVectorAffine,
	} {
		out[k.String()] = k
	}
	return out
}()

var senses = map[string]model.Sense{
	model.Minimize.String():    model.Minimize,
	model.Maximize.String():    model.Maximize,
	model.Feasibility.String(): model.Feasibility,
	"":                         model.Feasibility,
}

// ---------- Document → Model ----------

// Build creates a new model from d. Variables are added in document order,
// parameters after them, then constraints in order.
func (d *Document) Build() (*model.Model, error) {
	m := model.NewModel()
	ids := make(map[string]model.VariableID, len(d.Variables)+len(d.Parameters))
	add := func(name string, param bool) error {
		if name == "" {
			return modelioErrorf("variables", ErrEmptyName)
		}
		if _, dup := ids[name]; dup {
			return modelioErrorf(name, ErrDuplicateName)
		}
		if param {
			ids[name] = m.AddParameter(name)
		} else {
			ids[name] = m.AddVariable(name)
		}
		return nil
	}
	for _, name := range d.Variables {
		if err := add(name, false); err != nil {
			return nil, err
		}
	}
	for _, name := range d.Parameters {
		if err := add(name, true); err != nil {
			return nil, err
		}
	}

	r := resolver{ids: ids}
	for i, cd := range d.Constraints {
		tag := cd.Name
		if tag == "" {
			tag = "constraints[" + strconv.Itoa(i) + "]"
		}
		s := cd.Set.set()
		f, err := r.function(cd.Function, s.Dim)
		if err != nil {
			return nil, modelioErrorf(tag, err)
		}
		if _, err := m.AddConstraint(cd.Name, f, s); err != nil {
			return nil, modelioErrorf(tag, err)
		}
	}

	if d.Objective != nil {
		sense, ok := senses[d.Objective.Sense]
		if !ok {
			return nil, modelioErrorf("objective: "+d.Objective.Sense, ErrUnknownSense)
		}
		f, err := r.function(d.Objective.Function, 1)
		if err != nil {
			return nil, modelioErrorf("objective", err)
		}
		if err := m.SetObjective(sense, f); err != nil {
			return nil, modelioErrorf("objective", err)
		}
	}

	return m, nil
}

func (sd SetDoc) set() cone.Set {
	s := cone.Set{
		Kind:     cone.Kind(sd.Kind),
		Dim:      sd.Dim,
		Side:     sd.Side,
		Exponent: sd.Exponent,
		Bound:    sd.Bound,
	}
	if s.Dim == 0 {
		switch s.Kind {
		case cone.GreaterThan, cone.LessThan, cone.EqualTo:
			s.Dim = 1
		case cone.ExponentialCone, cone.DualExponentialCone, cone.PowerCone, cone.DualPowerCone:
			s.Dim = 3
		case cone.PSDTriangle:
			s.Dim = cone.TriangleDim(s.Side)
		}
	}
	return s
}

type resolver struct {
	ids map[string]model.VariableID
}

func (r resolver) variable(name string) (model.VariableID, error) {
	v, ok := r.ids[name]
	if !ok {
		return 0, modelioErrorf(strconv.Quote(name), ErrUnknownName)
	}
	return v, nil
}

func (r resolver) affine(ts []TermDoc) ([]model.AffineTerm, error) {
	out := make([]model.AffineTerm, len(ts))
	for i, t := range ts {
		v, err := r.variable(t.Var)
		if err != nil {
			return nil, err
		}
		out[i] = model.AffineTerm{Coef: t.Coef, Var: v}
	}
	return out, nil
}

// function resolves fd; dim sizes VectorAffine constants when they are omitted.
func (r resolver) function(fd FunctionDoc, dim int) (model.Function, error) {
	kind, ok := functionKinds[fd.Kind]
	if !ok {
		return nil, modelioErrorf(fd.Kind, ErrUnknownKind)
	}

	switch kind {
	case model.KindVariableIndex:
		v, err := r.variable(fd.Var)
		if err != nil {
			return nil, err
		}
		return model.VariableIndex{Var: v}, nil

	case model.KindScalarAffine:
		terms, err := r.affine(fd.Terms)
		if err != nil {
			return nil, err
		}
		return model.ScalarAffine{Terms: terms, Constant: fd.Constant}, nil

	case model.KindScalarQuadratic:
		terms, err := r.affine(fd.Terms)
		if err != nil {
			return nil, err
		}
		quad := make([]model.QuadraticTerm, len(fd.Quadratic))
		for i, q := range fd.Quadratic {
			v1, err := r.variable(q.Var1)
			if err != nil {
				return nil, err
			}
			v2, err := r.variable(q.Var2)
			if err != nil {
				return nil, err
			}
			quad[i] = model.QuadraticTerm{Coef: q.Coef, Var1: v1, Var2: v2}
		}
		return model.ScalarQuadratic{Quadratic: quad, Affine: terms, Constant: fd.Constant}, nil

	case model.KindVectorOfVariables:
		vars := make([]model.VariableID, len(fd.Vars))
		for i, name := range fd.Vars {
			v, err := r.variable(name)
			if err != nil {
				return nil, err
			}
			vars[i] = v
		}
		return model.VectorOfVariables{Vars: vars}, nil

	default: // model.KindVectorAffine
		consts := fd.Constants
		if len(consts) == 0 {
			consts = make([]float64, dim)
		}
		terms := make([]model.VectorAffineTerm, len(fd.Terms))
		for i, t := range fd.Terms {
			v, err := r.variable(t.Var)
			if err != nil {
				return nil, err
			}
			terms[i] = model.VectorAffineTerm{Row: t.Row, Term: model.AffineTerm{Coef: t.Coef, Var: v}}
		}
		return model.VectorAffine{Terms: terms, Constants: append([]float64(nil), consts...)}, nil
	}
}

// ---------- Model → Document ----------

// FromModel converts m into a Document. Variables without a usable name
// (empty, or already taken by an earlier variable) are written as "_v<id>".
func FromModel(m model.ModelLike) (*Document, error) {
	if m == nil {
		return nil, modelioErrorf("FromModel", ErrNilModel)
	}

	d := &Document{Variables: []string{}}
	names := make(map[model.VariableID]string)
	taken := make(map[string]struct{})
	for _, v := range m.Variables() {
		name := m.VariableName(v)
		if _, dup := taken[name]; name == "" || dup {
			name = "_v" + strconv.FormatInt(int64(v), 10)
		}
		taken[name] = struct{}{}
		names[v] = name
		if m.IsParameter(v) {
			d.Parameters = append(d.Parameters, name)
		} else {
			d.Variables = append(d.Variables, name)
		}
	}

	w := writer{names: names}
	for _, c := range m.Constraints() {
		fd, err := w.function(c.Func)
		if err != nil {
			return nil, modelioErrorf(c.Name, err)
		}
		d.Constraints = append(d.Constraints, ConstraintDoc{
			Name:     c.Name,
			Function: fd,
			Set: SetDoc{
				Kind:     string(c.Set.Kind),
				Dim:      c.Set.Dim,
				Side:     c.Set.Side,
				Exponent: c.Set.Exponent,
				Bound:    c.Set.Bound,
			},
		})
	}

	obj := m.Objective()
	if obj.Func != nil && obj.Sense != model.Feasibility {
		fd, err := w.function(obj.Func)
		if err != nil {
			return nil, modelioErrorf("objective", err)
		}
		d.Objective = &ObjectiveDoc{Sense: obj.Sense.String(), Function: fd}
	}

	return d, nil
}

type writer struct {
	names map[model.VariableID]string
}

func (w writer) terms(ts []model.AffineTerm) []TermDoc {
	if len(ts) == 0 {
		return nil
	}
	out := make([]TermDoc, len(ts))
	for i, t := range ts {
		out[i] = TermDoc{Coef: t.Coef, Var: w.names[t.Var]}
	}
	return out
}

func (w writer) function(f model.Function) (FunctionDoc, error) {
	fd := FunctionDoc{Kind: f.Kind().String()}
	switch g := f.(type) {
	case model.VariableIndex:
		fd.Var = w.names[g.Var]
	case model.ScalarAffine:
		fd.Terms = w.terms(g.Terms)
		fd.Constant = g.Constant
	case model.ScalarQuadratic:
		fd.Terms = w.terms(g.Affine)
		fd.Constant = g.Constant
		for _, q := range g.Quadratic {
			fd.Quadratic = append(fd.Quadratic, QuadDoc{Coef: q.Coef, Var1: w.names[q.Var1], Var2: w.names[q.Var2]})
		}
	case model.VectorOfVariables:
		fd.Vars = make([]string, len(g.Vars))
		for i, v := range g.Vars {
			fd.Vars[i] = w.names[v]
		}
	case model.VectorAffine:
		for _, t := range g.Terms {
			fd.Terms = append(fd.Terms, TermDoc{Row: t.Row, Coef: t.Term.Coef, Var: w.names[t.Term.Var]})
		}
		fd.Constants = append([]float64(nil), g.Constants...)
	default:
		return FunctionDoc{}, modelioErrorf(fd.Kind, ErrUnknownKind)
	}
	return fd, nil
}
