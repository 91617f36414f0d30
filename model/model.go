// SPDX-License-Identifier: MIT

// Package model: the thread-safe Model store and the ModelLike contract.
//
// Locking:
//   - One sync.RWMutex guards every field; readers take RLock.
//   - Slices returned by accessors are copies; callers may keep them.

package model

import (
	"sync"

	"github.com/katalvlaran/conedual/cone"
)

// Sense is the optimization direction.
type Sense int

// Senses. Feasibility is the zero value: a model without objective.
const (
	Feasibility Sense = iota
	Minimize
	Maximize
)

// String returns "min", "max" or "feasibility".
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "min"
	case Maximize:
		return "max"
	default:
		return "feasibility"
	}
}

// Objective is a sense plus a scalar function.
type Objective struct {
	Sense Sense
	Func  Function
}

// Constraint is "Func ∈ Set" with an identifier and an optional name.
type Constraint struct {
	ID   ConstraintID
	Name string
	Func Function
	Set  cone.Set
}

// ModelLike is the read-only model surface the dualizer consumes.
type ModelLike interface {
	// Variables returns every variable (parameters included) in creation order.
	Variables() []VariableID
	// IsParameter reports whether v is flagged as a parameter.
	IsParameter(v VariableID) bool
	// Constraints returns every constraint in creation order.
	Constraints() []Constraint
	// Objective returns the objective; a nil Func means "no objective".
	Objective() Objective
	VariableName(v VariableID) string
	ConstraintName(c ConstraintID) string
}

var _ ModelLike = (*Model)(nil)

type variable struct {
	name  string
	param bool
}

// Model is an in-memory conic model.
type Model struct {
	mu sync.RWMutex

	nextVar VariableID
	nextCon ConstraintID

	varOrder []VariableID
	vars     map[VariableID]*variable
	conOrder []ConstraintID
	cons     map[ConstraintID]*Constraint
	obj      Objective
}

// NewModel returns an empty feasibility model.
func NewModel() *Model {
	return &Model{
		vars: make(map[VariableID]*variable),
		cons: make(map[ConstraintID]*Constraint),
		obj:  Objective{Sense: Feasibility, Func: ScalarAffine{}},
	}
}

// ---------- variables ----------

// AddVariable appends a decision variable and returns its id.
// Complexity: O(1) amortized.
func (m *Model) AddVariable(name string) VariableID {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.addVariableLocked(name, false)
}

// AddVariables appends one variable per name.
func (m *Model) AddVariables(names ...string) []VariableID {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]VariableID, len(names))
	for i, n := range names {
		out[i] = m.addVariableLocked(n, false)
	}

	return out
}

// AddParameter appends a variable flagged as a parameter.
func (m *Model) AddParameter(name string) VariableID {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.addVariableLocked(name, true)
}

func (m *Model) addVariableLocked(name string, param bool) VariableID {
	m.nextVar++
	id := m.nextVar
	m.vars[id] = &variable{name: name, param: param}
	m.varOrder = append(m.varOrder, id)

	return id
}

// SetParameter flags or unflags v as a parameter.
func (m *Model) SetParameter(v VariableID, param bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	info, ok := m.vars[v]
	if !ok {
		return modelErrorf("SetParameter", ErrUnknownVariable)
	}
	info.param = param

	return nil
}

// IsParameter reports whether v is a parameter; unknown ids report false.
func (m *Model) IsParameter(v VariableID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	info, ok := m.vars[v]
	return ok && info.param
}

// HasVariable reports whether v was issued by m.
func (m *Model) HasVariable(v VariableID) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, ok := m.vars[v]
	return ok
}

// Variables returns all variable ids in creation order.
func (m *Model) Variables() []VariableID {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]VariableID(nil), m.varOrder...)
}

// NumVariables returns the variable count (parameters included).
func (m *Model) NumVariables() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.varOrder)
}

// VariableName returns the name of v ("" for unknown or unnamed).
func (m *Model) VariableName(v VariableID) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if info, ok := m.vars[v]; ok {
		return info.name
	}
	return ""
}

// SetVariableName renames v.
func (m *Model) SetVariableName(v VariableID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	info, ok := m.vars[v]
	if !ok {
		return modelErrorf("SetVariableName", ErrUnknownVariable)
	}
	info.name = name

	return nil
}

// VariableByName returns the first variable named name.
// Complexity: O(V).
func (m *Model) VariableByName(name string) (VariableID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.varOrder {
		if m.vars[id].name == name {
			return id, true
		}
	}
	return 0, false
}

// ---------- constraints ----------

// AddConstraint appends "f ∈ s".
//
// Errors:
//   - ErrNilFunction for nil f.
//   - ErrUnknownVariable when f references a variable not in m.
//   - ErrDimensionMismatch when f.Dimension() != s.Dim or a VectorAffine
//     term row is out of range.
//   - cone.ErrBadDimension / cone.ErrBadParameter from s.Validate().
func (m *Model) AddConstraint(name string, f Function, s cone.Set) (ConstraintID, error) {
	const tag = "AddConstraint"
	if f == nil {
		return 0, modelErrorf(tag, ErrNilFunction)
	}
	if err := s.Validate(); err != nil {
		return 0, modelErrorf(tag, err)
	}
	if f.Dimension() != s.Dim {
		return 0, modelErrorf(tag, ErrDimensionMismatch)
	}
	if va, ok := f.(VectorAffine); ok {
		for _, t := range va.Terms {
			if t.Row < 0 || t.Row >= len(va.Constants) {
				return 0, modelErrorf(tag, ErrDimensionMismatch)
			}
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkVariablesLocked(f); err != nil {
		return 0, modelErrorf(tag, err)
	}
	m.nextCon++
	id := m.nextCon
	m.cons[id] = &Constraint{ID: id, Name: name, Func: cloneFunction(f), Set: s}
	m.conOrder = append(m.conOrder, id)

	return id, nil
}

func (m *Model) checkVariablesLocked(f Function) error {
	for _, v := range f.Variables() {
		if _, ok := m.vars[v]; !ok {
			return ErrUnknownVariable
		}
	}
	return nil
}

// Constraints returns all constraints in creation order.
func (m *Model) Constraints() []Constraint {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Constraint, len(m.conOrder))
	for i, id := range m.conOrder {
		out[i] = *m.cons[id]
	}
	return out
}

// Constraint returns the constraint c.
func (m *Model) Constraint(c ConstraintID) (Constraint, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	con, ok := m.cons[c]
	if !ok {
		return Constraint{}, modelErrorf("Constraint", ErrUnknownConstraint)
	}
	return *con, nil
}

// NumConstraints returns the constraint count.
func (m *Model) NumConstraints() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.conOrder)
}

// ConstraintName returns the name of c ("" for unknown or unnamed).
func (m *Model) ConstraintName(c ConstraintID) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if con, ok := m.cons[c]; ok {
		return con.Name
	}
	return ""
}

// SetConstraintName renames c.
func (m *Model) SetConstraintName(c ConstraintID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	con, ok := m.cons[c]
	if !ok {
		return modelErrorf("SetConstraintName", ErrUnknownConstraint)
	}
	con.Name = name

	return nil
}

// ConstraintByName returns the first constraint named name.
func (m *Model) ConstraintByName(name string) (ConstraintID, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, id := range m.conOrder {
		if m.cons[id].Name == name {
			return id, true
		}
	}
	return 0, false
}

// ---------- objective ----------

// SetObjective replaces the objective. f must be scalar and reference known
// variables; whether its kind can be dualized is decided by the dualizer.
func (m *Model) SetObjective(sense Sense, f Function) error {
	const tag = "SetObjective"
	if f == nil {
		return modelErrorf(tag, ErrNilFunction)
	}
	if f.Dimension() != 1 {
		return modelErrorf(tag, ErrDimensionMismatch)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.checkVariablesLocked(f); err != nil {
		return modelErrorf(tag, err)
	}
	m.obj = Objective{Sense: sense, Func: cloneFunction(f)}

	return nil
}

// Objective returns the current objective.
func (m *Model) Objective() Objective {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.obj
}
