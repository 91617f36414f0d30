// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/conedual/model"
)

// builderConfig is the resolved option set shared by all constructors.
type builderConfig struct {
	idFn   IDFn
	rng    *rand.Rand // nil unless WithSeed/WithRand
	coefFn CoefFn
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: DefaultIDFn, coefFn: DefaultCoefFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// addVariables appends n variables whose names continue the scheme after the
// variables already in m.
func (c builderConfig) addVariables(m *model.Model, n int) []model.VariableID {
	base := m.NumVariables()
	out := make([]model.VariableID, n)
	for i := range out {
		out[i] = m.AddVariable(c.idFn(base + i))
	}
	return out
}

func (c builderConfig) coef() float64 { return c.coefFn(c.rng) }
