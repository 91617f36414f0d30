// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/conedual/model"
)

// Constructor adds variables, constraints and possibly an objective to m.
type Constructor func(m *model.Model, cfg builderConfig) error

// BuildModel creates an empty model, resolves bopts once and applies cons in
// order. A later constructor's objective replaces an earlier one.
func BuildModel(bopts []BuilderOption, cons ...Constructor) (*model.Model, error) {
	m := model.NewModel()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildModel: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildModel: %w", err)
		}
	}

	return m, nil
}

// construct wraps model errors with ErrConstructFailed.
func construct(method string, err error) error {
	if err == nil {
		return nil
	}
	return builderErrorf(method, fmt.Errorf("%w: %w", ErrConstructFailed, err))
}
