// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"fmt"

	"github.com/MKhiriev/go-jest-merge/internal/deepmerge"
	"github.com/MKhiriev/go-jest-merge/models"
)

// giveTotalControl applies jest.configure: a full override replaces the
// config with the function's result, a partial override is deep-merged onto
// it with slices concatenated.
func (m *Merger) giveTotalControl(config models.JestConfig, directive models.ConfigureDirective, ctx models.MergeContext) (models.JestConfig, error) {
	var (
		result models.JestConfig
		err    error
	)

	switch d := directive.(type) {
	case models.FullOverride:
		result, err = m.fullOverride(config, d, ctx)
	case *models.FullOverride:
		if d == nil {
			return nil, fmt.Errorf("%w: nil %T", ErrMalformedConfigure, directive)
		}
		result, err = m.fullOverride(config, *d, ctx)
	case models.PartialOverride:
		result, err = deepmerge.MergeWithArray(config, d.Values)
	case *models.PartialOverride:
		if d == nil {
			return nil, fmt.Errorf("%w: nil %T", ErrMalformedConfigure, directive)
		}
		result, err = deepmerge.MergeWithArray(config, d.Values)
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrMalformedConfigure, directive)
	}
	if err != nil {
		return nil, err
	}

	m.log.Debug().Msg("merged Jest config with jest.configure")

	return result, nil
}

func (m *Merger) fullOverride(config models.JestConfig, d models.FullOverride, ctx models.MergeContext) (models.JestConfig, error) {
	if d.Fn == nil {
		return nil, fmt.Errorf("%w: full override %q has no function", ErrMalformedConfigure, d.Name)
	}

	result, err := d.Fn(config, ctx)
	if err != nil {
		return nil, fmt.Errorf("error in jest.configure function: %w", err)
	}
	if result == nil {
		return nil, ErrInvalidConfigureResult
	}

	return result, nil
}
