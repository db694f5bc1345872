// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import (
	"fmt"
	"maps"

	"github.com/MKhiriev/go-jest-merge/models"
)

// Babel transform keys used by the preset's base config. Newer presets cover
// TypeScript sources as well; presets before 2.1.0 only know js and jsx.
const (
	BabelTransformKey       = `^.+\.(js|jsx|ts|tsx)$`
	LegacyBabelTransformKey = `^.+\.(js|jsx)$`
)

// configureBabel swaps the babel transform handler when the directives ask
// for project presets or plugins. The returned config is a copy; config and
// its transform mapping are left untouched.
func (m *Merger) configureBabel(config models.JestConfig, directives models.Directives) (models.JestConfig, error) {
	if !directives.WantsBabelOverride() {
		return config, nil
	}

	transform, _ := config.Transform()

	key, ok := findBabelTransformKey(transform)
	if !ok {
		return nil, fmt.Errorf("%w %s or %s", ErrMissingTransformEntry, BabelTransformKey, LegacyBabelTransformKey)
	}

	handler, err := m.transforms.CreateTransform(directives)
	if err != nil {
		return nil, fmt.Errorf("error creating babel transform: %w", err)
	}

	newTransform := maps.Clone(transform)
	newTransform[key] = handler

	result := maps.Clone(config)
	result[models.TransformKey] = newTransform

	m.log.Debug().Str("transform_key", key).Msg("overrode Jest babel transformer")

	return result, nil
}

// findBabelTransformKey skips entries holding nil or an empty string.
func findBabelTransformKey(transform map[string]any) (string, bool) {
	for _, key := range []string{BabelTransformKey, LegacyBabelTransformKey} {
		if v := transform[key]; v != nil && v != "" {
			return key, true
		}
	}

	return "", false
}
