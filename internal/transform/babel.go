// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transform builds the Jest transform handler used when the project's
// Babel presets and plugins have to be honored by Jest.
//
// The handler is expressed in Jest's own [path, options] tuple form:
//
//	["babel-jest", {"presets": [...], "plugins": [...], "babelrc": false, "configFile": false}]
package transform

import (
	"slices"

	"github.com/MKhiriev/go-jest-merge/models"
)

const (
	// BabelJestModule is the transformer module Jest loads.
	BabelJestModule = "babel-jest"

	// ReactAppPreset is always the first preset, as in the preset's own
	// babel transform.
	ReactAppPreset = "babel-preset-react-app"
)

// BabelFactory creates babel-jest transform handlers.
type BabelFactory struct {
	module string
	preset string
}

// NewBabelFactory returns a factory producing handlers for babel-jest with
// babel-preset-react-app as base preset.
func NewBabelFactory() *BabelFactory {
	return &BabelFactory{module: BabelJestModule, preset: ReactAppPreset}
}

// CreateTransform builds the handler for the given directives. Project
// presets are added only when jest.babel.addPresets is set, project plugins
// only when jest.babel.addPlugins is set.
func (f *BabelFactory) CreateTransform(directives models.Directives) (any, error) {
	presets := []any{f.preset}
	plugins := []any{}

	if directives.Babel != nil && directives.Jest != nil {
		if directives.Jest.Babel.AddPresets {
			presets = append(presets, slices.Clone(directives.Babel.Presets)...)
		}
		if directives.Jest.Babel.AddPlugins {
			plugins = append(plugins, slices.Clone(directives.Babel.Plugins)...)
		}
	}

	options := map[string]any{
		"presets":    presets,
		"plugins":    plugins,
		"babelrc":    false,
		"configFile": false,
	}

	return []any{f.module, options}, nil
}
