// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

//go:generate mockgen -source=interfaces.go -destination=../mock/merger_mock.go -package=mock

import "github.com/MKhiriev/go-jest-merge/models"

// BaseConfigProvider supplies the preset's Jest config before any override.
type BaseConfigProvider interface {
	// Provide returns the base config. resolve is bound to the preset
	// package under rootDir; isEjecting asks for paths that stay valid
	// after the preset is ejected.
	Provide(resolve models.Resolver, rootDir string, isEjecting bool) (models.JestConfig, error)
}

// TransformFactory builds the Jest transform handler that honors the
// project's Babel presets and plugins.
type TransformFactory interface {
	CreateTransform(directives models.Directives) (any, error)
}

// PluginApplier runs the directive plugin list over the Jest config, in
// list order.
type PluginApplier interface {
	Apply(directives models.Directives, config models.JestConfig, ctx models.MergeContext) (models.JestConfig, error)
}
