// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package merger composes the final Jest config from the preset's base
// config and the project's override directives.
//
// Overrides are applied in a fixed order, each one on the result of the
// previous step and each at most once per call:
//  1. Babel transform substitution (jest.babel.addPresets / addPlugins);
//  2. jest.configure, either a full override function or a partial mapping
//     deep-merged with slice concatenation;
//  3. the directive plugin list.
//
// When the directives have no jest section the base config is returned
// untouched. Every error is returned to the caller as is; composition is
// all or nothing.
package merger

import (
	"fmt"

	"github.com/MKhiriev/go-jest-merge/internal/logger"
	"github.com/MKhiriev/go-jest-merge/internal/resolver"
	"github.com/MKhiriev/go-jest-merge/models"
)

// ResolverFactory binds a resolver to the preset package under rootDir.
type ResolverFactory func(rootDir, pkg string) models.Resolver

// Merger applies override directives to a base Jest config.
type Merger struct {
	transforms  TransformFactory
	plugins     PluginApplier
	newResolver ResolverFactory
	log         *logger.Logger
}

// Option customizes a [Merger].
type Option func(*Merger)

// WithResolverFactory replaces the node_modules based resolver.
func WithResolverFactory(f ResolverFactory) Option {
	return func(m *Merger) {
		m.newResolver = f
	}
}

// NewMerger creates a Merger using the given collaborators.
func NewMerger(transforms TransformFactory, plugins PluginApplier, log *logger.Logger, opts ...Option) *Merger {
	m := &Merger{
		transforms:  transforms,
		plugins:     plugins,
		newResolver: packageResolver,
		log:         log,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}

// MergeJestConfig returns the Jest config for the project described by
// directives and ctx.
//
// The base config comes from provider, called with a resolver bound to the
// preset package under ctx.RootDir. Configure functions and plugins receive
// ctx with Resolve and RootDir filled in.
func (m *Merger) MergeJestConfig(directives models.Directives, provider BaseConfigProvider, ctx models.MergeContext) (models.JestConfig, error) {
	resolve := m.newResolver(ctx.RootDir, directives.PackageName())

	config, err := provider.Provide(resolve, ctx.RootDir, false)
	if err != nil {
		return nil, fmt.Errorf("error getting base Jest config: %w", err)
	}

	if directives.Jest == nil {
		return config, nil
	}

	config, err = m.configureBabel(config, directives)
	if err != nil {
		return nil, err
	}

	jestCtx := ctx
	jestCtx.Resolve = resolve

	if directives.Jest.Configure != nil {
		config, err = m.giveTotalControl(config, directives.Jest.Configure, jestCtx)
		if err != nil {
			return nil, err
		}
	}

	config, err = m.plugins.Apply(directives, config, jestCtx)
	if err != nil {
		return nil, fmt.Errorf("error applying Jest config plugins: %w", err)
	}

	m.log.Info().Msg("merged Jest config")

	return config, nil
}

func packageResolver(rootDir, pkg string) models.Resolver {
	return resolver.New(rootDir, pkg).Resolve
}
