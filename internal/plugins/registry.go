// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package plugins runs the directive plugin list over a Jest config.
//
// Plugins are Go values implementing [models.Plugin]. A directive entry
// either carries the plugin itself or names one registered in a [Registry].
// Only plugins implementing [models.JestConfigOverrider] change the config;
// the others are skipped.
package plugins

import (
	"maps"
	"slices"

	"github.com/MKhiriev/go-jest-merge/models"
)

// Registry maps plugin names to plugins.
type Registry struct {
	plugins map[string]models.Plugin
}

// NewRegistry returns a registry holding the given plugins.
func NewRegistry(plugins ...models.Plugin) *Registry {
	r := &Registry{plugins: make(map[string]models.Plugin, len(plugins))}
	for _, p := range plugins {
		r.Register(p)
	}

	return r
}

// NewDefaultRegistry returns a registry with the built-in plugins.
func NewDefaultRegistry() *Registry {
	return NewRegistry(Builtins()...)
}

// Register adds p, replacing any plugin registered under the same name.
func (r *Registry) Register(p models.Plugin) {
	r.plugins[p.Name()] = p
}

// Lookup returns the plugin registered under name.
func (r *Registry) Lookup(name string) (models.Plugin, bool) {
	if r == nil {
		return nil, false
	}

	p, ok := r.plugins[name]
	return p, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	return slices.Sorted(maps.Keys(r.plugins))
}

// Func adapts a plain function to a Jest config plugin.
type Func struct {
	PluginName string
	Override   func(args models.JestOverrideArgs) (models.JestConfig, error)
}

func (f Func) Name() string {
	return f.PluginName
}

func (f Func) OverrideJestConfig(args models.JestOverrideArgs) (models.JestConfig, error) {
	return f.Override(args)
}
