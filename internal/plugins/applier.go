// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package plugins

import (
	"fmt"

	"github.com/MKhiriev/go-jest-merge/internal/logger"
	"github.com/MKhiriev/go-jest-merge/models"
)

// Applier applies the directive plugin list sequentially.
type Applier struct {
	registry *Registry
	log      *logger.Logger
}

// NewApplier returns an Applier resolving plugin names through registry.
func NewApplier(registry *Registry, log *logger.Logger) *Applier {
	return &Applier{registry: registry, log: log}
}

// Apply runs every plugin of directives.Plugins in order. Each plugin gets
// the config returned by the previous one.
func (a *Applier) Apply(directives models.Directives, config models.JestConfig, ctx models.MergeContext) (models.JestConfig, error) {
	if len(directives.Plugins) == 0 {
		return config, nil
	}

	for i, entry := range directives.Plugins {
		plugin, err := a.resolve(entry)
		if err != nil {
			return nil, fmt.Errorf("plugin #%d: %w", i, err)
		}

		overrider, ok := plugin.(models.JestConfigOverrider)
		if !ok {
			continue
		}

		result, err := overrider.OverrideJestConfig(models.JestOverrideArgs{
			Directives:    directives,
			JestConfig:    config,
			PluginOptions: entry.Options,
			Context:       ctx,
		})
		if err != nil {
			return nil, fmt.Errorf("plugin %q: %w", plugin.Name(), err)
		}
		if result == nil {
			return nil, fmt.Errorf("plugin %q: %w", plugin.Name(), ErrPluginReturnedNoConfig)
		}

		a.log.Debug().Str("plugin", plugin.Name()).Msg("applied Jest config plugin")
		config = result
	}

	a.log.Debug().Int("plugins", len(directives.Plugins)).Msg("applied Jest config plugins")

	return config, nil
}

func (a *Applier) resolve(entry models.PluginEntry) (models.Plugin, error) {
	if entry.Plugin != nil {
		return entry.Plugin, nil
	}

	plugin, ok := a.registry.Lookup(entry.Name)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownPlugin, entry.Name)
	}

	return plugin, nil
}
