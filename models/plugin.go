// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Plugin is anything that can be listed in the directive plugin list.
// A plugin takes part in Jest config composition only if it also
// implements [JestConfigOverrider].
type Plugin interface {
	Name() string
}

// JestConfigOverrider is implemented by plugins that post-process the
// Jest config.
type JestConfigOverrider interface {
	OverrideJestConfig(args JestOverrideArgs) (JestConfig, error)
}

// JestOverrideArgs is the input of [JestConfigOverrider.OverrideJestConfig].
type JestOverrideArgs struct {
	Directives    Directives
	JestConfig    JestConfig
	PluginOptions map[string]any
	Context       MergeContext
}

// PluginEntry is one element of the directive plugin list. Plugin takes
// precedence over Name; Name is looked up in the plugin registry.
type PluginEntry struct {
	Name    string
	Plugin  Plugin
	Options map[string]any
}

// DisplayName returns the name used in logs and errors.
func (e PluginEntry) DisplayName() string {
	if e.Plugin != nil {
		return e.Plugin.Name()
	}

	return e.Name
}
