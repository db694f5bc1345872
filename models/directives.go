// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultReactScriptsPackage is the preset package used when the directive
// set does not name one.
const DefaultReactScriptsPackage = "react-scripts"

// Directives is the user-authored override set for a project.
//
// Only the Jest-related parts are consumed here: the project-wide Babel
// presets/plugins, the Jest section and the plugin list.
type Directives struct {
	// ReactScriptsVersion is the package name (or path) of the preset whose
	// base Jest config is being overridden, e.g. "react-scripts".
	ReactScriptsVersion string

	// Babel holds the project-level Babel additions. Nil when the directive
	// set has no babel section.
	Babel *BabelDirectives

	// Jest holds the Jest overrides. Nil means there is nothing to override
	// and the base config is used as is.
	Jest *JestDirectives

	// Plugins are applied in declaration order after every other override.
	Plugins []PluginEntry
}

// BabelDirectives lists Babel presets and plugins added to the project's
// compilation step. A nil slice means the list was not given at all.
type BabelDirectives struct {
	Presets []any
	Plugins []any
}

// JestDirectives is the Jest section of the directive set.
type JestDirectives struct {
	Babel JestBabel

	// Configure is nil when no configure directive was given.
	Configure ConfigureDirective
}

// JestBabel toggles whether the project-level Babel presets and plugins are
// also applied when Jest compiles sources.
type JestBabel struct {
	AddPresets bool
	AddPlugins bool
}

// PackageName returns the preset package, falling back to
// [DefaultReactScriptsPackage].
func (d Directives) PackageName() string {
	if d.ReactScriptsVersion == "" {
		return DefaultReactScriptsPackage
	}

	return d.ReactScriptsVersion
}

// WantsBabelOverride reports whether the Jest babel transform has to be
// replaced: Jest asks for presets or plugins and the project supplies at
// least one of the two lists.
func (d Directives) WantsBabelOverride() bool {
	if d.Jest == nil || d.Babel == nil {
		return false
	}
	if !d.Jest.Babel.AddPresets && !d.Jest.Babel.AddPlugins {
		return false
	}

	return d.Babel.Presets != nil || d.Babel.Plugins != nil
}
