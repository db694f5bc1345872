// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// EnvPrefix is prepended to every environment variable the CLI reads.
const EnvPrefix = "JESTMERGE_"

// StructuredConfig is the top-level runtime configuration of jestmerge. It is
// populated by merging built-in defaults, an optional YAML settings file,
// environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
//   - yaml:      key in the settings file.
type StructuredConfig struct {
	// Project locates the project whose Jest config is merged.
	Project Project `envPrefix:"PROJECT_" yaml:"project"`

	// Output controls where the merged config is written.
	Output Output `envPrefix:"OUTPUT_" yaml:"output"`

	// Log holds logger settings.
	Log Log `envPrefix:"LOG_" yaml:"log"`

	// ConfigFilePath is the optional path to a YAML settings file.
	// Populated via the JESTMERGE_CONFIG environment variable or the
	// -c / -config flag.
	ConfigFilePath string `env:"CONFIG" yaml:"-"`

	// PrintVersion makes the CLI print build information and exit.
	// Flag only.
	PrintVersion bool `yaml:"-"`
}

// Project describes the project and the inputs of the merge.
type Project struct {
	// RootDir is the project root; node_modules is looked up below it.
	// Env: JESTMERGE_PROJECT_ROOT_DIR
	RootDir string `env:"ROOT_DIR" yaml:"root_dir"`

	// DirectivesPath is the directive file. Empty means no overrides.
	// Env: JESTMERGE_PROJECT_DIRECTIVES
	DirectivesPath string `env:"DIRECTIVES" yaml:"directives"`

	// BaseConfigPath replaces the react-scripts base config with a file.
	// Env: JESTMERGE_PROJECT_BASE_CONFIG
	BaseConfigPath string `env:"BASE_CONFIG" yaml:"base_config"`

	// ReactScripts overrides the preset package named in the directive file.
	// Env: JESTMERGE_PROJECT_REACT_SCRIPTS
	ReactScripts string `env:"REACT_SCRIPTS" yaml:"react_scripts"`

	// ReactScriptsVersion pins the preset version instead of reading it
	// from the installed package.json (e.g. "3.4.1").
	// Env: JESTMERGE_PROJECT_REACT_SCRIPTS_VERSION
	ReactScriptsVersion string `env:"REACT_SCRIPTS_VERSION" yaml:"react_scripts_version"`

	// Env is passed to configure functions and plugins as the environment
	// name.
	// Env: JESTMERGE_PROJECT_ENV
	Env string `env:"ENV" yaml:"env"`
}

// Output controls the destination of the merged config.
type Output struct {
	// Path of the output file. Empty means stdout.
	// Env: JESTMERGE_OUTPUT_PATH
	Path string `env:"PATH" yaml:"path"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name.
	// Env: JESTMERGE_LOG_LEVEL
	Level string `env:"LEVEL" yaml:"level"`

	// Pretty switches to human-readable console output.
	// Env: JESTMERGE_LOG_PRETTY
	Pretty bool `env:"PRETTY" yaml:"pretty"`
}

// defaults returns the lowest-priority layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Project: Project{
			RootDir: ".",
			Env:     "test",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// sources. Later sources override non-zero fields of earlier ones:
//  1. Built-in defaults
//  2. YAML settings file (path taken from flags, then env)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
