// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package plugins

import (
	"fmt"
	"maps"
	"path"
	"regexp"
	"slices"
	"strings"

	"github.com/MKhiriev/go-jest-merge/models"
)

// Names of the built-in plugins.
const (
	AliasPluginName           = "alias"
	SetupFilesPluginName      = "setup-files"
	TestEnvironmentPluginName = "test-environment"
)

// Builtins returns the plugins shipped with jestmerge.
func Builtins() []models.Plugin {
	return []models.Plugin{
		AliasPlugin{},
		SetupFilesPlugin{},
		TestEnvironmentPlugin{},
	}
}

// AliasPlugin maps import aliases to project directories through Jest's
// moduleNameMapper. Options: {"<alias>": "<dir relative to rootDir>"}.
//
// Alias "@" with target "src" adds
//
//	"^@$":      "<rootDir>/src"
//	"^@/(.*)$": "<rootDir>/src/$1"
type AliasPlugin struct{}

func (AliasPlugin) Name() string { return AliasPluginName }

func (AliasPlugin) OverrideJestConfig(args models.JestOverrideArgs) (models.JestConfig, error) {
	config := args.JestConfig.Clone()

	mapper := map[string]any{}
	switch existing := config["moduleNameMapper"].(type) {
	case map[string]any:
		mapper = existing
	case models.JestConfig:
		mapper = existing
	}

	for _, alias := range slices.Sorted(maps.Keys(args.PluginOptions)) {
		target, ok := args.PluginOptions[alias].(string)
		if !ok || target == "" {
			return nil, fmt.Errorf("%w: alias %q needs a target directory", ErrInvalidPluginOptions, alias)
		}

		dir := "<rootDir>"
		if clean := strings.TrimPrefix(path.Clean(target), "/"); clean != "." {
			dir += "/" + clean
		}
		quoted := regexp.QuoteMeta(alias)

		mapper["^"+quoted+"$"] = dir
		mapper["^"+quoted+"/(.*)$"] = dir + "/$1"
	}

	config["moduleNameMapper"] = mapper

	return config, nil
}

// SetupFilesPlugin appends files to setupFilesAfterEnv.
// Options: {"files": ["<rootDir>/src/setupTests.js", ...]}.
type SetupFilesPlugin struct{}

func (SetupFilesPlugin) Name() string { return SetupFilesPluginName }

func (SetupFilesPlugin) OverrideJestConfig(args models.JestOverrideArgs) (models.JestConfig, error) {
	files, ok := args.PluginOptions["files"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q expects a files list", ErrInvalidPluginOptions, SetupFilesPluginName)
	}

	config := args.JestConfig.Clone()

	var current []any
	switch existing := config["setupFilesAfterEnv"].(type) {
	case nil:
	case []any:
		current = existing
	case []string:
		for _, f := range existing {
			current = append(current, f)
		}
	default:
		return nil, fmt.Errorf("%w: setupFilesAfterEnv is %T, not a list", ErrInvalidPluginOptions, existing)
	}

	config["setupFilesAfterEnv"] = append(current, files...)

	return config, nil
}

// TestEnvironmentPlugin sets testEnvironment.
// Options: {"environment": "node"}.
type TestEnvironmentPlugin struct{}

func (TestEnvironmentPlugin) Name() string { return TestEnvironmentPluginName }

func (TestEnvironmentPlugin) OverrideJestConfig(args models.JestOverrideArgs) (models.JestConfig, error) {
	env, ok := args.PluginOptions["environment"].(string)
	if !ok || env == "" {
		return nil, fmt.Errorf("%w: %q expects an environment name", ErrInvalidPluginOptions, TestEnvironmentPluginName)
	}

	config := args.JestConfig.Clone()
	config["testEnvironment"] = env

	return config, nil
}
