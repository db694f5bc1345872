// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-jest-merge/internal/config"
	"github.com/MKhiriev/go-jest-merge/internal/directives"
	"github.com/MKhiriev/go-jest-merge/internal/logger"
	"github.com/MKhiriev/go-jest-merge/internal/merger"
	"github.com/MKhiriev/go-jest-merge/internal/validators"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

// newProject lays out a project with react-scripts installed at version.
func newProject(t *testing.T, version string) string {
	t.Helper()
	root := t.TempDir()
	pkg := filepath.Join(root, "node_modules", "react-scripts")

	writeFile(t, filepath.Join(pkg, "package.json"), `{"name": "react-scripts", "version": "`+version+`"}`)
	for _, f := range []string{"babelTransform.js", "cssTransform.js", "fileTransform.js"} {
		writeFile(t, filepath.Join(pkg, "config", "jest", f), "")
	}
	writeFile(t, filepath.Join(root, "node_modules", "react-app-polyfill", "jsdom.js"), "")

	return root
}

func newTestApp(t *testing.T, cfg *config.StructuredConfig) (*App, *bytes.Buffer) {
	t.Helper()
	a, err := NewApp(cfg, logger.Nop())
	require.NoError(t, err)

	out := &bytes.Buffer{}
	a.stdout = out
	return a, out
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var v map[string]any
	require.NoError(t, json.Unmarshal(data, &v))
	return v
}

const directiveFile = `
babel:
  plugins:
    - babel-plugin-macros
jest:
  configure:
    testTimeout: 10000
    roots: [<rootDir>/lib]
plugins:
  - plugin: test-environment
    options:
      environment: node
  - plugin: alias
    options:
      "@": src
`

// ── Run ───────────────────────────────────────────────────────────────────────

// TestRun_FullPipeline merges directives onto the installed react-scripts
// config and writes JSON to stdout.
func TestRun_FullPipeline(t *testing.T) {
	root := newProject(t, "3.4.1")
	dPath := filepath.Join(root, "jestmerge.yaml")
	writeFile(t, dPath, directiveFile)

	a, out := newTestApp(t, &config.StructuredConfig{
		Project: config.Project{RootDir: root, DirectivesPath: dPath, Env: "test"},
	})
	require.NoError(t, a.Run(context.Background()))

	got := decode(t, out.Bytes())

	assert.Equal(t, "node", got["testEnvironment"])
	assert.Equal(t, float64(10000), got["testTimeout"])
	assert.Equal(t, []any{"<rootDir>/src", "<rootDir>/lib"}, got["roots"])
	assert.Equal(t, root, got["rootDir"])

	transform := got["transform"].(map[string]any)
	babel := transform[merger.BabelTransformKey].([]any)
	assert.Equal(t, "babel-jest", babel[0])
	assert.Equal(t, []any{"babel-plugin-macros"}, babel[1].(map[string]any)["plugins"])

	mapper := got["moduleNameMapper"].(map[string]any)
	assert.Equal(t, "<rootDir>/src/$1", mapper["^@/(.*)$"])
}

// TestRun_LegacyPreset uses the installed version to pick the transform key.
func TestRun_LegacyPreset(t *testing.T) {
	root := newProject(t, "2.0.5")

	a, out := newTestApp(t, &config.StructuredConfig{Project: config.Project{RootDir: root}})
	require.NoError(t, a.Run(context.Background()))

	transform := decode(t, out.Bytes())["transform"].(map[string]any)
	assert.Contains(t, transform, merger.LegacyBabelTransformKey)
	assert.NotContains(t, transform, merger.BabelTransformKey)
}

// TestRun_PinnedVersion prefers the configured version over package.json.
func TestRun_PinnedVersion(t *testing.T) {
	root := newProject(t, "2.0.5")

	a, out := newTestApp(t, &config.StructuredConfig{
		Project: config.Project{RootDir: root, ReactScriptsVersion: "4.0.0"},
	})
	require.NoError(t, a.Run(context.Background()))

	transform := decode(t, out.Bytes())["transform"].(map[string]any)
	assert.Contains(t, transform, merger.BabelTransformKey)
}

// TestRun_BaseFileAndOutputFile reads the base config from a file and writes
// the result to the output path.
func TestRun_BaseFileAndOutputFile(t *testing.T) {
	root := t.TempDir()
	base := filepath.Join(root, "jest.base.json")
	writeFile(t, base, `{"transform": {"^.+\\.(js|jsx)$": "babel-jest"}, "setupFiles": ["a.js"]}`)
	dPath := filepath.Join(root, "jestmerge.yaml")
	writeFile(t, dPath, "jest:\n  configure:\n    setupFiles: [b.js]\n")
	outPath := filepath.Join(root, "jest.config.json")

	a, stdout := newTestApp(t, &config.StructuredConfig{
		Project: config.Project{RootDir: root, DirectivesPath: dPath, BaseConfigPath: base},
		Output:  config.Output{Path: outPath},
	})
	require.NoError(t, a.Run(context.Background()))
	assert.Zero(t, stdout.Len())

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	got := decode(t, data)
	assert.Equal(t, []any{"a.js", "b.js"}, got["setupFiles"])
	assert.Equal(t, "babel-jest", got["transform"].(map[string]any)[merger.LegacyBabelTransformKey])
}

// TestRun_ReactScriptsOverride binds the resolver to the configured package.
func TestRun_ReactScriptsOverride(t *testing.T) {
	root := newProject(t, "3.4.1")
	custom := filepath.Join(root, "scripts")
	for _, f := range []string{"babelTransform.js", "cssTransform.js", "fileTransform.js"} {
		writeFile(t, filepath.Join(custom, "config", "jest", f), "")
	}

	a, out := newTestApp(t, &config.StructuredConfig{
		Project: config.Project{RootDir: root, ReactScripts: "./scripts", ReactScriptsVersion: "3.4.1"},
	})
	require.NoError(t, a.Run(context.Background()))

	transform := decode(t, out.Bytes())["transform"].(map[string]any)
	assert.Equal(t, filepath.Join(custom, "config", "jest", "babelTransform.js"), transform[merger.BabelTransformKey])
}

func TestRun_Errors(t *testing.T) {
	t.Run("missing directive file", func(t *testing.T) {
		root := newProject(t, "3.4.1")
		a, _ := newTestApp(t, &config.StructuredConfig{
			Project: config.Project{RootDir: root, DirectivesPath: filepath.Join(root, "nope.yaml")},
		})
		assert.Error(t, a.Run(context.Background()))
	})

	t.Run("unknown configure function", func(t *testing.T) {
		root := newProject(t, "3.4.1")
		dPath := filepath.Join(root, "jestmerge.yaml")
		writeFile(t, dPath, "jest:\n  configure: nope\n")

		a, _ := newTestApp(t, &config.StructuredConfig{
			Project: config.Project{RootDir: root, DirectivesPath: dPath},
		})
		assert.ErrorIs(t, a.Run(context.Background()), directives.ErrUnknownConfigureFunc)
	})

	t.Run("unregistered plugin", func(t *testing.T) {
		root := newProject(t, "3.4.1")
		dPath := filepath.Join(root, "jestmerge.yaml")
		writeFile(t, dPath, "plugins:\n  - plugin: craco-less\n")

		a, _ := newTestApp(t, &config.StructuredConfig{
			Project: config.Project{RootDir: root, DirectivesPath: dPath},
		})
		assert.ErrorIs(t, a.Run(context.Background()), validators.ErrUnregisteredPlugin)
	})

	t.Run("missing transform entry", func(t *testing.T) {
		root := t.TempDir()
		base := filepath.Join(root, "jest.json")
		writeFile(t, base, `{"testEnvironment": "node"}`)
		dPath := filepath.Join(root, "jestmerge.yaml")
		writeFile(t, dPath, "babel:\n  presets: [x]\njest: {}\n")

		a, _ := newTestApp(t, &config.StructuredConfig{
			Project: config.Project{RootDir: root, DirectivesPath: dPath, BaseConfigPath: base},
		})
		assert.ErrorIs(t, a.Run(context.Background()), merger.ErrMissingTransformEntry)
	})

	t.Run("react-scripts not installed", func(t *testing.T) {
		a, _ := newTestApp(t, &config.StructuredConfig{
			Project: config.Project{RootDir: t.TempDir()},
		})
		assert.Error(t, a.Run(context.Background()))
	})
}

func TestNewApp_NilConfig(t *testing.T) {
	a, err := NewApp(nil, logger.Nop())
	assert.Nil(t, a)
	assert.Error(t, err)
}
