// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-jest-merge/internal/merger"
	"github.com/MKhiriev/go-jest-merge/models"
)

func stubResolve(rel string) (string, error) {
	return "/app/node_modules/react-scripts/" + rel, nil
}

func transformOf(t *testing.T, config models.JestConfig) map[string]any {
	t.Helper()
	transform, ok := config.Transform()
	require.True(t, ok)
	return transform
}

// ── CRA ───────────────────────────────────────────────────────────────────────

func TestCRA_Provide_TransformKeyByVersion(t *testing.T) {
	tests := []struct {
		version string
		wantKey string
		notKey  string
	}{
		{version: "", wantKey: merger.BabelTransformKey, notKey: merger.LegacyBabelTransformKey},
		{version: "3.4.1", wantKey: merger.BabelTransformKey, notKey: merger.LegacyBabelTransformKey},
		{version: "2.1.0", wantKey: merger.BabelTransformKey, notKey: merger.LegacyBabelTransformKey},
		{version: "v2.1.3", wantKey: merger.BabelTransformKey, notKey: merger.LegacyBabelTransformKey},
		{version: "2.0.5", wantKey: merger.LegacyBabelTransformKey, notKey: merger.BabelTransformKey},
		{version: "1.1.4", wantKey: merger.LegacyBabelTransformKey, notKey: merger.BabelTransformKey},
		{version: "not-a-version", wantKey: merger.BabelTransformKey, notKey: merger.LegacyBabelTransformKey},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			config, err := NewCRA(tt.version).Provide(stubResolve, "/app", false)
			require.NoError(t, err)

			transform := transformOf(t, config)
			assert.Equal(t, "/app/node_modules/react-scripts/config/jest/babelTransform.js", transform[tt.wantKey])
			assert.NotContains(t, transform, tt.notKey)
		})
	}
}

func TestCRA_Provide_Defaults(t *testing.T) {
	config, err := NewCRA("3.4.1").Provide(stubResolve, "/app", false)
	require.NoError(t, err)

	assert.Equal(t, "/app", config["rootDir"])
	assert.Equal(t, "jsdom", config["testEnvironment"])
	assert.Equal(t, []any{"<rootDir>/src"}, config["roots"])
	assert.Equal(t, []any{"/app/node_modules/react-scripts/../react-app-polyfill/jsdom.js"}, config["setupFiles"])
	assert.Equal(t, "/app/node_modules/react-scripts/config/jest/cssTransform.js", transformOf(t, config)[`^.+\.css$`])
}

func TestCRA_Provide_Ejecting(t *testing.T) {
	failing := func(string) (string, error) {
		t.Fatal("resolver must not be used when ejecting")
		return "", nil
	}

	config, err := NewCRA("").Provide(failing, "", true)
	require.NoError(t, err)

	assert.NotContains(t, config, "rootDir")
	assert.Equal(t, []any{"react-app-polyfill/jsdom"}, config["setupFiles"])
	assert.Equal(t, "<rootDir>/config/jest/babelTransform.js", transformOf(t, config)[merger.BabelTransformKey])
}

func TestCRA_Provide_ResolveError(t *testing.T) {
	failing := func(rel string) (string, error) {
		if strings.HasSuffix(rel, "babelTransform.js") {
			return "", assert.AnError
		}
		return rel, nil
	}

	_, err := NewCRA("").Provide(failing, "/app", false)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCRA_Provide_PolyfillFallback(t *testing.T) {
	resolve := func(rel string) (string, error) {
		if strings.Contains(rel, "react-app-polyfill") {
			return "", assert.AnError
		}
		return "/x/" + rel, nil
	}

	config, err := NewCRA("").Provide(resolve, "/app", false)
	require.NoError(t, err)
	assert.Equal(t, []any{"react-app-polyfill/jsdom"}, config["setupFiles"])
}

// ── File ──────────────────────────────────────────────────────────────────────

func TestFile_Provide(t *testing.T) {
	tests := []struct {
		name string
		file string
		body string
	}{
		{
			name: "json",
			file: "jest.base.json",
			body: `{"testEnvironment": "node", "transform": {"^.+\\.(js|jsx)$": "babel-jest"}, "roots": ["src"]}`,
		},
		{
			name: "yaml",
			file: "jest.base.yaml",
			body: "testEnvironment: node\ntransform:\n  '^.+\\.(js|jsx)$': babel-jest\nroots:\n  - src\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(p, []byte(tt.body), 0o600))

			config, err := NewFile(p).Provide(nil, "/app", false)
			require.NoError(t, err)

			assert.Equal(t, "node", config["testEnvironment"])
			assert.Equal(t, []any{"src"}, config["roots"])
			assert.Equal(t, "/app", config["rootDir"])
			assert.Equal(t, "babel-jest", transformOf(t, config)[merger.LegacyBabelTransformKey])
		})
	}
}

func TestFile_Provide_KeepsRootDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "jest.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"rootDir": "/custom"}`), 0o600))

	config, err := NewFile(p).Provide(nil, "/app", false)
	require.NoError(t, err)
	assert.Equal(t, "/custom", config["rootDir"])
}

func TestFile_Provide_Errors(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "missing.json")).Provide(nil, "", false)
	assert.Error(t, err)

	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not: [valid"), 0o600))
	_, err = NewFile(p).Provide(nil, "", false)
	assert.Error(t, err)
}

func TestFile_Provide_NonStringKey(t *testing.T) {
	p := filepath.Join(t.TempDir(), "jest.yaml")
	require.NoError(t, os.WriteFile(p, []byte("coverageThreshold:\n  1: {branches: 80}\n"), 0o600))

	_, err := NewFile(p).Provide(nil, "", false)
	assert.ErrorIs(t, err, models.ErrNonStringKey)
}
