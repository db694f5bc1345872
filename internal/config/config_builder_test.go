// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempSettings(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "jestmerge.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and no layers.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	for _, l := range b.layers {
		assert.Nil(t, l)
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_DefaultsOnly verifies the defaults form a valid config.
func TestBuild_DefaultsOnly(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, defaults(), cfg)
}

// TestBuild_EmptyBuilder verifies that a config without a root directory is
// rejected.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidProjectConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LayerPriority verifies flags > env > file > defaults regardless
// of the order the layers were added in.
func TestBuild_LayerPriority(t *testing.T) {
	b := newConfigBuilder()
	b.layers[layerFlags] = &StructuredConfig{Project: Project{RootDir: "/flags"}}
	b.layers[layerEnv] = &StructuredConfig{
		Project: Project{RootDir: "/env", Env: "ci"},
		Log:     Log{Level: "debug"},
	}
	b.layers[layerFile] = &StructuredConfig{
		Project: Project{RootDir: "/file", Env: "file", DirectivesPath: "d.yaml"},
		Log:     Log{Level: "warn"},
		Output:  Output{Path: "out.json"},
	}
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "/flags", cfg.Project.RootDir)
	assert.Equal(t, "ci", cfg.Project.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "d.yaml", cfg.Project.DirectivesPath)
	assert.Equal(t, "out.json", cfg.Output.Path)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

// TestWithEnv_ReadsEnvVars verifies that environment variables are picked up.
func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("JESTMERGE_PROJECT_ROOT_DIR", "/env-root")
	t.Setenv("JESTMERGE_LOG_LEVEL", "debug")

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.NotNil(t, b.layers[layerEnv])
	assert.Equal(t, "/env-root", b.layers[layerEnv].Project.RootDir)
	assert.Equal(t, "debug", b.layers[layerEnv].Log.Level)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
}

// TestWithFlags_SetsError verifies a bad flag is recorded.
func TestWithFlags_SetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
	assert.Nil(t, b.layers[layerFlags])
}

// ── withFile ──────────────────────────────────────────────────────────────────

// TestWithFile_NoOp_WhenNoPathSet verifies nothing is loaded without a path.
func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.layers[layerEnv] = &StructuredConfig{}
	b.withFile()

	assert.Nil(t, b.layers[layerFile])
	assert.NoError(t, b.err)
}

// TestWithFile_FlagPathWins verifies the flags layer names the file when both
// layers do.
func TestWithFile_FlagPathWins(t *testing.T) {
	fromEnv := writeTempSettings(t, "project:\n  env: from-env-file\n")
	fromFlags := writeTempSettings(t, "project:\n  env: from-flags-file\n")

	b := newConfigBuilder()
	b.layers[layerEnv] = &StructuredConfig{ConfigFilePath: fromEnv}
	b.layers[layerFlags] = &StructuredConfig{ConfigFilePath: fromFlags}
	b.withFile()

	require.NoError(t, b.err)
	require.NotNil(t, b.layers[layerFile])
	assert.Equal(t, "from-flags-file", b.layers[layerFile].Project.Env)
}

// TestWithFile_SetsError_WhenFileNotFound verifies that a missing file path
// sets b.err.
func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.layers[layerEnv] = &StructuredConfig{ConfigFilePath: "/nonexistent/jestmerge.yaml"}
	b.withFile()

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_AllSources runs the full chain.
func TestGetStructuredConfig_AllSources(t *testing.T) {
	settings := writeTempSettings(t, `
project:
  root_dir: /file-root
  directives: jestmerge.yaml
  react_scripts_version: 3.4.1
log:
  level: warn
  pretty: true
`)
	t.Setenv("JESTMERGE_CONFIG", settings)
	t.Setenv("JESTMERGE_PROJECT_ENV", "ci")
	t.Setenv("JESTMERGE_LOG_LEVEL", "error")

	cfg, err := GetStructuredConfig([]string{"-root", "/flag-root", "-o", "jest.json"})
	require.NoError(t, err)

	assert.Equal(t, "/flag-root", cfg.Project.RootDir)
	assert.Equal(t, "jestmerge.yaml", cfg.Project.DirectivesPath)
	assert.Equal(t, "3.4.1", cfg.Project.ReactScriptsVersion)
	assert.Equal(t, "ci", cfg.Project.Env)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, "jest.json", cfg.Output.Path)
}

// TestGetStructuredConfig_InvalidVersion verifies validation runs last.
func TestGetStructuredConfig_InvalidVersion(t *testing.T) {
	_, err := GetStructuredConfig([]string{"-react-scripts-version", "latest"})
	assert.ErrorIs(t, err, ErrInvalidProjectConfigs)
}
