// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Resolver maps a path relative to the preset package to an absolute path.
type Resolver func(relativePath string) (string, error)

// MergeContext is passed to configure functions and plugins.
type MergeContext struct {
	// Env is the build environment name, e.g. "test" or "development".
	Env string

	// RootDir is the project root. The merger resolves preset modules
	// relative to it.
	RootDir string

	// Resolve is bound to the preset package under RootDir. Filled by the
	// merger before any override sees the context.
	Resolve Resolver

	// Extra carries caller-defined values through to plugins untouched.
	Extra map[string]any
}
