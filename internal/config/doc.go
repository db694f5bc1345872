// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the jestmerge CLI.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. YAML settings file
//  3. Environment variables (JESTMERGE_ prefix)
//  4. Command-line flags
//
// The main entry point is [GetStructuredConfig].
package config
