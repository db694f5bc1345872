// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the jestmerge pipeline: settings, directive file,
// validation, base config provider, merger and output.
//
// The Msg* constants are the log messages of the CLI. Keeping them in one
// place keeps the wording consistent between the entry point and [App].
package app

const (
	// MsgErrorGettingConfigs is logged when the runtime settings cannot be
	// loaded or fail validation.
	MsgErrorGettingConfigs = "error getting configs"

	// MsgErrorCreatingApp is logged when the pipeline cannot be assembled.
	MsgErrorCreatingApp = "error creating app"

	// MsgRunFailed is logged when merging or writing the config fails.
	MsgRunFailed = "jestmerge run failed"

	// MsgLoadedDirectives is logged after the directive file was parsed.
	MsgLoadedDirectives = "loaded directives"

	// MsgNoDirectives is logged when no directive file is configured and
	// the base config is written unchanged.
	MsgNoDirectives = "no directive file configured"

	// MsgUnknownPresetVersion is logged when the installed react-scripts
	// version cannot be read; the latest config layout is assumed.
	MsgUnknownPresetVersion = "cannot read react-scripts version, assuming latest"

	// MsgWroteConfig is logged after the merged config was written.
	MsgWroteConfig = "wrote merged Jest config"
)
