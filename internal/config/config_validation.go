// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/mod/semver"
)

// validate checks the final merged [StructuredConfig] before it is used.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Project.RootDir) == "" {
		return fmt.Errorf("%w: root directory is required", ErrInvalidProjectConfigs)
	}

	if v := cfg.Project.ReactScriptsVersion; v != "" {
		if !strings.HasPrefix(v, "v") {
			v = "v" + v
		}
		if !semver.IsValid(v) {
			return fmt.Errorf("%w: react-scripts version %q is not a semantic version", ErrInvalidProjectConfigs, cfg.Project.ReactScriptsVersion)
		}
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
