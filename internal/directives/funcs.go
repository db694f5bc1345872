// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package directives

import (
	"maps"

	"github.com/MKhiriev/go-jest-merge/models"
)

// DefaultConfigureFuncs returns the configure functions a directive file may
// name in jest.configure.
func DefaultConfigureFuncs() map[string]models.ConfigureFunc {
	return map[string]models.ConfigureFunc{
		"ci": configureCI,
	}
}

// configureCI turns on coverage with machine readable reporters and keeps
// everything else from the current config.
func configureCI(config models.JestConfig, _ models.MergeContext) (models.JestConfig, error) {
	result := maps.Clone(config)
	if result == nil {
		result = models.JestConfig{}
	}

	result["ci"] = true
	result["collectCoverage"] = true
	result["coverageReporters"] = []any{"text-summary", "lcov", "cobertura"}

	return result, nil
}
