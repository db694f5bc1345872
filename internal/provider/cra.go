// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package provider supplies base Jest configs: the react-scripts default
// config and a config read from a file.
package provider

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"

	"github.com/MKhiriev/go-jest-merge/internal/merger"
	"github.com/MKhiriev/go-jest-merge/models"
)

// typeScriptSince is the first react-scripts release whose Jest config
// compiles TypeScript sources through babel.
const typeScriptSince = "v2.1.0"

// CRA produces the Jest config react-scripts generates for a project.
type CRA struct {
	version string
}

// NewCRA returns a provider for the given react-scripts version, e.g.
// "3.4.1". An empty version means the latest layout.
func NewCRA(version string) *CRA {
	return &CRA{version: version}
}

// Provide builds the config. Transformer and polyfill paths are resolved
// through resolve, except when ejecting, where module names relative to
// rootDir are used instead.
func (p *CRA) Provide(resolve models.Resolver, rootDir string, isEjecting bool) (models.JestConfig, error) {
	exts := "js,jsx,ts,tsx"
	babelKey := merger.BabelTransformKey
	if !p.supportsTypeScript() {
		exts = "js,jsx"
		babelKey = merger.LegacyBabelTransformKey
	}

	path := func(rel string) (string, error) {
		if isEjecting {
			return "<rootDir>/" + rel, nil
		}
		return resolve(rel)
	}

	babelTransform, err := path("config/jest/babelTransform.js")
	if err != nil {
		return nil, fmt.Errorf("error resolving babel transform: %w", err)
	}
	cssTransform, err := path("config/jest/cssTransform.js")
	if err != nil {
		return nil, fmt.Errorf("error resolving css transform: %w", err)
	}
	fileTransform, err := path("config/jest/fileTransform.js")
	if err != nil {
		return nil, fmt.Errorf("error resolving file transform: %w", err)
	}

	polyfill := "react-app-polyfill/jsdom"
	if !isEjecting {
		if polyfill, err = resolve("../react-app-polyfill/jsdom.js"); err != nil {
			// react-app-polyfill is hoisted next to react-scripts in most
			// installs; fall back to the bare module name otherwise.
			polyfill = "react-app-polyfill/jsdom"
		}
	}

	extPattern := strings.ReplaceAll(exts, ",", "|")

	transform := map[string]any{
		babelKey:                                  babelTransform,
		`^.+\.css$`:                               cssTransform,
		`^(?!.*\.(` + extPattern + `|css|json)$)`: fileTransform,
	}

	moduleNameMapper := map[string]any{
		"^react-native$":                "react-native-web",
		`^.+\.module\.(css|sass|scss)$`: "identity-obj-proxy",
	}

	config := models.JestConfig{
		"roots":               []any{"<rootDir>/src"},
		"collectCoverageFrom": []any{"src/**/*.{" + exts + "}", "!src/**/*.d.ts"},
		"setupFiles":          []any{polyfill},
		"setupFilesAfterEnv":  []any{},
		"testMatch": []any{
			"<rootDir>/src/**/__tests__/**/*.{" + exts + "}",
			"<rootDir>/src/**/*.{spec,test}.{" + exts + "}",
		},
		"testEnvironment":   "jsdom",
		models.TransformKey: transform,
		"transformIgnorePatterns": []any{
			`[/\\]node_modules[/\\].+\.(` + extPattern + `)$`,
			`^.+\.module\.(css|sass|scss)$`,
		},
		"moduleNameMapper":     moduleNameMapper,
		"moduleFileExtensions": []any{"web.js", "js", "web.ts", "ts", "web.tsx", "tsx", "json", "web.jsx", "jsx", "node"},
		"watchPlugins": []any{
			"jest-watch-typeahead/filename",
			"jest-watch-typeahead/testname",
		},
	}

	if rootDir != "" {
		config["rootDir"] = rootDir
	}

	return config, nil
}

func (p *CRA) supportsTypeScript() bool {
	if p.version == "" {
		return true
	}

	v := p.version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return true
	}

	return semver.Compare(v, typeScriptSince) >= 0
}
