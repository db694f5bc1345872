// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package directives reads a directive file into [models.Directives].
//
// The file is YAML; JSON is accepted as well since it is a subset. The
// jest.configure value is decided here, once: a mapping becomes a
// [models.PartialOverride], a string names a registered configure function
// and becomes a [models.FullOverride]. Anything else is rejected.
package directives

import (
	"fmt"
	"maps"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-jest-merge/models"
)

type fileDirectives struct {
	ReactScriptsVersion string           `yaml:"reactScriptsVersion"`
	Babel               *fileBabel       `yaml:"babel"`
	Jest                *fileJest        `yaml:"jest"`
	Plugins             []filePluginItem `yaml:"plugins"`
}

type fileBabel struct {
	Presets []any `yaml:"presets"`
	Plugins []any `yaml:"plugins"`
}

type fileJest struct {
	Babel     fileJestBabel `yaml:"babel"`
	Configure yaml.Node     `yaml:"configure"`
}

type fileJestBabel struct {
	AddPresets *bool `yaml:"addPresets"`
	AddPlugins *bool `yaml:"addPlugins"`
}

type filePluginItem struct {
	Plugin  string         `yaml:"plugin"`
	Options map[string]any `yaml:"options"`
}

// Loader parses directive files.
type Loader struct {
	funcs map[string]models.ConfigureFunc
}

// NewLoader returns a loader resolving string configure values against funcs.
func NewLoader(funcs map[string]models.ConfigureFunc) *Loader {
	return &Loader{funcs: maps.Clone(funcs)}
}

// Load reads and parses the file at path.
func (l *Loader) Load(path string) (models.Directives, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Directives{}, fmt.Errorf("error reading directive file: %w", err)
	}

	d, err := l.Parse(data)
	if err != nil {
		return models.Directives{}, fmt.Errorf("%s: %w", path, err)
	}

	return d, nil
}

// Parse decodes a directive document.
func (l *Loader) Parse(data []byte) (models.Directives, error) {
	var raw fileDirectives
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return models.Directives{}, fmt.Errorf("%w: %w", ErrInvalidDirectives, err)
	}

	if err := checkKeys(&raw); err != nil {
		return models.Directives{}, fmt.Errorf("%w: %w", ErrInvalidDirectives, err)
	}

	d := models.Directives{ReactScriptsVersion: raw.ReactScriptsVersion}

	if raw.Babel != nil {
		d.Babel = &models.BabelDirectives{
			Presets: raw.Babel.Presets,
			Plugins: raw.Babel.Plugins,
		}
	}

	if raw.Jest != nil {
		configure, err := l.parseConfigure(&raw.Jest.Configure)
		if err != nil {
			return models.Directives{}, err
		}

		d.Jest = &models.JestDirectives{
			Babel: models.JestBabel{
				AddPresets: boolOr(raw.Jest.Babel.AddPresets, true),
				AddPlugins: boolOr(raw.Jest.Babel.AddPlugins, true),
			},
			Configure: configure,
		}
	}

	for i, item := range raw.Plugins {
		if item.Plugin == "" {
			return models.Directives{}, fmt.Errorf("plugins[%d]: %w", i, ErrMissingPluginName)
		}
		d.Plugins = append(d.Plugins, models.PluginEntry{
			Name:    item.Plugin,
			Options: item.Options,
		})
	}

	return d, nil
}

func (l *Loader) parseConfigure(node *yaml.Node) (models.ConfigureDirective, error) {
	switch {
	case node.Kind == 0:
		return nil, nil
	case node.Kind == yaml.ScalarNode && node.Tag == "!!null":
		return nil, nil
	case node.Kind == yaml.MappingNode:
		var values models.JestConfig
		if err := node.Decode(&values); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedConfigure, err)
		}
		if values == nil {
			values = models.JestConfig{}
		}
		if err := models.CheckKeys(values, "jest.configure"); err != nil {
			return nil, err
		}
		return models.PartialOverride{Values: values}, nil
	case node.Kind == yaml.ScalarNode && node.Tag == "!!str":
		fn, ok := l.funcs[node.Value]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownConfigureFunc, node.Value)
		}
		return models.FullOverride{Name: node.Value, Fn: fn}, nil
	default:
		return nil, fmt.Errorf("%w (line %d)", ErrMalformedConfigure, node.Line)
	}
}

func checkKeys(raw *fileDirectives) error {
	if raw.Babel != nil {
		if err := models.CheckKeys(raw.Babel.Presets, "babel.presets"); err != nil {
			return err
		}
		if err := models.CheckKeys(raw.Babel.Plugins, "babel.plugins"); err != nil {
			return err
		}
	}
	for i, item := range raw.Plugins {
		if err := models.CheckKeys(item.Options, fmt.Sprintf("plugins[%d].options", i)); err != nil {
			return err
		}
	}

	return nil
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
