// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-jest-merge/models"
)

// Field names accepted by DirectivesValidator.Validate.
const (
	// FieldPackage targets the react-scripts package name.
	FieldPackage = "react_scripts"

	// FieldBabel targets the project-level presets and plugins.
	FieldBabel = "babel"

	// FieldConfigure targets jest.configure.
	FieldConfigure = "configure"

	// FieldPlugins targets the plugin list.
	FieldPlugins = "plugins"
)

// PluginLookup finds plugins by name.
type PluginLookup interface {
	Lookup(name string) (models.Plugin, bool)
}

// DirectivesValidator validates models.Directives.
type DirectivesValidator struct {
	plugins PluginLookup
}

// NewDirectivesValidator returns a Validator checking plugin names against
// plugins.
func NewDirectivesValidator(plugins PluginLookup) Validator {
	return &DirectivesValidator{plugins: plugins}
}

// Validate accepts models.Directives or *models.Directives. With no fields
// every field is checked.
func (v *DirectivesValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Directives:
		return v.validateDirectives(ctx, value, fields...)
	case *models.Directives:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateDirectives(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *DirectivesValidator) validateDirectives(_ context.Context, d models.Directives, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPackage, FieldBabel, FieldConfigure, FieldPlugins}
	}

	for _, f := range fields {
		switch f {
		case FieldPackage:
			if name := d.ReactScriptsVersion; name != "" && strings.TrimSpace(name) != name {
				return ErrInvalidPackageName
			}
		case FieldBabel:
			if d.Babel == nil {
				continue
			}
			if err := validateBabelEntries("presets", d.Babel.Presets); err != nil {
				return err
			}
			if err := validateBabelEntries("plugins", d.Babel.Plugins); err != nil {
				return err
			}
		case FieldConfigure:
			if d.Jest == nil {
				continue
			}
			if err := validateConfigure(d.Jest.Configure); err != nil {
				return err
			}
		case FieldPlugins:
			for i, entry := range d.Plugins {
				if err := v.validatePluginEntry(entry); err != nil {
					return fmt.Errorf("validation error at plugin %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateBabelEntries accepts "name", [name] and [name, options].
func validateBabelEntries(list string, entries []any) error {
	for i, entry := range entries {
		switch e := entry.(type) {
		case string:
			if e == "" {
				return fmt.Errorf("babel.%s[%d]: %w", list, i, ErrInvalidBabelEntry)
			}
		case []any:
			if len(e) == 0 || len(e) > 2 {
				return fmt.Errorf("babel.%s[%d]: %w", list, i, ErrInvalidBabelEntry)
			}
			if name, ok := e[0].(string); !ok || name == "" {
				return fmt.Errorf("babel.%s[%d]: %w", list, i, ErrInvalidBabelEntry)
			}
			if len(e) == 2 {
				if _, ok := e[1].(map[string]any); !ok {
					return fmt.Errorf("babel.%s[%d]: %w", list, i, ErrInvalidBabelEntry)
				}
			}
		default:
			return fmt.Errorf("babel.%s[%d]: %w", list, i, ErrInvalidBabelEntry)
		}
	}

	return nil
}

func validateConfigure(c models.ConfigureDirective) error {
	switch value := c.(type) {
	case nil:
		return nil
	case models.FullOverride:
		if value.Fn == nil {
			return fmt.Errorf("%w: configure function %q is nil", ErrInvalidConfigure, value.Name)
		}
	case *models.FullOverride:
		if value == nil || value.Fn == nil {
			return fmt.Errorf("%w: configure function is nil", ErrInvalidConfigure)
		}
	case models.PartialOverride, *models.PartialOverride:
	default:
		return fmt.Errorf("%w: %T", ErrInvalidConfigure, c)
	}

	return nil
}

func (v *DirectivesValidator) validatePluginEntry(entry models.PluginEntry) error {
	if entry.Plugin != nil {
		if entry.Name != "" && entry.Name != entry.Plugin.Name() {
			return fmt.Errorf("%w: %q vs %q", ErrPluginNameMismatch, entry.Name, entry.Plugin.Name())
		}
		return nil
	}

	if entry.Name == "" {
		return ErrEmptyPluginName
	}
	if v.plugins == nil {
		return fmt.Errorf("%w: %q", ErrUnregisteredPlugin, entry.Name)
	}
	if _, ok := v.plugins.Lookup(entry.Name); !ok {
		return fmt.Errorf("%w: %q", ErrUnregisteredPlugin, entry.Name)
	}

	return nil
}
