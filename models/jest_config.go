// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// JestConfig is the configuration object handed to the Jest test runner.
//
// Keys follow Jest's own option names ("transform", "testMatch",
// "moduleNameMapper", ...). Values are whatever Jest accepts: strings,
// numbers, booleans, []any and nested map[string]any. Configs decoded from
// YAML or JSON always use []any and map[string]any for composite values.
type JestConfig map[string]any

// TransformKey is the Jest option holding the pattern → handler mapping.
const TransformKey = "transform"

// Transform returns the "transform" mapping of the config.
// ok is false when the key is missing or does not hold a mapping.
func (c JestConfig) Transform() (map[string]any, bool) {
	switch t := c[TransformKey].(type) {
	case map[string]any:
		return t, true
	case JestConfig:
		return t, true
	default:
		return nil, false
	}
}

// Clone returns a deep copy of the config. Nested maps and []any slices are
// copied; any other value is shared with the original.
func (c JestConfig) Clone() JestConfig {
	if c == nil {
		return nil
	}

	out := make(JestConfig, len(c))
	for k, v := range c {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch value := v.(type) {
	case JestConfig:
		return value.Clone()
	case map[string]any:
		out := make(map[string]any, len(value))
		for k, nested := range value {
			out[k] = cloneValue(nested)
		}
		return out
	case []any:
		out := make([]any, len(value))
		for i, nested := range value {
			out[i] = cloneValue(nested)
		}
		return out
	default:
		return v
	}
}

// ErrNonStringKey is returned by [CheckKeys] for a mapping whose keys are
// not all strings. Such mappings cannot be written as JSON.
var ErrNonStringKey = errors.New("mapping keys must be strings")

// CheckKeys walks v and reports the first nested mapping with a non-string
// key. path names v in the error message.
func CheckKeys(v any, path string) error {
	switch value := v.(type) {
	case JestConfig:
		return CheckKeys(map[string]any(value), path)
	case map[string]any:
		for _, k := range slices.Sorted(maps.Keys(value)) {
			if err := CheckKeys(value[k], path+"."+k); err != nil {
				return err
			}
		}
	case []any:
		for i, nested := range value {
			if err := CheckKeys(nested, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case map[any]any:
		for k := range value {
			if _, ok := k.(string); !ok {
				return fmt.Errorf("%w: key %v at %s", ErrNonStringKey, k, path)
			}
		}
		return fmt.Errorf("%w: %s", ErrNonStringKey, path)
	}

	return nil
}
