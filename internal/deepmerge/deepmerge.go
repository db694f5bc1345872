// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package deepmerge merges Jest configs key by key.
//
// Nested mappings are merged recursively, slices at the same key are
// concatenated (target elements first) and any other conflict is won by the
// later source. Merging is done by dario.cat/mergo on deep copies, so none of
// the inputs is modified.
package deepmerge

import (
	"fmt"
	"reflect"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-jest-merge/models"
)

// MergeWithArray merges sources onto target in order and returns the result
// as a new config. A source value whose kind differs from the target's
// (slice vs scalar, mapping vs slice, ...) replaces it. Slices of different
// element types are concatenated into a []any.
func MergeWithArray(target models.JestConfig, sources ...models.JestConfig) (models.JestConfig, error) {
	merged := target.Clone()
	if merged == nil {
		merged = make(models.JestConfig)
	}

	for i, src := range sources {
		if len(src) == 0 {
			continue
		}

		src = src.Clone()
		settleConflicts(merged, src)

		if err := mergo.Merge(&merged, src, mergo.WithOverride, mergo.WithAppendSlice); err != nil {
			return nil, fmt.Errorf("error merging source #%d: %w", i, err)
		}
	}

	return merged, nil
}

// settleConflicts resolves, in place, the keys mergo cannot merge: the value
// is written to dst and removed from src. Nested mappings present on both
// sides are walked recursively.
func settleConflicts(dst, src map[string]any) {
	for key, s := range src {
		d, ok := dst[key]
		if !ok || d == nil || s == nil {
			continue
		}

		dMap, dIsMap := asMap(d)
		sMap, sIsMap := asMap(s)
		if dIsMap && sIsMap {
			settleConflicts(dMap, sMap)
			continue
		}

		dIsSlice, sIsSlice := isSlice(d), isSlice(s)
		switch {
		case dIsMap != sIsMap, dIsSlice != sIsSlice:
			dst[key] = s
			delete(src, key)
		case dIsSlice && reflect.TypeOf(d) != reflect.TypeOf(s):
			dst[key] = append(toAnySlice(d), toAnySlice(s)...)
			delete(src, key)
		}
	}
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case models.JestConfig:
		return m, true
	default:
		return nil, false
	}
}

func isSlice(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Slice
}

func toAnySlice(v any) []any {
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}
