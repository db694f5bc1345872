// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConfigureFunc takes over the Jest config completely. Whatever it returns
// replaces the current config; returning nil is an error.
type ConfigureFunc func(config JestConfig, ctx MergeContext) (JestConfig, error)

// ConfigureDirective is the jest.configure value after parsing.
// It is either [FullOverride] or [PartialOverride].
type ConfigureDirective interface {
	configureDirective()
}

// FullOverride replaces the Jest config with the result of Fn.
type FullOverride struct {
	// Name identifies the function for logs. Optional.
	Name string
	Fn   ConfigureFunc
}

// PartialOverride is deep-merged onto the Jest config.
type PartialOverride struct {
	Values JestConfig
}

func (FullOverride) configureDirective()    {}
func (PartialOverride) configureDirective() {}
