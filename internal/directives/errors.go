// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package directives

import "errors"

var (
	ErrMalformedConfigure   = errors.New("jest.configure must be a mapping or the name of a configure function")
	ErrUnknownConfigureFunc = errors.New("unknown configure function")
	ErrMissingPluginName    = errors.New("plugin entry has no name")
	ErrInvalidDirectives    = errors.New("invalid directive file")
)
