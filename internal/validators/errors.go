// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPackageName = errors.New("invalid react-scripts package name")
	ErrInvalidBabelEntry  = errors.New("babel entry must be a name or a [name, options] pair")
	ErrInvalidConfigure   = errors.New("invalid jest.configure directive")
	ErrEmptyPluginName    = errors.New("plugin name is required")
	ErrUnregisteredPlugin = errors.New("plugin is not registered")
	ErrPluginNameMismatch = errors.New("plugin entry name does not match the plugin")
)
