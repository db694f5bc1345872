// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package plugins

import "errors"

var (
	ErrUnknownPlugin          = errors.New("unknown plugin")
	ErrPluginReturnedNoConfig = errors.New("plugin returned an undefined Jest config")
	ErrInvalidPluginOptions   = errors.New("invalid plugin options")
)
