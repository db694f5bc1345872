// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package merger

import "errors"

var (
	// ErrMissingTransformEntry is returned when a Babel override is requested
	// but the base config has neither known babel transform entry.
	ErrMissingTransformEntry = errors.New("cannot find Jest transform entry for Babel")

	// ErrInvalidConfigureResult is returned when a jest.configure function
	// returns no config.
	ErrInvalidConfigureResult = errors.New("jest.configure function didn't return a Jest config")

	// ErrMalformedConfigure is returned for a configure directive that is
	// neither a full nor a partial override.
	ErrMalformedConfigure = errors.New("malformed jest.configure directive")
)
