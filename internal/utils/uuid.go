// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the jestmerge packages.
package utils

import "github.com/google/uuid"

// RunIDGenerator produces identifiers for merge runs. Every log entry of one
// jestmerge invocation carries the same run id.
type RunIDGenerator struct {
}

// NewRunIDGenerator returns a generator of time-ordered (v7) UUID strings.
func NewRunIDGenerator() *RunIDGenerator {
	return &RunIDGenerator{}
}

// Generate returns a new v7 UUID, or a random v4 one if v7 generation fails.
func (g *RunIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
