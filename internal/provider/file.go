// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package provider

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-jest-merge/models"
)

// File reads the base Jest config from a JSON or YAML file.
type File struct {
	path string
}

// NewFile returns a provider reading path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Provide decodes the file. resolve and isEjecting are not used; a non-empty
// rootDir is set as "rootDir" unless the file already defines it.
func (p *File) Provide(_ models.Resolver, rootDir string, _ bool) (models.JestConfig, error) {
	data, err := os.ReadFile(p.path)
	if err != nil {
		return nil, fmt.Errorf("error reading base Jest config: %w", err)
	}

	var config models.JestConfig
	if err = yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("error decoding base Jest config %s: %w", p.path, err)
	}
	if err = models.CheckKeys(config, p.path); err != nil {
		return nil, fmt.Errorf("error decoding base Jest config: %w", err)
	}
	if config == nil {
		config = models.JestConfig{}
	}

	if _, ok := config["rootDir"]; !ok && rootDir != "" {
		config["rootDir"] = rootDir
	}

	return config, nil
}
