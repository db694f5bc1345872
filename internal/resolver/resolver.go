// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package resolver locates files of an installed npm package from a Go
// program. It is narrower than Node's require.resolve: paths are resolved
// against <rootDir>/node_modules/<package> only, or against the package path
// itself when the package is given as a relative or absolute path.
package resolver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrModuleNotFound is returned when the resolved path does not exist.
var ErrModuleNotFound = errors.New("module not found")

// PackageResolver resolves paths inside one package installed under a
// project root.
type PackageResolver struct {
	rootDir string
	pkg     string
}

// New binds a resolver to the package pkg under rootDir. pkg may itself be a
// relative path such as "./my-react-scripts".
func New(rootDir, pkg string) *PackageResolver {
	return &PackageResolver{rootDir: rootDir, pkg: pkg}
}

// PackageDir returns the directory the package is expected in.
func (r *PackageResolver) PackageDir() string {
	switch {
	case filepath.IsAbs(r.pkg):
		return r.pkg
	case strings.HasPrefix(r.pkg, "."):
		return filepath.Join(r.rootDir, filepath.FromSlash(r.pkg))
	default:
		return filepath.Join(r.rootDir, "node_modules", filepath.FromSlash(r.pkg))
	}
}

// Resolve returns the absolute path of relativePath inside the package.
func (r *PackageResolver) Resolve(relativePath string) (string, error) {
	p, err := filepath.Abs(filepath.Join(r.PackageDir(), filepath.FromSlash(relativePath)))
	if err != nil {
		return "", fmt.Errorf("error resolving %q: %w", relativePath, err)
	}

	if _, err = os.Stat(p); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: cannot find %q from %q", ErrModuleNotFound, relativePath, r.pkg)
		}
		return "", fmt.Errorf("error resolving %q: %w", relativePath, err)
	}

	return p, nil
}

// PackageVersion reads the "version" field of the package's package.json.
func (r *PackageResolver) PackageVersion() (string, error) {
	p, err := r.Resolve("package.json")
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return "", fmt.Errorf("error reading package.json: %w", err)
	}

	var manifest struct {
		Version string `json:"version"`
	}
	if err = json.Unmarshal(data, &manifest); err != nil {
		return "", fmt.Errorf("error decoding %s: %w", p, err)
	}

	return manifest.Version, nil
}
