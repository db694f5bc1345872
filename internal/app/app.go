// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-jest-merge/internal/config"
	"github.com/MKhiriev/go-jest-merge/internal/directives"
	"github.com/MKhiriev/go-jest-merge/internal/logger"
	"github.com/MKhiriev/go-jest-merge/internal/merger"
	"github.com/MKhiriev/go-jest-merge/internal/plugins"
	"github.com/MKhiriev/go-jest-merge/internal/provider"
	"github.com/MKhiriev/go-jest-merge/internal/resolver"
	"github.com/MKhiriev/go-jest-merge/internal/transform"
	"github.com/MKhiriev/go-jest-merge/internal/validators"
	"github.com/MKhiriev/go-jest-merge/models"
)

// App runs one merge from settings to output.
type App struct {
	cfg       *config.StructuredConfig
	loader    *directives.Loader
	validator validators.Validator
	merger    *merger.Merger
	stdout    io.Writer
	log       *logger.Logger
}

// NewApp assembles the pipeline with the built-in plugins and configure
// functions.
func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}

	registry := plugins.NewDefaultRegistry()

	return &App{
		cfg:       cfg,
		loader:    directives.NewLoader(directives.DefaultConfigureFuncs()),
		validator: validators.NewDirectivesValidator(registry),
		merger:    merger.NewMerger(transform.NewBabelFactory(), plugins.NewApplier(registry, log), log),
		stdout:    os.Stdout,
		log:       log,
	}, nil
}

// Run merges the Jest config and writes it as indented JSON.
func (a *App) Run(ctx context.Context) error {
	rootDir, err := filepath.Abs(a.cfg.Project.RootDir)
	if err != nil {
		return fmt.Errorf("error resolving project root: %w", err)
	}

	d, err := a.loadDirectives()
	if err != nil {
		return err
	}

	if err = a.validator.Validate(ctx, d); err != nil {
		return fmt.Errorf("invalid directives: %w", err)
	}

	merged, err := a.merger.MergeJestConfig(d, a.baseProvider(rootDir, d), models.MergeContext{
		Env:     a.cfg.Project.Env,
		RootDir: rootDir,
	})
	if err != nil {
		return fmt.Errorf("error merging Jest config: %w", err)
	}

	return a.write(merged)
}

func (a *App) loadDirectives() (models.Directives, error) {
	var d models.Directives

	if path := a.cfg.Project.DirectivesPath; path != "" {
		loaded, err := a.loader.Load(path)
		if err != nil {
			return models.Directives{}, err
		}
		d = loaded
		a.log.Debug().
			Str("path", path).
			Bool("jest", d.Jest != nil).
			Int("plugins", len(d.Plugins)).
			Msg(MsgLoadedDirectives)
	} else {
		a.log.Info().Msg(MsgNoDirectives)
	}

	if a.cfg.Project.ReactScripts != "" {
		d.ReactScriptsVersion = a.cfg.Project.ReactScripts
	}

	return d, nil
}

func (a *App) baseProvider(rootDir string, d models.Directives) merger.BaseConfigProvider {
	if path := a.cfg.Project.BaseConfigPath; path != "" {
		return provider.NewFile(path)
	}

	version := a.cfg.Project.ReactScriptsVersion
	if version == "" {
		v, err := resolver.New(rootDir, d.PackageName()).PackageVersion()
		if err != nil {
			a.log.Warn().Err(err).Str("package", d.PackageName()).Msg(MsgUnknownPresetVersion)
		}
		version = v
	}

	return provider.NewCRA(version)
}

func (a *App) write(config models.JestConfig) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding Jest config: %w", err)
	}
	data = append(data, '\n')

	if path := a.cfg.Output.Path; path != "" {
		if err = os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("error writing Jest config: %w", err)
		}
		a.log.Info().Str("path", path).Msg(MsgWroteConfig)
		return nil
	}

	if _, err = a.stdout.Write(data); err != nil {
		return fmt.Errorf("error writing Jest config: %w", err)
	}
	a.log.Debug().Msg(MsgWroteConfig)

	return nil
}
