// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// LogLevel holds a zerolog level name. It implements the flag.Value
// interface and rejects unknown names at parse time.
type LogLevel string

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-root project root directory
//	-directives directive file (YAML or JSON)
//	-base base Jest config file replacing the react-scripts one
//	-react-scripts preset package name or path
//	-react-scripts-version preset version, e.g. 3.4.1
//	-env environment name passed to configure functions and plugins
//	-o output file, stdout when empty
//	-log-level zerolog level
//	-pretty human-readable logs
//	-c/-config YAML settings file
//	-version print build information and exit
func ParseFlags(args []string) (*StructuredConfig, error) {
	var cfg StructuredConfig
	var level LogLevel

	fs := flag.NewFlagSet("jestmerge", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Project.RootDir, "root", "", "Project root directory")
	fs.StringVar(&cfg.Project.DirectivesPath, "directives", "", "Directive file path")
	fs.StringVar(&cfg.Project.BaseConfigPath, "base", "", "Base Jest config file path")
	fs.StringVar(&cfg.Project.ReactScripts, "react-scripts", "", "react-scripts package name or path")
	fs.StringVar(&cfg.Project.ReactScriptsVersion, "react-scripts-version", "", "react-scripts version")
	fs.StringVar(&cfg.Project.Env, "env", "", "Environment name")
	fs.StringVar(&cfg.Output.Path, "o", "", "Output file path")
	fs.Var(&level, "log-level", "Log level (trace, debug, info, warn, error)")
	fs.BoolVar(&cfg.Log.Pretty, "pretty", false, "Human-readable logs")
	fs.StringVar(&cfg.ConfigFilePath, "c", "", "YAML settings file path")
	fs.StringVar(&cfg.ConfigFilePath, "config", "", "YAML settings file path (alias)")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Print build information")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("error parsing flags: unexpected arguments %v", fs.Args())
	}

	cfg.Log.Level = level.String()
	return &cfg, nil
}

// String returns the level name.
func (l *LogLevel) String() string {
	if l == nil {
		return ""
	}
	return string(*l)
}

// Set validates s against the zerolog level names.
func (l *LogLevel) Set(s string) error {
	s = strings.ToLower(strings.TrimSpace(s))
	if _, err := zerolog.ParseLevel(s); err != nil || s == "" {
		return fmt.Errorf("unknown log level %q", s)
	}

	*l = LogLevel(s)
	return nil
}
