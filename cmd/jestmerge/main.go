// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-jest-merge/internal/app"
	"github.com/MKhiriev/go-jest-merge/internal/config"
	"github.com/MKhiriev/go-jest-merge/internal/logger"
	"github.com/MKhiriev/go-jest-merge/internal/utils"
	"github.com/MKhiriev/go-jest-merge/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log := logger.NewLogger("jestmerge", logger.Options{})
		log.Fatal().Err(err).Msg(app.MsgErrorGettingConfigs)
	}

	if cfg.PrintVersion {
		printBuildInfo()
		return
	}

	log := logger.NewLogger("jestmerge", logger.Options{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	}).WithRunID(utils.NewRunIDGenerator().Generate())

	log.Debug().Any("config", cfg).Msg("received configs")

	a, err := app.NewApp(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgErrorCreatingApp)
	}

	if err = a.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg(app.MsgRunFailed)
	}
}

func printBuildInfo() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
}
