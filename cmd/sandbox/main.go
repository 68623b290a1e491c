// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// sandbox serves a local stand-in of the group export REST API so the
// client and exportctl can be exercised without a real account.
package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/handler"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/sandbox"
	"github.com/MKhiriev/go-group-export/internal/server"
	"github.com/MKhiriev/go-group-export/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("export-sandbox")
	cfg, err := config.GetSandboxConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Sandbox.Address).
		Int("polls_to_complete", cfg.Sandbox.PollsToComplete).
		Int("parts", cfg.Sandbox.Parts).
		Str("final_state", cfg.Sandbox.FinalState).
		Msg("received configs")

	exports := sandbox.NewExports(sandboxOptions(cfg.Sandbox), log)

	handlers, err := handler.NewHandlers(exports, cfg.Sandbox, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Sandbox, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func sandboxOptions(cfg config.Sandbox) sandbox.Options {
	opts := sandbox.Options{
		PollsToComplete: cfg.PollsToComplete,
		Parts:           cfg.Parts,
		Rows:            cfg.Rows,
		FailPart:        cfg.FailPart,
		EmptyPart:       cfg.EmptyPart,
		FinalState:      cfg.FinalState,
		ErrorDetail:     cfg.ErrorDetail,
	}
	if cfg.NoResults {
		opts.Parts = 0
	}
	return opts
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
