// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-group-export/internal/adapter"
	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/service"
	"github.com/MKhiriev/go-group-export/internal/store"
	"github.com/MKhiriev/go-group-export/internal/tui"
	"github.com/MKhiriev/go-group-export/models"
)

var errNoConfig = errors.New("client: config is required")

// App is the interactive export client.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errNoConfig
	}
	if log == nil {
		log = logger.Nop()
	}
	return &App{cfg: cfg, buildInfo: buildInfo, logger: log}, nil
}

// Run wires storages, transport and lifecycle services, then blocks in the
// terminal UI until the user quits or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	storages, err := store.NewClientStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		a.logger.Warn().Err(err).Msg("job journal unavailable, continuing without it")
		storages = nil
	}
	defer func() {
		if err := storages.Close(); err != nil {
			a.logger.Err(err).Msg("close client storages")
		}
	}()

	exportAdapter, err := adapter.NewHTTPExportAdapter(a.cfg.Adapter, a.cfg.App, a.logger)
	if err != nil {
		return fmt.Errorf("create export adapter: %w", err)
	}

	services := service.NewClientServices(a.cfg.App.GroupID, storages, exportAdapter, a.logger)

	ui, err := tui.New(services, a.tuiOptions(), a.logger)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	a.logger.Info().
		Str("group_id", a.cfg.App.GroupID).
		Str("base_url", a.cfg.Adapter.BaseURL).
		Msg("client started")

	return ui.Run(ctx)
}

func (a *App) tuiOptions() tui.Options {
	return tui.Options{
		GroupID:    a.cfg.App.GroupID,
		ExportsDir: a.cfg.Storage.ExportsDir,
		Wait: service.WaitPolicy{
			Interval: a.cfg.Workers.PollInterval,
			MaxWait:  a.cfg.Workers.MaxWait,
		},
		BuildInfo: a.buildInfo,
	}
}
