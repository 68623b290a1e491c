// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal front end of the export
// client. It is a thin layer over [service.LifecycleManager]: every screen
// issues one command and renders its outcome.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/service"
	"github.com/MKhiriev/go-group-export/models"
	tea "github.com/charmbracelet/bubbletea"
)

var errNoServices = errors.New("tui: lifecycle services are not configured")

// Options carries the settings screens need besides the services.
type Options struct {
	GroupID     string
	ExportsDir  string
	Wait        service.WaitPolicy
	RecentLimit int
	BuildInfo   models.AppBuildInfo
}

type TUI struct {
	manager service.LifecycleManager
	journal service.ClientJournalService
	opts    Options

	logger *logger.Logger
}

func New(services *service.ClientServices, opts Options, log *logger.Logger) (*TUI, error) {
	if services == nil || services.Manager == nil {
		return nil, errNoServices
	}
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = service.DefaultRecentJobs
	}

	return &TUI{
		manager: services.Manager,
		journal: services.Journal,
		opts:    opts,
		logger:  log,
	}, nil
}

// Run shows the menu and blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	root := t.newRootModel(ctx)

	if _, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	t.logger.Info().Msg("tui closed")
	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageMenu:   NewMenuModel(),
		pageStart:  newStartModel(ctx, t.manager),
		pageJob:    newJobModel(ctx, t.manager, t.opts),
		pageRecent: newRecentModel(ctx, t.journal, t.opts),
	}
	return NewRootModel(pages, pageMenu, t.opts.BuildInfo)
}
