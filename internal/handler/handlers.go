// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the sandbox server.
package handler

import (
	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/handler/http"
	"github.com/MKhiriev/go-group-export/internal/logger"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(exports http.ExportService, cfg config.Sandbox, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Address == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(exports, cfg, logger),
	}, nil
}
