// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/models"
)

// ExportService is the job table the handlers serve.
type ExportService interface {
	Create(groupID string, attrs models.ExportPayloadAttributes) (models.ExportResource, error)
	Status(groupID, exportID, resultsBase string) (models.ExportResource, error)
	Part(exportID string, part int) ([]byte, error)
	Download(groupID, exportID string) ([]byte, error)
}

type Handler struct {
	exports   ExportService
	token     string
	publicURL string

	logger *logger.Logger
}

func NewHandler(exports ExportService, cfg config.Sandbox, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		exports:   exports,
		token:     cfg.Token,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}
}

// resultsBase is the root result links are built on: the configured public
// URL, or the scheme and host the request arrived at.
func (h *Handler) resultsBase(r *http.Request) string {
	if h.publicURL != "" {
		return h.publicURL
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host
}
