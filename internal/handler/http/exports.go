// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/sandbox"
	"github.com/MKhiriev/go-group-export/internal/utils"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createExport(w http.ResponseWriter, r *http.Request) {
	var payload models.ExportPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
		return
	}

	res, err := h.exports.Create(chi.URLParam(r, "group_id"), payload.Data.Attributes)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ExportResponse{Data: res}, http.StatusAccepted)
}

func (h *Handler) getExport(w http.ResponseWriter, r *http.Request) {
	res, err := h.exports.Status(chi.URLParam(r, "group_id"), chi.URLParam(r, "export_id"), h.resultsBase(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Debug().
		Str("job_id", res.ID).
		Str("state", res.Attributes.Status).
		Msg("export status read")

	utils.WriteJSON(w, models.ExportResponse{Data: res}, http.StatusOK)
}

func (h *Handler) downloadExport(w http.ResponseWriter, r *http.Request) {
	body, err := h.exports.Download(chi.URLParam(r, "group_id"), chi.URLParam(r, "export_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeArtifact(w, body)
}

func (h *Handler) getResultPart(w http.ResponseWriter, r *http.Request) {
	part, err := strconv.Atoi(chi.URLParam(r, "part"))
	if err != nil {
		writeError(w, r, sandbox.ErrPartNotFound)
		return
	}

	body, err := h.exports.Part(chi.URLParam(r, "export_id"), part)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeArtifact(w, body)
}

func writeArtifact(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
