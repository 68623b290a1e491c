// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/sandbox"
	"github.com/MKhiriev/go-group-export/internal/utils"
	"github.com/MKhiriev/go-group-export/models"
)

// Sentinel errors of the middleware chain and request decoding.
var (
	// ErrEmptyAuthorizationHeader is returned when the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrUnsupportedAuthScheme is returned for schemes other than "token"
	// and "Bearer".
	ErrUnsupportedAuthScheme = errors.New("unsupported authorization scheme")

	// ErrInvalidToken is returned when the token does not match.
	ErrInvalidToken = errors.New("invalid API token")

	// ErrVersionNotSpecified is returned when the "version" query parameter
	// is missing.
	ErrVersionNotSpecified = errors.New("the `version` query parameter is required")

	// ErrInvalidBody is returned when the request body is not a valid
	// JSON:API document.
	ErrInvalidBody = errors.New("request body is not a valid JSON:API document")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrUnsupportedAuthScheme:            http.StatusUnauthorized,
	ErrInvalidToken:                     http.StatusUnauthorized,
	ErrVersionNotSpecified:              http.StatusBadRequest,
	ErrInvalidBody:                      http.StatusBadRequest,
	ErrRouteNotFound:                    http.StatusNotFound,
	ErrMethodNotAllowed:                 http.StatusMethodNotAllowed,

	sandbox.ErrInvalidExport:  http.StatusBadRequest,
	sandbox.ErrExportNotFound: http.StatusNotFound,
	sandbox.ErrPartNotFound:   http.StatusNotFound,
	sandbox.ErrExportNotReady: http.StatusConflict,
	sandbox.ErrExportFailed:   http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

type errorDocument struct {
	Errors []models.APIError `json:"errors"`
}

// writeError renders err as a JSON:API error document with the status
// mapped from it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	logger.FromRequest(r).Err(err).Int("status", status).Msg("request failed")

	_, _ = utils.WriteJSON(w, errorDocument{
		Errors: []models.APIError{{
			Status: strconv.Itoa(status),
			Title:  http.StatusText(status),
			Detail: err.Error(),
		}},
	}, status)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrMethodNotAllowed)
}
