// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// JSONAPIContentType is the media type of JSON:API documents.
const JSONAPIContentType = "application/vnd.api+json"

// ErrInvalidAuthorizationHeader is returned by ParseAuthorization for a
// malformed Authorization header.
var ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

// WriteJSON serializes data as a JSON:API document and writes it to the
// HTTP response with the given status code.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, models.ExportResponse{...}, http.StatusAccepted)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", JSONAPIContentType)
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ParseAuthorization splits an Authorization header value of the form
// "<scheme> <credentials>". The scheme is returned as sent.
func ParseAuthorization(value string) (scheme, credentials string, err error) {
	parts := strings.Fields(strings.TrimSpace(value))
	if len(parts) != 2 {
		return "", "", ErrInvalidAuthorizationHeader
	}
	return parts[0], parts[1], nil
}
