// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-group-export/models"
	"github.com/go-resty/resty/v2"
)

func mapHTTPError(resp *resty.Response) error {
	return mapStatus(resp.StatusCode(), resp.Body())
}

func mapStatus(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	return NewHTTPError(status, errorMessage(status, body))
}

// NewHTTPError builds the error of a non-2xx response with the sentinel kind
// matching status.
func NewHTTPError(status int, message string) *HTTPError {
	httpErr := &HTTPError{StatusCode: status, Message: message}

	switch {
	case status == http.StatusBadRequest:
		httpErr.kind = ErrBadRequest
	case status == http.StatusUnauthorized:
		httpErr.kind = ErrUnauthorized
	case status == http.StatusForbidden:
		httpErr.kind = ErrForbidden
	case status == http.StatusNotFound:
		httpErr.kind = ErrNotFound
	case status == http.StatusConflict:
		httpErr.kind = ErrConflict
	case status == http.StatusTooManyRequests:
		httpErr.kind = ErrTooManyRequests
	case status >= http.StatusInternalServerError:
		httpErr.kind = ErrServerError
	default:
		httpErr.kind = ErrUnexpectedStatus
	}

	return httpErr
}

// errorMessage prefers the first JSON:API error object, then the raw body,
// then the status text.
func errorMessage(status int, body []byte) string {
	var doc struct {
		Errors []models.APIError `json:"errors"`
	}
	if err := json.Unmarshal(body, &doc); err == nil && len(doc.Errors) > 0 {
		first := doc.Errors[0]
		switch {
		case first.Detail != "":
			return first.Detail
		case first.Title != "":
			return first.Title
		}
	}

	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return http.StatusText(status)
}
