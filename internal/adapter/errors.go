// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrBadRequest       = errors.New("bad request")
	ErrUnauthorized     = errors.New("client unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrTooManyRequests  = errors.New("too many requests")
	ErrServerError      = errors.New("remote server error")
	ErrUnexpectedStatus = errors.New("unexpected status")

	// ErrEmptyResult is returned by FetchResult when the service answered
	// with a success status but no content.
	ErrEmptyResult = errors.New("empty result")
)

// HTTPError is a non-2xx response from the export service.
type HTTPError struct {
	StatusCode int
	Message    string

	kind error
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

// Unwrap returns the sentinel matching the status code.
func (e *HTTPError) Unwrap() error {
	return e.kind
}
