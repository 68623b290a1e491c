// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-group-export/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into the service
// error taxonomy. Nothing leaves this layer unclassified.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrForbidden) {
		return fmt.Errorf("%w: %w", ErrAuthentication, err)
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		return &RemoteServiceError{StatusCode: httpErr.StatusCode, Message: httpErr.Message, cause: err}
	}

	return &RemoteServiceError{Message: err.Error(), cause: err}
}

// downloadReason renders a fetch failure for a [DownloadError].
func downloadReason(err error) string {
	switch {
	case errors.Is(err, adapter.ErrEmptyResult):
		return "empty result"
	case errors.Is(err, adapter.ErrNotFound):
		return "result not found or link expired"
	}

	var httpErr *adapter.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Error()
	}
	return err.Error()
}
