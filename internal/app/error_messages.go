// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by the terminal UI
// and the command-line tool.
//
// All Msg* constants are short human-readable sentences. HumanizeError maps
// the service error taxonomy onto them so both front ends report the same
// failure the same way.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-group-export/internal/service"
)

const (
	// MsgAuthentication is shown when the service rejects the API token.
	MsgAuthentication = "authentication failed: check the API token and its access to the group"

	// MsgServiceUnavailable is shown when no HTTP response was received.
	MsgServiceUnavailable = "export service is unreachable: check the network and the base URL"

	// MsgJobNotReady is shown when a download is attempted too early.
	MsgJobNotReady = "export is still running, try again later or wait for it"

	// MsgJobFailed prefixes the service's own failure text.
	MsgJobFailed = "export job failed"

	// MsgWaitTimeout is shown when waiting gave up before a terminal state.
	MsgWaitTimeout = "gave up waiting for the export, it may still finish"

	// MsgJobNotFound is shown when the service does not know the job.
	MsgJobNotFound = "export not found for this group"

	// MsgRateLimited is shown on HTTP 429.
	MsgRateLimited = "too many requests, slow down and retry later"

	// MsgCancelled is shown when the user interrupted the operation.
	MsgCancelled = "operation cancelled"
)

// HumanizeError renders err as a single line for people. Unknown errors
// are returned as their own text.
func HumanizeError(err error) string {
	if err == nil {
		return ""
	}

	var (
		jobFailed *service.JobFailedError
		remoteErr *service.RemoteServiceError
	)

	switch {
	case errors.Is(err, context.Canceled):
		return MsgCancelled
	case errors.Is(err, service.ErrInvalidParameter):
		return err.Error()
	case errors.Is(err, service.ErrAuthentication):
		return MsgAuthentication
	case errors.As(err, &jobFailed):
		return fmt.Sprintf("%s: %s", MsgJobFailed, jobFailed.Detail)
	case errors.Is(err, service.ErrJobNotReady):
		return MsgJobNotReady
	case errors.Is(err, service.ErrWaitTimeout):
		return MsgWaitTimeout
	case errors.As(err, &remoteErr):
		return humanizeRemote(remoteErr)
	}

	return err.Error()
}

func humanizeRemote(err *service.RemoteServiceError) string {
	switch {
	case err.StatusCode == 0:
		return fmt.Sprintf("%s (%s)", MsgServiceUnavailable, err.Message)
	case err.StatusCode == http.StatusNotFound:
		return MsgJobNotFound
	case err.StatusCode == http.StatusTooManyRequests:
		return MsgRateLimited
	}
	return fmt.Sprintf("export service error (http %d): %s", err.StatusCode, err.Message)
}
