// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-group-export/internal/service"
)

// Process exit codes.
const (
	exitOK = iota
	exitFailure
	exitUsage
	exitNotReady
	exitJobFailed
	exitPartial
	exitInterrupted = 130
)

var errPartialDownload = errors.New("some results could not be downloaded")

// usageError marks configuration and argument problems.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }

func (e *usageError) Unwrap() error { return e.err }

func partialDownload(failed, total int) error {
	return fmt.Errorf("%w: %d of %d failed", errPartialDownload, failed, total)
}

func exitCode(err error) int {
	var usageErr *usageError

	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &usageErr), errors.Is(err, service.ErrInvalidParameter):
		return exitUsage
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.Is(err, service.ErrJobFailed):
		return exitJobFailed
	case errors.Is(err, service.ErrJobNotReady), errors.Is(err, service.ErrWaitTimeout):
		return exitNotReady
	case errors.Is(err, errPartialDownload):
		return exitPartial
	}
	return exitFailure
}
