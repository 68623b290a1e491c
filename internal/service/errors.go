// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter marks malformed request input. It is detected
	// locally and never reaches the remote service.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAuthentication means the service rejected the API token.
	ErrAuthentication = errors.New("authentication failed")

	// ErrJobNotReady is returned when a download is attempted before the job
	// reached COMPLETE.
	ErrJobNotReady = errors.New("export job is not ready")

	// ErrJobFailed is matched by every [*JobFailedError].
	ErrJobFailed = errors.New("export job failed")

	// ErrWaitTimeout is returned when a wait exceeds its maximum duration.
	ErrWaitTimeout = errors.New("timed out waiting for export job")

	// ErrUnknownJob is returned when a job id is not present in the journal.
	ErrUnknownJob = errors.New("export job is not in the local journal")

	// ErrNothingToCombine is returned when a download produced no artifact.
	ErrNothingToCombine = errors.New("no downloaded export parts to combine")

	// ErrPartMismatch is returned when downloaded parts cannot be merged,
	// such as CSV parts with different headers.
	ErrPartMismatch = errors.New("export parts do not match")
)

// RemoteServiceError is any non-success outcome of a call to the export
// service that is not an authentication failure. StatusCode is 0 when no HTTP
// response was received.
type RemoteServiceError struct {
	StatusCode int
	Message    string

	cause error
}

func (e *RemoteServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("remote service error: %s", e.Message)
	}
	return fmt.Sprintf("remote service error (http %d): %s", e.StatusCode, e.Message)
}

func (e *RemoteServiceError) Unwrap() error {
	return e.cause
}

// JobFailedError is returned when the service reports the job in ERROR.
// Detail is the service's error text, verbatim.
type JobFailedError struct {
	JobID  string
	Detail string
}

func (e *JobFailedError) Error() string {
	return fmt.Sprintf("export job %s failed: %s", e.JobID, e.Detail)
}

func (e *JobFailedError) Is(target error) bool {
	return target == ErrJobFailed
}

// DownloadError describes one result location that could not be fetched or
// written.
type DownloadError struct {
	Location string
	Reason   string

	cause error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download %s: %s", e.Location, e.Reason)
}

func (e *DownloadError) Unwrap() error {
	return e.cause
}

// JobError attaches the job id to an error raised while handling that job.
type JobError struct {
	JobID string
	Err   error
}

func (e *JobError) Error() string {
	return fmt.Sprintf("export job %s: %v", e.JobID, e.Err)
}

func (e *JobError) Unwrap() error {
	return e.Err
}

func withJob(jobID string, err error) error {
	if err == nil {
		return nil
	}

	var jobFailed *JobFailedError
	var jobErr *JobError
	if errors.As(err, &jobFailed) || errors.As(err, &jobErr) {
		return err
	}
	return &JobError{JobID: jobID, Err: err}
}
