// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-group-export/models"
)

// ExportRequestBuilder validates export parameters and shapes them into a
// [models.ExportRequest]. It performs no I/O.
type ExportRequestBuilder interface {
	// Build validates dataset, format and columns and normalises filters.
	// Nil filters become an empty map. Any violation is returned as
	// [ErrInvalidParameter].
	Build(groupID string, dataset models.DatasetKind, filters map[string]any, opts ...BuildOption) (models.ExportRequest, error)
}

// JobSubmitter sends a built request to the "create export" endpoint.
type JobSubmitter interface {
	// Submit issues exactly one create call and returns the handle of the new
	// job. Rejected credentials yield [ErrAuthentication]; any other failure
	// yields a [*RemoteServiceError]. No retry is performed.
	Submit(ctx context.Context, req models.ExportRequest) (models.JobHandle, error)
}

// StatusPoller queries a job's state once.
type StatusPoller interface {
	// Poll issues one status call and maps the remote state string to a
	// [models.JobState]. Unknown states map to JobError.
	Poll(ctx context.Context, handle models.JobHandle) (models.JobStatus, error)
}

// ArtifactRetriever stores the result locations of a completed job on disk.
type ArtifactRetriever interface {
	// Retrieve fetches every location of status in order, one at a time, into
	// destDir. Per-location failures are reported in the result and do not
	// abort the batch.
	Retrieve(ctx context.Context, handle models.JobHandle, status models.JobStatus, destDir string) (models.DownloadResult, error)
}

// ArtifactCombiner merges the artifacts of one download into a single file.
type ArtifactCombiner interface {
	// Combine writes <dataset>_<jobID>_combined.<format> into destDir from
	// result's artifacts in order. Failed locations are skipped. CSV parts
	// keep the first header and must all share it ([ErrPartMismatch]); JSON
	// arrays are concatenated and other JSON values appended as elements.
	Combine(ctx context.Context, handle models.JobHandle, result models.DownloadResult, destDir string) (models.CombinedArtifact, error)
}

// LifecycleManager is the command surface used by the presentation layer.
// It holds no job state between calls.
type LifecycleManager interface {
	// StartExport builds and submits a request under the configured group.
	StartExport(ctx context.Context, dataset models.DatasetKind, filters map[string]any, opts ...BuildOption) (models.JobHandle, error)

	// CheckStatus polls the job once.
	CheckStatus(ctx context.Context, handle models.JobHandle) (models.JobStatus, error)

	// DownloadExport polls once and downloads the artifacts of a COMPLETE job.
	// PENDING or PROCESSING jobs fail with [ErrJobNotReady] and nothing is
	// written. ERROR jobs fail with [*JobFailedError].
	DownloadExport(ctx context.Context, handle models.JobHandle, destDir string) (models.DownloadResult, error)

	// CombineExport merges the artifacts of a finished download into one
	// file. A result without artifacts fails with [ErrNothingToCombine].
	CombineExport(ctx context.Context, handle models.JobHandle, result models.DownloadResult, destDir string) (models.CombinedArtifact, error)

	// WaitForCompletion polls until the job is terminal, the policy's maximum
	// wait elapses ([ErrWaitTimeout]) or ctx is cancelled. onPoll, when not
	// nil, receives every polled status. The last status is always returned.
	WaitForCompletion(ctx context.Context, handle models.JobHandle, policy WaitPolicy, onPoll func(models.JobStatus)) (models.JobStatus, error)

	// Handle rebuilds a handle for jobID under the configured group.
	Handle(jobID string, dataset models.DatasetKind, format models.ExportFormat) models.JobHandle

	// Resolve returns the journaled handle of jobID. When the job is not
	// journaled it falls back to Handle with the given dataset and format.
	Resolve(ctx context.Context, jobID string, dataset models.DatasetKind, format models.ExportFormat) models.JobHandle
}

// ClientJournalService records submitted handles so later invocations can
// address a job by id alone. It never stores job progress.
type ClientJournalService interface {
	// Record stores handle. Recording the same job twice is not an error.
	Record(ctx context.Context, handle models.JobHandle) error

	// Lookup returns the handle of jobID or [ErrUnknownJob].
	Lookup(ctx context.Context, jobID string) (models.JobHandle, error)

	// Recent returns up to limit handles of groupID, newest first.
	Recent(ctx context.Context, groupID string, limit int) ([]models.JobHandle, error)
}
