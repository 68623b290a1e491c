// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// DatasetKind names the dataset a group export produces.
type DatasetKind string

const (
	// DatasetIssues exports the issues found across the group's projects.
	DatasetIssues DatasetKind = "issues"

	// DatasetDependencies exports the dependency inventory of the group.
	DatasetDependencies DatasetKind = "dependencies"
)

// DatasetKinds lists every dataset the export service accepts, in menu order.
var DatasetKinds = []DatasetKind{DatasetIssues, DatasetDependencies}

// ParseDatasetKind normalizes raw user input into a DatasetKind. The result is
// not validated; the request builder rejects unsupported values.
func ParseDatasetKind(raw string) DatasetKind {
	return DatasetKind(strings.ToLower(strings.TrimSpace(raw)))
}

// ExportFormat is the file format of the exported artifacts.
type ExportFormat string

const (
	FormatCSV  ExportFormat = "csv"
	FormatJSON ExportFormat = "json"
)

// ExportRequest is a validated export job request. It is produced by the
// request builder and must not be modified afterwards.
type ExportRequest struct {
	// GroupID is the account-level scope the export runs under.
	GroupID string `validate:"required"`

	// Dataset selects what is exported.
	Dataset DatasetKind `validate:"required,oneof=issues dependencies"`

	// Format is the artifact file format.
	Format ExportFormat `validate:"required,oneof=csv json"`

	// Columns optionally restricts the exported columns.
	Columns []string `validate:"dive,required,column"`

	// Filters holds service-side filters in the service schema. Never nil.
	Filters map[string]any `validate:"required"`
}

// JobHandle identifies one submitted export job for the rest of its life.
// Its fields are immutable; group and job identifiers always travel together.
type JobHandle struct {
	jobID     string
	groupID   string
	dataset   DatasetKind
	format    ExportFormat
	createdAt time.Time
}

// NewJobHandle builds a handle from the identifiers returned by the service
// (or recovered from the local journal).
func NewJobHandle(jobID, groupID string, dataset DatasetKind, format ExportFormat, createdAt time.Time) JobHandle {
	if format == "" {
		format = FormatCSV
	}
	return JobHandle{
		jobID:     jobID,
		groupID:   groupID,
		dataset:   dataset,
		format:    format,
		createdAt: createdAt,
	}
}

// JobID returns the service-assigned export identifier.
func (h JobHandle) JobID() string { return h.jobID }

// GroupID returns the group the job was created under.
func (h JobHandle) GroupID() string { return h.groupID }

// Dataset returns the exported dataset.
func (h JobHandle) Dataset() DatasetKind { return h.dataset }

// Format returns the requested artifact format.
func (h JobHandle) Format() ExportFormat { return h.format }

// CreatedAt returns the local submission time, zero if unknown.
func (h JobHandle) CreatedAt() time.Time { return h.createdAt }

// JobState is the client-side lifecycle state of an export job.
type JobState string

const (
	JobPending    JobState = "PENDING"
	JobProcessing JobState = "PROCESSING"
	JobComplete   JobState = "COMPLETE"
	JobError      JobState = "ERROR"
)

// Terminal reports whether no further transitions are possible.
func (s JobState) Terminal() bool {
	return s == JobComplete || s == JobError
}

// JobStatus is a snapshot of a job's state, derived from a single poll of the
// export service. It is never cached by the client.
type JobStatus struct {
	JobID string

	State JobState

	// RemoteState is the raw state string the service reported.
	RemoteState string

	// ResultLocations is set only when State is JobComplete.
	ResultLocations []string

	// ErrorDetail is set only when State is JobError.
	ErrorDetail string
}

// DownloadedArtifact describes one result location stored on local disk.
type DownloadedArtifact struct {
	SourceLocation string
	LocalPath      string
	ByteSize       int64
}

// DownloadFailure describes a result location that could not be fetched or
// written.
type DownloadFailure struct {
	Location string
	Reason   string
}

// DownloadResult carries the outcome of a batch download. Partial success is
// normal: both slices may be non-empty.
type DownloadResult struct {
	Artifacts []DownloadedArtifact
	Failures  []DownloadFailure
}

// CombinedArtifact is the single file merged from the artifacts of one
// download. Rows counts data rows for CSV and array elements for JSON.
type CombinedArtifact struct {
	LocalPath string
	ByteSize  int64
	Parts     int
	Rows      int
}

// JournalEntry is the locally recorded form of a submitted job handle.
type JournalEntry struct {
	JobID     string       `db:"job_id"`
	GroupID   string       `db:"group_id"`
	Dataset   DatasetKind  `db:"dataset"`
	Format    ExportFormat `db:"format"`
	CreatedAt time.Time    `db:"created_at"`
}

// Handle converts the entry back into a JobHandle.
func (e JournalEntry) Handle() JobHandle {
	return NewJobHandle(e.JobID, e.GroupID, e.Dataset, e.Format, e.CreatedAt)
}

// NewJournalEntry converts a handle into its journal form.
func NewJournalEntry(h JobHandle) JournalEntry {
	return JournalEntry{
		JobID:     h.JobID(),
		GroupID:   h.GroupID(),
		Dataset:   h.Dataset(),
		Format:    h.Format(),
		CreatedAt: h.CreatedAt(),
	}
}
