// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package sandbox simulates the remote group export service in memory.
//
// Jobs advance one step per status read, so a client that polls sees the
// same pending, started and finished sequence the real service reports.
// Finished jobs serve deterministic CSV or JSON parts generated from the
// requested columns.
package sandbox

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/utils"
	"github.com/MKhiriev/go-group-export/models"
)

// ResourceType is the JSON:API type of export resources.
const ResourceType = "export"

type export struct {
	id      string
	groupID string
	dataset models.DatasetKind
	format  models.ExportFormat
	columns []string
	created time.Time
	reads   int
}

func (e *export) state(opts Options) string {
	switch {
	case e.reads >= opts.PollsToComplete:
		return opts.FinalState
	case e.reads <= 1:
		return StatePending
	default:
		return StateStarted
	}
}

func (e *export) finished(opts Options) bool {
	return e.reads >= opts.PollsToComplete && opts.FinalState == StateFinished
}

// Exports is the in-memory export job table.
type Exports struct {
	mu   sync.Mutex
	jobs map[string]*export
	opts Options

	ids *utils.UUIDGenerator
	now func() time.Time

	logger *logger.Logger
}

// NewExports creates an empty job table.
func NewExports(opts Options, log *logger.Logger) *Exports {
	return &Exports{
		jobs:   make(map[string]*export),
		opts:   opts.normalized(),
		ids:    utils.NewUUIDGenerator(),
		now:    time.Now,
		logger: log,
	}
}

// Create registers a new export job and returns it in the pending state.
func (s *Exports) Create(groupID string, attrs models.ExportPayloadAttributes) (models.ExportResource, error) {
	groupID = strings.TrimSpace(groupID)
	if groupID == "" {
		return models.ExportResource{}, fmt.Errorf("%w: group id is required", ErrInvalidExport)
	}

	if _, ok := defaultColumns[string(attrs.Dataset)]; !ok {
		return models.ExportResource{}, fmt.Errorf("%w: unsupported dataset %q", ErrInvalidExport, attrs.Dataset)
	}

	format := models.FormatCSV
	if len(attrs.Formats) > 0 {
		format = attrs.Formats[0]
	}
	if format != models.FormatCSV && format != models.FormatJSON {
		return models.ExportResource{}, fmt.Errorf("%w: unsupported format %q", ErrInvalidExport, format)
	}

	job := &export{
		id:      s.ids.Generate(),
		groupID: groupID,
		dataset: attrs.Dataset,
		format:  format,
		columns: append([]string(nil), attrs.Columns...),
		created: s.now().UTC(),
	}

	s.mu.Lock()
	s.jobs[job.id] = job
	s.mu.Unlock()

	s.logger.Info().
		Str("group_id", groupID).
		Str("job_id", job.id).
		Str("dataset", string(job.dataset)).
		Str("format", string(job.format)).
		Msg("export created")

	return job.resource(StatePending), nil
}

// Status reads the job and advances it one step. resultsBase is the public
// root result URLs are built on.
func (s *Exports) Status(groupID, exportID, resultsBase string) (models.ExportResource, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.lookup(groupID, exportID)
	if err != nil {
		return models.ExportResource{}, err
	}

	job.reads++
	state := job.state(s.opts)
	res := job.resource(state)

	switch state {
	case StateFinished:
		base := strings.TrimRight(resultsBase, "/")
		for part := 1; part <= s.opts.Parts; part++ {
			body, _ := s.part(job, part)
			res.Attributes.Results = append(res.Attributes.Results, models.ExportResult{
				URL:      fmt.Sprintf("%s/results/%s/%d", base, url.PathEscape(job.id), part),
				FileSize: int64(len(body)),
				RowCount: int64(s.opts.Rows),
			})
		}
	case StateFailed:
		res.Attributes.Error = s.opts.ErrorDetail
	}

	return res, nil
}

// Part returns the body of one result part of a finished job. Result URLs
// are not scoped to a group, as presigned links are not.
func (s *Exports) Part(exportID string, part int) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[exportID]
	if !ok || !job.finished(s.opts) {
		return nil, ErrPartNotFound
	}

	return s.part(job, part)
}

// Download returns the whole export of a finished job as one document.
func (s *Exports) Download(groupID, exportID string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, err := s.lookup(groupID, exportID)
	if err != nil {
		return nil, err
	}

	switch {
	case job.finished(s.opts):
	case job.state(s.opts) == StateFailed:
		return nil, ErrExportFailed
	default:
		return nil, ErrExportNotReady
	}

	parts := make([]int, 0, s.opts.Parts)
	for part := 1; part <= max(s.opts.Parts, 1); part++ {
		parts = append(parts, part)
	}
	return job.render(s.opts.Rows, parts...)
}

func (s *Exports) lookup(groupID, exportID string) (*export, error) {
	job, ok := s.jobs[exportID]
	if !ok || job.groupID != groupID {
		return nil, fmt.Errorf("%w: %s", ErrExportNotFound, exportID)
	}
	return job, nil
}

func (s *Exports) part(job *export, part int) ([]byte, error) {
	switch {
	case part < 1 || part > s.opts.Parts || part == s.opts.FailPart:
		return nil, ErrPartNotFound
	case part == s.opts.EmptyPart:
		return []byte{}, nil
	}
	return job.render(s.opts.Rows, part)
}

func (e *export) resource(state string) models.ExportResource {
	return models.ExportResource{
		ID:   e.id,
		Type: ResourceType,
		Attributes: models.ExportAttributes{
			Status:  state,
			Dataset: string(e.dataset),
			Created: e.created.Format(time.RFC3339),
		},
	}
}

// render produces rows rows per part. Cell values are derived from the
// column name, part and row number so the output is reproducible.
func (e *export) render(rows int, parts ...int) ([]byte, error) {
	columns := e.columns
	if len(columns) == 0 {
		columns = defaultColumns[string(e.dataset)]
	}

	records := make([][]string, 0, rows*len(parts))
	for _, part := range parts {
		for row := 1; row <= rows; row++ {
			record := make([]string, len(columns))
			for i, column := range columns {
				record[i] = fmt.Sprintf("%s-%d-%d", strings.ToLower(column), part, row)
			}
			records = append(records, record)
		}
	}

	if e.format == models.FormatJSON {
		objects := make([]map[string]string, 0, len(records))
		for _, record := range records {
			object := make(map[string]string, len(columns))
			for i, column := range columns {
				object[column] = record[i]
			}
			objects = append(objects, object)
		}
		return json.Marshal(objects)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(columns); err != nil {
		return nil, fmt.Errorf("error writing csv header: %w", err)
	}
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("error writing csv rows: %w", err)
	}
	return buf.Bytes(), nil
}
