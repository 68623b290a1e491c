// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-group-export/internal/adapter"
	"github.com/MKhiriev/go-group-export/models"
)

// remoteStates maps lowercased service states onto the client lifecycle.
var remoteStates = map[string]models.JobState{
	"pending":     models.JobPending,
	"queued":      models.JobPending,
	"started":     models.JobProcessing,
	"processing":  models.JobProcessing,
	"in_progress": models.JobProcessing,
	"running":     models.JobProcessing,
	"complete":    models.JobComplete,
	"completed":   models.JobComplete,
	"finished":    models.JobComplete,
	"error":       models.JobError,
	"failed":      models.JobError,
	"cancelled":   models.JobError,
	"canceled":    models.JobError,
}

type statusPoller struct {
	adapter adapter.ExportAdapter
}

// NewStatusPoller returns a StatusPoller reading job state through
// exportAdapter.
func NewStatusPoller(exportAdapter adapter.ExportAdapter) StatusPoller {
	return &statusPoller{adapter: exportAdapter}
}

// Poll implements StatusPoller.
func (p *statusPoller) Poll(ctx context.Context, handle models.JobHandle) (models.JobStatus, error) {
	res, err := p.adapter.GetExportStatus(ctx, handle.GroupID(), handle.JobID())
	if err != nil {
		return models.JobStatus{}, mapAdapterError(err)
	}

	return p.interpret(handle, res.Attributes), nil
}

func (p *statusPoller) interpret(handle models.JobHandle, attrs models.ExportAttributes) models.JobStatus {
	status := models.JobStatus{
		JobID:       handle.JobID(),
		RemoteState: attrs.Status,
	}

	state, known := classifyState(attrs.Status)
	status.State = state

	switch {
	case !known:
		status.ErrorDetail = fmt.Sprintf("unexpected export state %q", attrs.Status)
	case state == models.JobError:
		status.ErrorDetail = attrs.Error
		if strings.TrimSpace(status.ErrorDetail) == "" {
			status.ErrorDetail = fmt.Sprintf("export %s", strings.ToLower(strings.TrimSpace(attrs.Status)))
		}
	case state == models.JobComplete:
		status.ResultLocations = resultLocations(attrs)
		if len(status.ResultLocations) == 0 {
			status.ResultLocations = []string{p.adapter.ResultLocation(handle.GroupID(), handle.JobID())}
		}
	}

	return status
}

// classifyState maps a remote state string case-insensitively. Unknown
// values, including the empty string, classify as JobError.
func classifyState(raw string) (models.JobState, bool) {
	state, ok := remoteStates[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return models.JobError, false
	}
	return state, true
}

func resultLocations(attrs models.ExportAttributes) []string {
	var locations []string
	for _, r := range attrs.Results {
		if u := strings.TrimSpace(r.URL); u != "" {
			locations = append(locations, u)
		}
	}
	if len(locations) == 0 {
		if u := strings.TrimSpace(attrs.DownloadURL); u != "" {
			locations = append(locations, u)
		}
	}
	return locations
}
