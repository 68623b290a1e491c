// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-group-export/internal/adapter"
	"github.com/MKhiriev/go-group-export/models"
)

type jobSubmitter struct {
	adapter adapter.ExportAdapter
	now     func() time.Time
}

// NewJobSubmitter returns a JobSubmitter that creates jobs through
// exportAdapter.
func NewJobSubmitter(exportAdapter adapter.ExportAdapter) JobSubmitter {
	return &jobSubmitter{adapter: exportAdapter, now: time.Now}
}

// Submit implements JobSubmitter.
func (s *jobSubmitter) Submit(ctx context.Context, req models.ExportRequest) (models.JobHandle, error) {
	res, err := s.adapter.CreateExport(ctx, req.GroupID, models.NewExportPayload(req))
	if err != nil {
		return models.JobHandle{}, mapAdapterError(err)
	}

	jobID := strings.TrimSpace(res.ID)
	if jobID == "" {
		return models.JobHandle{}, &RemoteServiceError{Message: "create export response carries no export id"}
	}

	return models.NewJobHandle(jobID, req.GroupID, req.Dataset, req.Format, s.now().UTC()), nil
}
