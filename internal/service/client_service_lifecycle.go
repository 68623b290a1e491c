// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/models"
)

type lifecycleManager struct {
	groupID string

	builder   ExportRequestBuilder
	submitter JobSubmitter
	poller    StatusPoller
	retriever ArtifactRetriever
	combiner  ArtifactCombiner
	journal   ClientJournalService

	logger *logger.Logger
}

// NewLifecycleManager composes the lifecycle components for groupID. journal
// may be nil, in which case handles are not recorded and Resolve always
// falls back to Handle.
func NewLifecycleManager(
	groupID string,
	builder ExportRequestBuilder,
	submitter JobSubmitter,
	poller StatusPoller,
	retriever ArtifactRetriever,
	journal ClientJournalService,
	log *logger.Logger,
) LifecycleManager {
	return &lifecycleManager{
		groupID:   groupID,
		builder:   builder,
		submitter: submitter,
		poller:    poller,
		retriever: retriever,
		combiner:  NewArtifactCombiner(log),
		journal:   journal,
		logger:    log,
	}
}

// StartExport implements LifecycleManager. A journal write failure is logged
// and does not fail the call, since the job already exists remotely.
func (m *lifecycleManager) StartExport(ctx context.Context, dataset models.DatasetKind, filters map[string]any, opts ...BuildOption) (models.JobHandle, error) {
	req, err := m.builder.Build(m.groupID, dataset, filters, opts...)
	if err != nil {
		return models.JobHandle{}, err
	}

	handle, err := m.submitter.Submit(ctx, req)
	if err != nil {
		m.logger.Err(err).Str("func", "lifecycleManager.StartExport").Str("group_id", m.groupID).Msg("submit failed")
		return models.JobHandle{}, err
	}

	log := m.logger.WithJob(handle.GroupID(), handle.JobID())
	log.Info().Str("func", "lifecycleManager.StartExport").Str("dataset", string(handle.Dataset())).Msg("export started")

	if m.journal != nil {
		if err = m.journal.Record(ctx, handle); err != nil {
			log.Warn().Err(err).Str("func", "lifecycleManager.StartExport").Msg("journal record failed")
		}
	}

	return handle, nil
}

// CheckStatus implements LifecycleManager.
func (m *lifecycleManager) CheckStatus(ctx context.Context, handle models.JobHandle) (models.JobStatus, error) {
	status, err := m.poller.Poll(ctx, handle)
	if err != nil {
		return models.JobStatus{}, withJob(handle.JobID(), err)
	}

	m.logger.WithJob(handle.GroupID(), handle.JobID()).Debug().
		Str("func", "lifecycleManager.CheckStatus").
		Str("state", string(status.State)).
		Str("remote_state", status.RemoteState).
		Msg("status polled")
	return status, nil
}

// DownloadExport implements LifecycleManager.
func (m *lifecycleManager) DownloadExport(ctx context.Context, handle models.JobHandle, destDir string) (models.DownloadResult, error) {
	status, err := m.CheckStatus(ctx, handle)
	if err != nil {
		return models.DownloadResult{}, err
	}

	switch status.State {
	case models.JobComplete:
	case models.JobError:
		return models.DownloadResult{}, &JobFailedError{JobID: handle.JobID(), Detail: status.ErrorDetail}
	default:
		return models.DownloadResult{}, withJob(handle.JobID(), fmt.Errorf("%w: state %s", ErrJobNotReady, status.State))
	}

	result, err := m.retriever.Retrieve(ctx, handle, status, destDir)
	if err != nil {
		return result, withJob(handle.JobID(), err)
	}

	m.logger.WithJob(handle.GroupID(), handle.JobID()).Info().
		Str("func", "lifecycleManager.DownloadExport").
		Int("artifacts", len(result.Artifacts)).
		Int("failures", len(result.Failures)).
		Msg("download finished")
	return result, nil
}

// CombineExport implements LifecycleManager.
func (m *lifecycleManager) CombineExport(ctx context.Context, handle models.JobHandle, result models.DownloadResult, destDir string) (models.CombinedArtifact, error) {
	combined, err := m.combiner.Combine(ctx, handle, result, destDir)
	if err != nil {
		return combined, withJob(handle.JobID(), err)
	}
	return combined, nil
}

// Handle implements LifecycleManager.
func (m *lifecycleManager) Handle(jobID string, dataset models.DatasetKind, format models.ExportFormat) models.JobHandle {
	if dataset == "" {
		dataset = models.DatasetIssues
	}
	return models.NewJobHandle(jobID, m.groupID, dataset, format, time.Time{})
}

// Resolve implements LifecycleManager. A journaled handle recorded under a
// different group is ignored.
func (m *lifecycleManager) Resolve(ctx context.Context, jobID string, dataset models.DatasetKind, format models.ExportFormat) models.JobHandle {
	if m.journal != nil {
		handle, err := m.journal.Lookup(ctx, jobID)
		switch {
		case err == nil && handle.GroupID() == m.groupID:
			return handle
		case err != nil && !errors.Is(err, ErrUnknownJob):
			m.logger.Warn().Err(err).Str("func", "lifecycleManager.Resolve").Str("job_id", jobID).Msg("journal lookup failed")
		}
	}
	return m.Handle(jobID, dataset, format)
}
