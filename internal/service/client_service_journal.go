// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-group-export/internal/store"
	"github.com/MKhiriev/go-group-export/models"
)

// DefaultRecentJobs is the history size shown when the caller gives no limit.
const DefaultRecentJobs = 20

type clientJournalService struct {
	repo store.JobJournalRepository
}

// NewClientJournalService returns a ClientJournalService persisting handles
// in repo.
func NewClientJournalService(repo store.JobJournalRepository) ClientJournalService {
	return &clientJournalService{repo: repo}
}

// Record implements ClientJournalService.
func (s *clientJournalService) Record(ctx context.Context, handle models.JobHandle) error {
	if err := s.repo.SaveEntry(ctx, models.NewJournalEntry(handle)); err != nil {
		return fmt.Errorf("record job %s: %w", handle.JobID(), err)
	}
	return nil
}

// Lookup implements ClientJournalService.
func (s *clientJournalService) Lookup(ctx context.Context, jobID string) (models.JobHandle, error) {
	entry, err := s.repo.GetEntry(ctx, jobID)
	if errors.Is(err, store.ErrJournalEntryNotFound) {
		return models.JobHandle{}, fmt.Errorf("%w: %s", ErrUnknownJob, jobID)
	}
	if err != nil {
		return models.JobHandle{}, fmt.Errorf("lookup job %s: %w", jobID, err)
	}
	return entry.Handle(), nil
}

// Recent implements ClientJournalService.
func (s *clientJournalService) Recent(ctx context.Context, groupID string, limit int) ([]models.JobHandle, error) {
	if limit <= 0 {
		limit = DefaultRecentJobs
	}

	entries, err := s.repo.ListRecent(ctx, groupID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent jobs: %w", err)
	}

	handles := make([]models.JobHandle, 0, len(entries))
	for _, e := range entries {
		handles = append(handles, e.Handle())
	}
	return handles, nil
}
