// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-group-export/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// JobJournalRepository is the local record of submitted export jobs. It keeps
// job identity only; job progress always comes from the export service.
type JobJournalRepository interface {
	// SaveEntry inserts entry or refreshes an existing row with the same job id.
	SaveEntry(ctx context.Context, entry models.JournalEntry) error

	// GetEntry returns the entry of jobID or [ErrJournalEntryNotFound].
	GetEntry(ctx context.Context, jobID string) (models.JournalEntry, error)

	// ListRecent returns up to limit entries of groupID, newest first.
	ListRecent(ctx context.Context, groupID string, limit int) ([]models.JournalEntry, error)
}
