// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/models"
)

type jobJournalRepository struct {
	*DB
	logger *logger.Logger
}

func NewJobJournalRepository(db *DB, logger *logger.Logger) JobJournalRepository {
	return &jobJournalRepository{
		DB:     db,
		logger: logger,
	}
}

func (j *jobJournalRepository) SaveEntry(ctx context.Context, entry models.JournalEntry) error {
	query, args, err := buildSaveJournalEntryQuery(entry)
	if err != nil {
		return err
	}

	if _, err = j.DB.ExecContext(ctx, query, args...); err != nil {
		j.logger.Err(err).
			Str("func", "jobJournalRepository.SaveEntry").
			Str("job_id", entry.JobID).
			Msg("failed to execute upsert for journal entry")
		return fmt.Errorf("%w: save journal entry (job_id=%s): %w", ErrExecutingQuery, entry.JobID, err)
	}

	return nil
}

func (j *jobJournalRepository) GetEntry(ctx context.Context, jobID string) (models.JournalEntry, error) {
	query, args, err := buildGetJournalEntryQuery(jobID)
	if err != nil {
		return models.JournalEntry{}, err
	}

	entry, err := scanJournalEntry(j.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.JournalEntry{}, ErrJournalEntryNotFound
	}
	if err != nil {
		j.logger.Err(err).
			Str("func", "jobJournalRepository.GetEntry").
			Str("job_id", jobID).
			Msg("failed to read journal entry")
		return models.JournalEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return entry, nil
}

func (j *jobJournalRepository) ListRecent(ctx context.Context, groupID string, limit int) ([]models.JournalEntry, error) {
	query, args, err := buildListRecentJournalQuery(groupID, limit)
	if err != nil {
		return nil, err
	}

	rows, err := j.DB.QueryContext(ctx, query, args...)
	if err != nil {
		j.logger.Err(err).
			Str("func", "jobJournalRepository.ListRecent").
			Str("group_id", groupID).
			Msg("failed to execute query for recent journal entries")
		return nil, fmt.Errorf("%w: list journal entries: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.JournalEntry
	for rows.Next() {
		entry, scanErr := scanJournalEntry(rows)
		if scanErr != nil {
			j.logger.Err(scanErr).
				Str("func", "jobJournalRepository.ListRecent").
				Str("group_id", groupID).
				Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entries = append(entries, entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		j.logger.Err(rowsErr).
			Str("func", "jobJournalRepository.ListRecent").
			Str("group_id", groupID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: iterate journal rows: %w", ErrScanningRow, rowsErr)
	}

	return entries, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanJournalEntry(row rowScanner) (models.JournalEntry, error) {
	var entry models.JournalEntry
	err := row.Scan(
		&entry.JobID,
		&entry.GroupID,
		&entry.Dataset,
		&entry.Format,
		&entry.CreatedAt,
	)
	return entry, err
}
