// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-group-export/models"
)

const journalTable = "export_journal"

var journalColumns = []string{"job_id", "group_id", "dataset", "format", "created_at"}

// sqlite uses "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildSaveJournalEntryQuery builds an upsert keyed by job_id. The original
// created_at is kept when the job is recorded again.
func buildSaveJournalEntryQuery(entry models.JournalEntry) (string, []any, error) {
	query, args, err := sqlite.
		Insert(journalTable).
		Columns(journalColumns...).
		Values(entry.JobID, entry.GroupID, string(entry.Dataset), string(entry.Format), entry.CreatedAt.UTC()).
		Suffix("ON CONFLICT(job_id) DO UPDATE SET group_id = excluded.group_id, dataset = excluded.dataset, format = excluded.format").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetJournalEntryQuery(jobID string) (string, []any, error) {
	query, args, err := sqlite.
		Select(journalColumns...).
		From(journalTable).
		Where(sq.Eq{"job_id": jobID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListRecentJournalQuery(groupID string, limit int) (string, []any, error) {
	builder := sqlite.
		Select(journalColumns...).
		From(journalTable).
		Where(sq.Eq{"group_id": groupID}).
		OrderBy("created_at DESC", "job_id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
