// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (JobJournalRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewJobJournalRepository(&DB{DB: db, logger: logger.Nop()}, logger.Nop()), mock
}

var createdAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testEntry() models.JournalEntry {
	return models.JournalEntry{
		JobID:     "exp-1",
		GroupID:   "grp-1",
		Dataset:   models.DatasetIssues,
		Format:    models.FormatCSV,
		CreatedAt: createdAt,
	}
}

// ── SaveEntry ───────────────────────────────────────────────────────────────

func TestSaveEntry_Success(t *testing.T) {
	repo, mock := newTestRepo(t)
	e := testEntry()

	mock.ExpectExec(`INSERT INTO export_journal \(job_id,group_id,dataset,format,created_at\) VALUES \(\?,\?,\?,\?,\?\) ON CONFLICT`).
		WithArgs(e.JobID, e.GroupID, "issues", "csv", createdAt).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.SaveEntry(context.Background(), e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveEntry_ExecError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectExec(`INSERT INTO export_journal`).WillReturnError(errors.New("disk full"))

	err := repo.SaveEntry(context.Background(), testEntry())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── GetEntry ────────────────────────────────────────────────────────────────

func TestGetEntry_Found(t *testing.T) {
	repo, mock := newTestRepo(t)

	rows := sqlmock.NewRows(journalColumns).AddRow("exp-1", "grp-1", "dependencies", "json", createdAt)
	mock.ExpectQuery(`SELECT (.+) FROM export_journal WHERE job_id = \?`).
		WithArgs("exp-1").
		WillReturnRows(rows)

	got, err := repo.GetEntry(context.Background(), "exp-1")
	require.NoError(t, err)
	assert.Equal(t, models.JournalEntry{
		JobID:     "exp-1",
		GroupID:   "grp-1",
		Dataset:   models.DatasetDependencies,
		Format:    models.FormatJSON,
		CreatedAt: createdAt,
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetEntry_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM export_journal`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetEntry(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrJournalEntryNotFound)
}

func TestGetEntry_QueryError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM export_journal`).WillReturnError(errors.New("locked"))

	_, err := repo.GetEntry(context.Background(), "exp-1")
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── ListRecent ──────────────────────────────────────────────────────────────

func TestListRecent_Success(t *testing.T) {
	repo, mock := newTestRepo(t)

	later := createdAt.Add(time.Hour)
	rows := sqlmock.NewRows(journalColumns).
		AddRow("exp-2", "grp-1", "issues", "csv", later).
		AddRow("exp-1", "grp-1", "issues", "csv", createdAt)
	mock.ExpectQuery(`SELECT (.+) FROM export_journal WHERE group_id = \? ORDER BY created_at DESC, job_id DESC LIMIT 5`).
		WithArgs("grp-1").
		WillReturnRows(rows)

	got, err := repo.ListRecent(context.Background(), "grp-1", 5)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "exp-2", got[0].JobID)
	assert.Equal(t, later, got[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListRecent_Empty(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM export_journal`).WillReturnRows(sqlmock.NewRows(journalColumns))

	got, err := repo.ListRecent(context.Background(), "grp-1", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListRecent_QueryError(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT (.+) FROM export_journal`).WillReturnError(errors.New("boom"))

	_, err := repo.ListRecent(context.Background(), "grp-1", 5)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListRecent_RowError(t *testing.T) {
	repo, mock := newTestRepo(t)

	rows := sqlmock.NewRows(journalColumns).
		AddRow("exp-1", "grp-1", "issues", "csv", createdAt).
		RowError(0, errors.New("corrupt page"))
	mock.ExpectQuery(`SELECT (.+) FROM export_journal`).WillReturnRows(rows)

	_, err := repo.ListRecent(context.Background(), "grp-1", 5)
	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── NewClientStorages ───────────────────────────────────────────────────────

func TestNewClientStorages_SQLiteFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.ClientStorage{ExportsDir: dir, DB: config.ClientDB{DSN: filepath.Join(dir, "nested", "journal.db")}}

	storages, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	ctx := context.Background()
	require.NoError(t, storages.JournalRepository.SaveEntry(ctx, testEntry()))
	require.NoError(t, storages.JournalRepository.SaveEntry(ctx, testEntry()))

	got, err := storages.JournalRepository.GetEntry(ctx, "exp-1")
	require.NoError(t, err)
	assert.Equal(t, "grp-1", got.GroupID)
	assert.True(t, createdAt.Equal(got.CreatedAt))

	recent, err := storages.JournalRepository.ListRecent(ctx, "grp-1", 10)
	require.NoError(t, err)
	assert.Len(t, recent, 1)
}
