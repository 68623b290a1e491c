// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value that
// can be passed to the service layer.
type ClientStorages struct {
	// JournalRepository is the SQLite-backed journal of submitted jobs.
	JournalRepository JobJournalRepository

	db *DB
}

// NewClientStorages initialises the client storage layer:
//  1. Opens an SQLite connection to cfg.DB.DSN, creating the file (and its
//     directory) if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Wires the journal repository to the connection.
//
// Returns an error if the connection cannot be established or migration
// fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Str("func", "NewClientStorages").Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		JournalRepository: NewJobJournalRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
