// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-group-export/internal/adapter"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/store"
	"github.com/MKhiriev/go-group-export/internal/validators"
)

// ClientServices bundles the lifecycle components wired for one group.
type ClientServices struct {
	Builder   ExportRequestBuilder
	Submitter JobSubmitter
	Poller    StatusPoller
	Retriever ArtifactRetriever
	Journal   ClientJournalService
	Manager   LifecycleManager
}

// NewClientServices wires the export lifecycle for groupID on top of
// exportAdapter. storages may be nil, which disables the job journal.
func NewClientServices(groupID string, storages *store.ClientStorages, exportAdapter adapter.ExportAdapter, log *logger.Logger) *ClientServices {
	builder := NewExportRequestBuilder(validators.NewExportRequestValidator())
	submitter := NewJobSubmitter(exportAdapter)
	poller := NewStatusPoller(exportAdapter)
	retriever := NewArtifactRetriever(exportAdapter, log)

	var journal ClientJournalService
	if storages != nil && storages.JournalRepository != nil {
		journal = NewClientJournalService(storages.JournalRepository)
	}

	return &ClientServices{
		Builder:   builder,
		Submitter: submitter,
		Poller:    poller,
		Retriever: retriever,
		Journal:   journal,
		Manager:   NewLifecycleManager(groupID, builder, submitter, poller, retriever, journal, log),
	}
}
