// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the remote group export
// service.
//
// The primary abstraction is [ExportAdapter], which decouples the service
// layer from the REST protocol. The package ships an HTTP implementation
// ([NewHTTPExportAdapter]) built on resty.
//
// Non-2xx responses are mapped by mapHTTPError to [*HTTPError] values that
// unwrap to the sentinels in errors.go, so callers can use [errors.Is] for
// transport-agnostic handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-group-export/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/export_adapter_mock.go -package=mock

// ExportAdapter defines communication with the remote export service.
// Implementations are responsible for serialisation, the Authorization header
// and mapping transport-level errors to the sentinel values of this package.
type ExportAdapter interface {
	// SetToken stores the API token attached to subsequent requests.
	SetToken(token string)

	// Token returns the API token currently stored in the adapter.
	Token() string

	// CreateExport submits a new export job for groupID and returns the job
	// resource reported by the service.
	CreateExport(ctx context.Context, groupID string, payload models.ExportPayload) (models.ExportResource, error)

	// GetExportStatus fetches the current job resource. One call per
	// invocation; no polling is done here.
	GetExportStatus(ctx context.Context, groupID, exportID string) (models.ExportResource, error)

	// FetchResult streams the content behind location into w and returns the
	// number of bytes written. An empty body is reported as [ErrEmptyResult].
	FetchResult(ctx context.Context, location string, w io.Writer) (int64, error)

	// ResultLocation returns the service's download endpoint for a completed
	// job that reported no explicit result URLs.
	ResultLocation(groupID, exportID string) string
}
