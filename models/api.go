// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ExportPayload is the JSON:API request body of the "create export" call.
type ExportPayload struct {
	Data ExportPayloadData `json:"data"`
}

// ExportPayloadData is the resource object inside [ExportPayload].
type ExportPayloadData struct {
	Type       string                  `json:"type"`
	Attributes ExportPayloadAttributes `json:"attributes"`
}

// ExportPayloadAttributes carries the export parameters.
type ExportPayloadAttributes struct {
	Dataset DatasetKind    `json:"dataset"`
	Formats []ExportFormat `json:"formats"`
	Columns []string       `json:"columns,omitempty"`
	Filters map[string]any `json:"filters"`
}

// NewExportPayload wraps a built request into the service envelope.
func NewExportPayload(req ExportRequest) ExportPayload {
	return ExportPayload{
		Data: ExportPayloadData{
			Type: "resource",
			Attributes: ExportPayloadAttributes{
				Dataset: req.Dataset,
				Formats: []ExportFormat{req.Format},
				Columns: req.Columns,
				Filters: req.Filters,
			},
		},
	}
}

// ExportResponse is the JSON:API document returned by the "create export" and
// "get export status" calls.
type ExportResponse struct {
	Data   ExportResource `json:"data"`
	Errors []APIError     `json:"errors,omitempty"`
}

// ExportResource is the export job resource object.
type ExportResource struct {
	ID         string           `json:"id"`
	Type       string           `json:"type"`
	Attributes ExportAttributes `json:"attributes"`
}

// ExportAttributes holds the job progress reported by the service.
type ExportAttributes struct {
	Status      string         `json:"status"`
	Dataset     string         `json:"dataset,omitempty"`
	Created     string         `json:"created,omitempty"`
	Results     []ExportResult `json:"results,omitempty"`
	DownloadURL string         `json:"download_url,omitempty"`
	Error       string         `json:"error,omitempty"`
}

// ExportResult is one chunk of export output.
type ExportResult struct {
	URL      string `json:"url"`
	FileSize int64  `json:"file_size,omitempty"`
	RowCount int64  `json:"row_count,omitempty"`
}

// APIError is a JSON:API error object.
type APIError struct {
	Status string `json:"status,omitempty"`
	Title  string `json:"title,omitempty"`
	Detail string `json:"detail,omitempty"`
}
