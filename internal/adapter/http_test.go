// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter creates an httpExportAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpExportAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{BaseURL: serverURL, APIVersion: "2024-10-15", RequestTimeout: 5 * time.Second}
	appCfg := config.ClientApp{Token: "secret", GroupID: "grp-1", AuthScheme: "token"}

	a, err := NewHTTPExportAdapter(adapterCfg, appCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpExportAdapter)
}

func writeResource(t *testing.T, w http.ResponseWriter, status int, res models.ExportResource) {
	t.Helper()
	w.Header().Set("Content-Type", "application/vnd.api+json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(models.ExportResponse{Data: res}))
}

// ── Constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPExportAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewHTTPExportAdapter(config.ClientAdapter{BaseURL: "  "}, config.ClientApp{}, logger.Nop())
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "https://api.snyk.io/rest/", want: "https://api.snyk.io/rest"},
		{raw: "localhost:8088", want: "https://localhost:8088"},
		{raw: "http://127.0.0.1:9000", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetToken_Trims(t *testing.T) {
	a := newTestAdapter(t, "http://localhost")
	a.SetToken("  next  ")
	assert.Equal(t, "next", a.Token())
}

// ── CreateExport ────────────────────────────────────────────────────────────

func TestCreateExport_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/groups/grp-1/export", r.URL.Path)
		assert.Equal(t, "2024-10-15", r.URL.Query().Get("version"))
		assert.Equal(t, "token secret", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get(requestIDHeader))
		assert.Equal(t, "application/vnd.api+json", r.Header.Get("Content-Type"))

		var payload models.ExportPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "resource", payload.Data.Type)
		assert.Equal(t, models.DatasetIssues, payload.Data.Attributes.Dataset)
		assert.Equal(t, []models.ExportFormat{models.FormatCSV}, payload.Data.Attributes.Formats)

		writeResource(t, w, http.StatusAccepted, models.ExportResource{ID: "exp-1", Type: "export", Attributes: models.ExportAttributes{Status: "pending"}})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	req := models.ExportRequest{GroupID: "grp-1", Dataset: models.DatasetIssues, Format: models.FormatCSV, Filters: map[string]any{}}
	got, err := a.CreateExport(context.Background(), "grp-1", models.NewExportPayload(req))

	require.NoError(t, err)
	assert.Equal(t, "exp-1", got.ID)
	assert.Equal(t, "pending", got.Attributes.Status)
}

func TestCreateExport_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"status":"401","title":"Unauthorized","detail":"token rejected"}]}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateExport(context.Background(), "grp-1", models.ExportPayload{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Equal(t, "token rejected", httpErr.Message)
}

func TestCreateExport_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateExport(context.Background(), "grp-1", models.ExportPayload{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode create export response")
}

// ── GetExportStatus ─────────────────────────────────────────────────────────

func TestGetExportStatus_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/groups/grp-1/export/exp-1", r.URL.Path)
		assert.Equal(t, "2024-10-15", r.URL.Query().Get("version"))

		writeResource(t, w, http.StatusOK, models.ExportResource{
			ID: "exp-1",
			Attributes: models.ExportAttributes{
				Status:  "FINISHED",
				Results: []models.ExportResult{{URL: "https://bucket.example/a.csv"}},
			},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetExportStatus(context.Background(), "grp-1", "exp-1")

	require.NoError(t, err)
	assert.Equal(t, "FINISHED", got.Attributes.Status)
	require.Len(t, got.Attributes.Results, 1)
}

func TestGetExportStatus_ErrorKinds(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrTooManyRequests},
		{http.StatusBadGateway, ErrServerError},
		{http.StatusTeapot, ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.GetExportStatus(context.Background(), "grp-1", "exp-1")

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var httpErr *HTTPError
			require.True(t, errors.As(err, &httpErr))
			assert.Equal(t, http.StatusText(tt.status), httpErr.Message)
		})
	}
}

func TestGetExportStatus_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.GetExportStatus(context.Background(), "grp-1", "exp-1")

	require.Error(t, err)
	var httpErr *HTTPError
	assert.False(t, errors.As(err, &httpErr))
}

// ── FetchResult ─────────────────────────────────────────────────────────────

func TestFetchResult_APIHostGetsAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups/grp-1/export/exp-1/download", r.URL.Path)
		assert.Equal(t, "token secret", r.Header.Get("Authorization"))
		assert.Equal(t, "2024-10-15", r.URL.Query().Get("version"))
		_, _ = w.Write([]byte("a,b\n1,2\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	var buf bytes.Buffer
	n, err := a.FetchResult(context.Background(), a.ResultLocation("grp-1", "exp-1"), &buf)

	require.NoError(t, err)
	assert.Equal(t, int64(8), n)
	assert.Equal(t, "a,b\n1,2\n", buf.String())
}

func TestFetchResult_ForeignHostWithoutAuth(t *testing.T) {
	storage := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "sig", r.URL.Query().Get("X-Signature"))
		assert.Empty(t, r.URL.Query().Get("version"))
		_, _ = w.Write([]byte("payload"))
	}))
	defer storage.Close()

	a := newTestAdapter(t, "https://api.snyk.io/rest")
	var buf bytes.Buffer
	n, err := a.FetchResult(context.Background(), storage.URL+"/part-1.csv?X-Signature=sig", &buf)

	require.NoError(t, err)
	assert.Equal(t, int64(len("payload")), n)
}

func TestFetchResult_Empty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.FetchResult(context.Background(), srv.URL+"/empty", &bytes.Buffer{})

	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestFetchResult_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("expired link"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	var buf bytes.Buffer
	_, err := a.FetchResult(context.Background(), srv.URL+"/gone", &buf)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "expired link")
	assert.Zero(t, buf.Len())
}

func TestResultLocation_EscapesSegments(t *testing.T) {
	a := newTestAdapter(t, "https://api.eu.snyk.io/rest/")
	assert.Equal(t, "https://api.eu.snyk.io/rest/groups/g%2F1/export/e%201/download", a.ResultLocation("g/1", "e 1"))
}
