// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/sandbox"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testToken   = "secret"
	testVersion = "?version=2024-10-15"
)

func newTestHandler(t *testing.T, opts *sandbox.Options) *Handler {
	t.Helper()
	o := sandbox.Options{PollsToComplete: 2, Parts: 2, Rows: 2}
	if opts != nil {
		o = *opts
	}
	return NewHandler(sandbox.NewExports(o, logger.Nop()), config.Sandbox{Token: testToken}, logger.Nop())
}

func newTestServer(t *testing.T, opts *sandbox.Options) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(newTestHandler(t, opts).Init())
	t.Cleanup(srv.Close)
	return srv
}

func doRequest(t *testing.T, method, url, body string, authorized bool) (*http.Response, []byte) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if authorized {
		req.Header.Set("Authorization", "token "+testToken)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func decodeResource(t *testing.T, body []byte) models.ExportResource {
	t.Helper()
	var doc models.ExportResponse
	require.NoError(t, json.Unmarshal(body, &doc))
	return doc.Data
}

func decodeErrors(t *testing.T, body []byte) []models.APIError {
	t.Helper()
	var doc errorDocument
	require.NoError(t, json.Unmarshal(body, &doc))
	return doc.Errors
}

const createBody = `{"data":{"type":"resource","attributes":{"dataset":"issues","formats":["csv"],"columns":["ISSUE_ID"],"filters":{}}}}`

func createExport(t *testing.T, srv *httptest.Server) models.ExportResource {
	t.Helper()
	resp, body := doRequest(t, http.MethodPost, srv.URL+"/rest/groups/grp/export"+testVersion, createBody, true)
	require.Equal(t, http.StatusAccepted, resp.StatusCode, string(body))
	return decodeResource(t, body)
}

func TestRoutes_ExportFlow(t *testing.T) {
	srv := newTestServer(t, nil)

	created := createExport(t, srv)
	assert.Equal(t, sandbox.StatePending, created.Attributes.Status)

	statusURL := srv.URL + "/rest/groups/grp/export/" + created.ID + testVersion

	resp, body := doRequest(t, http.MethodGet, statusURL, "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/vnd.api+json", resp.Header.Get("Content-Type"))
	assert.Equal(t, sandbox.StatePending, decodeResource(t, body).Attributes.Status)

	resp, body = doRequest(t, http.MethodGet, statusURL, "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	finished := decodeResource(t, body)
	assert.Equal(t, sandbox.StateFinished, finished.Attributes.Status)
	require.Len(t, finished.Attributes.Results, 2)
	assert.Equal(t, srv.URL+"/results/"+created.ID+"/1", finished.Attributes.Results[0].URL)

	resp, body = doRequest(t, http.MethodGet, finished.Attributes.Results[1].URL, "", false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ISSUE_ID\nissue_id-2-1\nissue_id-2-2\n", string(body))

	resp, body = doRequest(t, http.MethodGet, srv.URL+"/rest/groups/grp/export/"+created.ID+"/download"+testVersion, "", true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ISSUE_ID\nissue_id-1-1\nissue_id-1-2\nissue_id-2-1\nissue_id-2-2\n", string(body))
}

func TestRoutes_PublicURL(t *testing.T) {
	exports := sandbox.NewExports(sandbox.Options{PollsToComplete: 1, Parts: 1}, logger.Nop())
	h := NewHandler(exports, config.Sandbox{Token: testToken, PublicURL: "https://files.example.com/"}, logger.Nop())
	srv := httptest.NewServer(h.Init())
	defer srv.Close()

	created := createExport(t, srv)
	_, body := doRequest(t, http.MethodGet, srv.URL+"/rest/groups/grp/export/"+created.ID+testVersion, "", true)

	res := decodeResource(t, body)
	require.Len(t, res.Attributes.Results, 1)
	assert.Equal(t, "https://files.example.com/results/"+created.ID+"/1", res.Attributes.Results[0].URL)
}

func TestRoutes_Errors(t *testing.T) {
	srv := newTestServer(t, &sandbox.Options{PollsToComplete: 5, Parts: 1})
	created := createExport(t, srv)

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		authorized bool
		wantStatus int
		wantDetail string
	}{
		{
			name:       "missing authorization",
			method:     http.MethodGet,
			path:       "/rest/groups/grp/export/" + created.ID + testVersion,
			wantStatus: http.StatusUnauthorized,
			wantDetail: ErrEmptyAuthorizationHeader.Error(),
		},
		{
			name:       "missing version",
			method:     http.MethodGet,
			path:       "/rest/groups/grp/export/" + created.ID,
			authorized: true,
			wantStatus: http.StatusBadRequest,
			wantDetail: ErrVersionNotSpecified.Error(),
		},
		{
			name:       "unknown export",
			method:     http.MethodGet,
			path:       "/rest/groups/grp/export/missing" + testVersion,
			authorized: true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "export of another group",
			method:     http.MethodGet,
			path:       "/rest/groups/other/export/" + created.ID + testVersion,
			authorized: true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "download before finish",
			method:     http.MethodGet,
			path:       "/rest/groups/grp/export/" + created.ID + "/download" + testVersion,
			authorized: true,
			wantStatus: http.StatusConflict,
			wantDetail: sandbox.ErrExportNotReady.Error(),
		},
		{
			name:       "result part before finish",
			method:     http.MethodGet,
			path:       "/results/" + created.ID + "/1",
			wantStatus: http.StatusNotFound,
			wantDetail: sandbox.ErrPartNotFound.Error(),
		},
		{
			name:       "non numeric part",
			method:     http.MethodGet,
			path:       "/results/" + created.ID + "/first",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "malformed body",
			method:     http.MethodPost,
			path:       "/rest/groups/grp/export" + testVersion,
			body:       "{",
			authorized: true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unsupported dataset",
			method:     http.MethodPost,
			path:       "/rest/groups/grp/export" + testVersion,
			body:       `{"data":{"attributes":{"dataset":"licenses"}}}`,
			authorized: true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown route",
			method:     http.MethodGet,
			path:       "/rest/orgs" + testVersion,
			authorized: true,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "method not allowed",
			method:     http.MethodDelete,
			path:       "/rest/groups/grp/export/" + created.ID + testVersion,
			authorized: true,
			wantStatus: http.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := doRequest(t, tt.method, srv.URL+tt.path, tt.body, tt.authorized)

			require.Equal(t, tt.wantStatus, resp.StatusCode, string(body))
			errs := decodeErrors(t, body)
			require.Len(t, errs, 1)
			assert.Equal(t, http.StatusText(tt.wantStatus), errs[0].Title)
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, errs[0].Detail)
			}
		})
	}
}

func TestRoutes_FailedExport(t *testing.T) {
	srv := newTestServer(t, &sandbox.Options{PollsToComplete: 1, FinalState: sandbox.StateFailed, ErrorDetail: "boom"})
	created := createExport(t, srv)

	_, body := doRequest(t, http.MethodGet, srv.URL+"/rest/groups/grp/export/"+created.ID+testVersion, "", true)
	res := decodeResource(t, body)
	assert.Equal(t, sandbox.StateFailed, res.Attributes.Status)
	assert.Equal(t, "boom", res.Attributes.Error)
}
