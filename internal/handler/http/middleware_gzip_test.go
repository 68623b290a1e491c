// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gunzip(t *testing.T, body []byte) string {
	t.Helper()
	r, err := gzip.NewReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer r.Close()

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestGZip(t *testing.T) {
	tests := []struct {
		name           string
		acceptEncoding string
		status         int
		body           string
		explicitHeader bool
		wantGzipped    bool
	}{
		{
			name:           "compress when client accepts gzip",
			acceptEncoding: "gzip",
			status:         http.StatusOK,
			body:           "ISSUE_ID\nissue_id-1-1\n",
			explicitHeader: true,
			wantGzipped:    true,
		},
		{
			name:           "plain when client does not accept gzip",
			status:         http.StatusOK,
			body:           "ISSUE_ID\n",
			explicitHeader: true,
		},
		{
			name:           "accept-encoding list with quality values",
			acceptEncoding: "deflate, gzip;q=1.0, br",
			status:         http.StatusOK,
			body:           strings.Repeat("row,", 1000),
			explicitHeader: true,
			wantGzipped:    true,
		},
		{
			name:           "implicit 200 is compressed too",
			acceptEncoding: "gzip",
			status:         http.StatusOK,
			body:           `[{"ISSUE_ID":"issue_id-1-1"}]`,
			wantGzipped:    true,
		},
		{
			name:           "error documents are compressed",
			acceptEncoding: "gzip",
			status:         http.StatusNotFound,
			body:           `{"errors":[{"status":"404"}]}`,
			explicitHeader: true,
			wantGzipped:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.explicitHeader {
					w.WriteHeader(tt.status)
				}
				w.Write([]byte(tt.body))
			})

			req := httptest.NewRequest(http.MethodGet, "/results/job/1", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rr := httptest.NewRecorder()

			withGZip(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			if tt.wantGzipped {
				assert.Equal(t, "gzip", rr.Header().Get("Content-Encoding"))
				assert.Equal(t, tt.body, gunzip(t, rr.Body.Bytes()))
				return
			}
			assert.Empty(t, rr.Header().Get("Content-Encoding"))
			assert.Equal(t, tt.body, rr.Body.String())
		})
	}
}

func TestGZip_CompressionRatio(t *testing.T) {
	body := strings.Repeat("issue_id-1-1,project_name-1-1\n", 500)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Less(t, rr.Body.Len(), len(body)/4)
	assert.Equal(t, body, gunzip(t, rr.Body.Bytes()))
}

func TestGZip_EmptyBody(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte{})
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, gunzip(t, rr.Body.Bytes()))
}

func TestGZip_NothingWritten(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rr := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rr, req)

	assert.Empty(t, rr.Header().Get("Content-Encoding"))
	assert.Zero(t, rr.Body.Len())
}

func TestGZip_PoolReuse(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	}))

	for _, path := range []string{"/a", "/b", "/c"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Accept-Encoding", "gzip")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		assert.Equal(t, path, gunzip(t, rr.Body.Bytes()))
	}
}
