// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"
)

// withVersion rejects API requests without the "version" query parameter,
// as the real service does.
func withVersion(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.TrimSpace(r.URL.Query().Get("version")) == "" {
			writeError(w, r, ErrVersionNotSpecified)
			return
		}
		next.ServeHTTP(w, r)
	})
}
