// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-group-export/internal/utils"
)

// auth accepts requests whose "Authorization" header carries the configured
// token under the "token" or "Bearer" scheme. Anything else is rejected with
// 401 and a JSON:API error document.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		scheme, token, err := utils.ParseAuthorization(authHeader)
		if err != nil {
			writeError(w, r, err)
			return
		}

		switch strings.ToLower(scheme) {
		case "token", "bearer":
		default:
			writeError(w, r, ErrUnsupportedAuthScheme)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			writeError(w, r, ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
