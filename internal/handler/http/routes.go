// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// APIRoot is the prefix of the authenticated REST routes. Clients use
// "<server>/rest" as their base URL.
const APIRoot = "/rest"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	// result links behave like presigned URLs: no credentials, no version
	router.With(withGZip).Get("/results/{export_id}/{part}", h.getResultPart)

	router.Route(APIRoot, func(r chi.Router) {
		r.Use(h.auth)
		r.Use(withVersion)

		r.Post("/groups/{group_id}/export", h.createExport)
		r.Get("/groups/{group_id}/export/{export_id}", h.getExport)
		r.With(withGZip).Get("/groups/{group_id}/export/{export_id}/download", h.downloadExport)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)

	return router
}
