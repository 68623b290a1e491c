// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/utils"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/go-resty/resty/v2"
)

const (
	requestIDHeader = "Snyk-Request-Id"
	// errorBodyLimit bounds how much of a failed download body is read.
	errorBodyLimit = 4 << 10
)

type httpExportAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	baseURL    string
	apiHost    string
	apiVersion string
	authScheme string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPExportAdapter constructs the REST implementation of [ExportAdapter].
// It normalises the base URL from adapterCfg.BaseURL, configures the
// underlying HTTP client with the resolved base URL and request timeout and
// stores the API token from appCfg.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPExportAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (ExportAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}
	parsed, _ := url.Parse(baseURL)

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	scheme := strings.TrimSpace(appCfg.AuthScheme)
	if scheme == "" {
		scheme = config.DefaultAuthScheme
	}
	version := adapterCfg.APIVersion
	if version == "" {
		version = config.DefaultAPIVersion
	}

	a := &httpExportAdapter{
		client:     client,
		ids:        utils.NewUUIDGenerator(),
		baseURL:    baseURL,
		apiHost:    parsed.Host,
		apiVersion: version,
		authScheme: scheme,
		logger:     log,
	}
	a.SetToken(appCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ExportAdapter].
func (h *httpExportAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ExportAdapter].
func (h *httpExportAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// CreateExport implements [ExportAdapter]. It POSTs the JSON:API payload to
// POST /groups/{group_id}/export and decodes the returned job resource.
func (h *httpExportAdapter) CreateExport(ctx context.Context, groupID string, payload models.ExportPayload) (models.ExportResource, error) {
	log := h.logger.WithJob(groupID, "")

	resp, err := h.apiRequest(ctx).
		SetHeader("Content-Type", utils.JSONAPIContentType).
		SetPathParam("group_id", groupID).
		SetBody(payload).
		Post("/groups/{group_id}/export")
	if err != nil {
		log.Err(err).Str("func", "httpExportAdapter.CreateExport").Msg("create export request failed")
		return models.ExportResource{}, fmt.Errorf("create export request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpExportAdapter.CreateExport").Int("status", resp.StatusCode()).Msg("create export rejected")
		return models.ExportResource{}, err
	}

	var doc models.ExportResponse
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.ExportResource{}, fmt.Errorf("decode create export response: %w", err)
	}

	log.Debug().Str("func", "httpExportAdapter.CreateExport").Str("job_id", doc.Data.ID).Msg("export created")
	return doc.Data, nil
}

// GetExportStatus implements [ExportAdapter]. It GETs
// GET /groups/{group_id}/export/{export_id}.
func (h *httpExportAdapter) GetExportStatus(ctx context.Context, groupID, exportID string) (models.ExportResource, error) {
	log := h.logger.WithJob(groupID, exportID)

	resp, err := h.apiRequest(ctx).
		SetPathParams(map[string]string{"group_id": groupID, "export_id": exportID}).
		Get("/groups/{group_id}/export/{export_id}")
	if err != nil {
		log.Err(err).Str("func", "httpExportAdapter.GetExportStatus").Msg("export status request failed")
		return models.ExportResource{}, fmt.Errorf("get export status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpExportAdapter.GetExportStatus").Int("status", resp.StatusCode()).Msg("export status rejected")
		return models.ExportResource{}, err
	}

	var doc models.ExportResponse
	if err = json.Unmarshal(resp.Body(), &doc); err != nil {
		return models.ExportResource{}, fmt.Errorf("decode export status response: %w", err)
	}

	log.Debug().Str("func", "httpExportAdapter.GetExportStatus").Str("state", doc.Data.Attributes.Status).Msg("export status received")
	return doc.Data, nil
}

// FetchResult implements [ExportAdapter]. Locations on the API host get the
// Authorization header and the version parameter; foreign hosts (presigned
// storage URLs) are fetched as-is.
func (h *httpExportAdapter) FetchResult(ctx context.Context, location string, w io.Writer) (int64, error) {
	u, err := url.Parse(location)
	if err != nil {
		return 0, fmt.Errorf("parse result location: %w", err)
	}

	req := h.client.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader(requestIDHeader, h.ids.Generate())
	if h.onAPIHost(u) {
		h.authorize(req)
		if u.Query().Get("version") == "" {
			req.SetQueryParam("version", h.apiVersion)
		}
	}

	resp, err := req.Get(location)
	if err != nil {
		return 0, fmt.Errorf("fetch result request: %w", err)
	}
	body := resp.RawBody()
	defer body.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		head, _ := io.ReadAll(io.LimitReader(body, errorBodyLimit))
		return 0, mapStatus(resp.StatusCode(), head)
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("stream result: %w", err)
	}
	if n == 0 {
		return 0, ErrEmptyResult
	}

	h.logger.Debug().Str("func", "httpExportAdapter.FetchResult").Str("location", redactQuery(u)).Int64("bytes", n).Msg("result fetched")
	return n, nil
}

// ResultLocation implements [ExportAdapter].
func (h *httpExportAdapter) ResultLocation(groupID, exportID string) string {
	return h.baseURL + "/groups/" + url.PathEscape(groupID) + "/export/" + url.PathEscape(exportID) + "/download"
}

func (h *httpExportAdapter) apiRequest(ctx context.Context) *resty.Request {
	req := h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, h.ids.Generate()).
		SetQueryParam("version", h.apiVersion)
	h.authorize(req)
	return req
}

func (h *httpExportAdapter) authorize(req *resty.Request) {
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", h.authScheme+" "+token)
	}
}

func (h *httpExportAdapter) onAPIHost(u *url.URL) bool {
	return !u.IsAbs() || strings.EqualFold(u.Host, h.apiHost)
}

// redactQuery drops query strings so presigned credentials stay out of logs.
func redactQuery(u *url.URL) string {
	c := *u
	c.RawQuery = ""
	return c.String()
}
