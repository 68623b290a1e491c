// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-group-export/internal/validators"
	"github.com/MKhiriev/go-group-export/models"
)

// BuildOption customises a request built by [ExportRequestBuilder].
type BuildOption func(*buildOptions)

type buildOptions struct {
	format  models.ExportFormat
	columns []string
}

// WithFormat selects the artifact format. The default is CSV.
func WithFormat(format models.ExportFormat) BuildOption {
	return func(o *buildOptions) {
		o.format = models.ExportFormat(strings.ToLower(strings.TrimSpace(string(format))))
	}
}

// WithColumns restricts the exported columns. Without it issue exports use
// [DefaultIssueColumns] and dependency exports use the service default.
func WithColumns(columns ...string) BuildOption {
	return func(o *buildOptions) {
		o.columns = nil
		for _, c := range columns {
			if c = strings.TrimSpace(c); c != "" {
				o.columns = append(o.columns, strings.ToUpper(c))
			}
		}
	}
}

type exportRequestBuilder struct {
	validator validators.Validator
}

// NewExportRequestBuilder returns an ExportRequestBuilder checking requests
// with validator.
func NewExportRequestBuilder(validator validators.Validator) ExportRequestBuilder {
	return &exportRequestBuilder{validator: validator}
}

// Build implements ExportRequestBuilder.
func (b *exportRequestBuilder) Build(groupID string, dataset models.DatasetKind, filters map[string]any, opts ...BuildOption) (models.ExportRequest, error) {
	if !slices.Contains(models.DatasetKinds, dataset) {
		return models.ExportRequest{}, fmt.Errorf("%w: unsupported dataset %q", ErrInvalidParameter, dataset)
	}

	o := buildOptions{format: models.FormatCSV}
	for _, opt := range opts {
		opt(&o)
	}
	if len(o.columns) == 0 && dataset == models.DatasetIssues {
		o.columns = slices.Clone(DefaultIssueColumns)
	}

	normalized, err := normalizeFilters(dataset, filters)
	if err != nil {
		return models.ExportRequest{}, err
	}

	req := models.ExportRequest{
		GroupID: strings.TrimSpace(groupID),
		Dataset: dataset,
		Format:  o.format,
		Columns: o.columns,
		Filters: normalized,
	}
	if err = b.validator.Validate(context.Background(), req); err != nil {
		return models.ExportRequest{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	return req, nil
}

// normalizeFilters copies filters into the service schema. The caller's map
// is never modified.
func normalizeFilters(dataset models.DatasetKind, filters map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(filters))

	for key, value := range filters {
		switch key {
		case FilterIntroduced, FilterUpdated:
			if key == FilterIntroduced && dataset != models.DatasetIssues {
				return nil, fmt.Errorf("%w: filter %s applies to issues only", ErrInvalidParameter, key)
			}
			window, ok, err := normalizeWindow(key, value)
			if err != nil {
				return nil, err
			}
			if ok {
				out[key] = window
			}
		case FilterOrgs:
			orgs, err := normalizeOrgs(value)
			if err != nil {
				return nil, err
			}
			if len(orgs) > 0 {
				out[key] = orgs
			}
		default:
			out[key] = value
		}
	}

	return out, nil
}

func normalizeOrgs(value any) ([]string, error) {
	var raw []string
	switch v := value.(type) {
	case []string:
		raw = v
	case []any:
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: filter %s must list strings", ErrInvalidParameter, FilterOrgs)
			}
			raw = append(raw, s)
		}
	case string:
		raw = strings.Split(v, ",")
	case nil:
	default:
		return nil, fmt.Errorf("%w: filter %s has unsupported type %T", ErrInvalidParameter, FilterOrgs, value)
	}

	orgs := make([]string, 0, len(raw))
	for _, org := range raw {
		if org = strings.TrimSpace(org); org != "" && !slices.Contains(orgs, org) {
			orgs = append(orgs, org)
		}
	}
	return orgs, nil
}
