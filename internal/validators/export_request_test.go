// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-group-export/models"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() models.ExportRequest {
	return models.ExportRequest{
		GroupID: "grp-1",
		Dataset: models.DatasetIssues,
		Format:  models.FormatCSV,
		Columns: []string{"ISSUE_SEVERITY", "CVE"},
		Filters: map[string]any{},
	}
}

func TestExportRequestValidator_Valid(t *testing.T) {
	v := NewExportRequestValidator()

	require.NoError(t, v.Validate(context.Background(), validRequest()))

	req := validRequest()
	require.NoError(t, v.Validate(context.Background(), &req))

	req.Dataset = models.DatasetDependencies
	req.Format = models.FormatJSON
	req.Columns = nil
	assert.NoError(t, v.Validate(context.Background(), req))
}

func TestExportRequestValidator_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.ExportRequest)
		want   error
	}{
		{name: "empty group", mutate: func(r *models.ExportRequest) { r.GroupID = "" }, want: ErrInvalidGroupID},
		{name: "unknown dataset", mutate: func(r *models.ExportRequest) { r.Dataset = "licenses" }, want: ErrInvalidDataset},
		{name: "empty dataset", mutate: func(r *models.ExportRequest) { r.Dataset = "" }, want: ErrInvalidDataset},
		{name: "unknown format", mutate: func(r *models.ExportRequest) { r.Format = "xlsx" }, want: ErrInvalidFormat},
		{name: "lowercase column", mutate: func(r *models.ExportRequest) { r.Columns = []string{"cve"} }, want: ErrInvalidColumn},
		{name: "empty column", mutate: func(r *models.ExportRequest) { r.Columns = []string{"CVE", ""} }, want: ErrInvalidColumn},
		{name: "nil filters", mutate: func(r *models.ExportRequest) { r.Filters = nil }, want: ErrMissingFilters},
	}

	v := NewExportRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestExportRequestValidator_Fields(t *testing.T) {
	v := NewExportRequestValidator()
	req := validRequest()
	req.GroupID = ""

	assert.NoError(t, v.Validate(context.Background(), req, FieldDataset, FieldFormat))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldGroupID), ErrInvalidGroupID)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "Nope"), ErrUnknownField)
}

func TestExportRequestValidator_UnsupportedType(t *testing.T) {
	v := NewExportRequestValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "issues"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.ExportRequest)(nil)), ErrUnsupportedType)
}

func TestMustRegister(t *testing.T) {
	assert.NotPanics(t, func() { NewExportRequestValidator() })

	alwaysValid := func(validator.FieldLevel) bool { return true }
	assert.Panics(t, func() { mustRegister(validator.New(), "", alwaysValid) }, "empty tag")
	assert.Panics(t, func() { mustRegister(validator.New(), "column", nil) }, "nil rule")
}
