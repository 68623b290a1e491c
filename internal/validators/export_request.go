// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-group-export/models"
	"github.com/go-playground/validator/v10"
)

// Struct field names accepted by Validate to scope validation.
const (
	FieldGroupID = "GroupID"
	FieldDataset = "Dataset"
	FieldFormat  = "Format"
	FieldColumns = "Columns"
	FieldFilters = "Filters"
)

var fieldErrors = map[string]error{
	FieldGroupID: ErrInvalidGroupID,
	FieldDataset: ErrInvalidDataset,
	FieldFormat:  ErrInvalidFormat,
	FieldColumns: ErrInvalidColumn,
	FieldFilters: ErrMissingFilters,
}

var columnPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

type ExportRequestValidator struct {
	validate *validator.Validate
}

// NewExportRequestValidator returns a Validator for [models.ExportRequest].
func NewExportRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "column", func(fl validator.FieldLevel) bool {
		return columnPattern.MatchString(fl.Field().String())
	})

	return &ExportRequestValidator{validate: v}
}

// mustRegister adds a custom tag to v. A rule that cannot be registered would
// make every later check of that tag panic, so it fails at construction.
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("validators: register %q rule: %v", tag, err))
	}
}

func (v *ExportRequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ExportRequest:
		return v.validateExportRequest(ctx, value, fields...)
	case *models.ExportRequest:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateExportRequest(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ExportRequestValidator) validateExportRequest(ctx context.Context, req models.ExportRequest, fields ...string) error {
	for _, field := range fields {
		if _, ok := fieldErrors[field]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, req)
	} else {
		err = v.validate.StructPartialCtx(ctx, req, fields...)
	}

	return translate(err)
}

// translate converts the first validator.FieldError into the sentinel of its
// field, keeping the offending value in the message.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	first := validationErrs[0]
	sentinel, ok := fieldErrors[first.StructField()]
	if !ok {
		// dive errors report the element, e.g. Columns[1]
		sentinel = ErrInvalidColumn
	}

	return fmt.Errorf("%w: %q fails %q", sentinel, fmt.Sprint(first.Value()), first.Tag())
}
