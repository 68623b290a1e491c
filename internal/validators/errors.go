// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidGroupID = errors.New("group id is required")
	ErrInvalidDataset = errors.New("unsupported dataset")
	ErrInvalidFormat  = errors.New("unsupported export format")
	ErrInvalidColumn  = errors.New("invalid column name")
	ErrMissingFilters = errors.New("filters are required")
)
