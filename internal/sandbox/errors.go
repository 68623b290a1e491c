// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sandbox

import "errors"

var (
	ErrInvalidExport  = errors.New("invalid export request")
	ErrExportNotFound = errors.New("export not found")
	ErrExportNotReady = errors.New("export is not finished")
	ErrExportFailed   = errors.New("export failed")
	ErrPartNotFound   = errors.New("result not found or link expired")
)
