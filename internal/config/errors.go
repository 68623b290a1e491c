// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrMissingCredentials indicates that the API token or the group ID is
	// not configured. No export command can run without both.
	ErrMissingCredentials = errors.New("missing credentials: api token and group id are required")
	// ErrInvalidAdapterConfigs indicates invalid service client settings
	// (for example, unknown region or zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, empty exports directory or in-memory journal DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates an unusable wait policy
	// (for example, zero poll interval or max wait below the interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
