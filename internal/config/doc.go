// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the export client binaries.
//
// Configuration is assembled from multiple sources. Sources are merged in the
// following priority order (a higher source wins for every non-zero field):
//  1. Command-line flags (or explicit overrides from a CLI framework)
//  2. Environment variables
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the raw merged view and
// [GetClientConfig] / [GetClientConfigWithOverrides] for the validated client
// view consumed by the binaries.
package config
