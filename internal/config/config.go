// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging values from flags, environment variables, an optional config
// file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the credentials and scope every export command needs.
	App App `envPrefix:"SNYK_"`

	// Adapter holds settings of the remote export service client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds local filesystem and journal settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the wait-mode polling policy.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// ConfigFilePath is the optional path to a JSON or YAML config file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// App holds the credentials and account scope.
type App struct {
	// Token is the API token sent with every request.
	// Env: SNYK_API_TOKEN
	Token string `env:"API_TOKEN"`

	// GroupID is the group every export is created under.
	// Env: SNYK_GROUP_ID
	GroupID string `env:"GROUP_ID"`

	// AuthScheme is the Authorization header scheme ("token" or "Bearer").
	// Env: SNYK_AUTH_SCHEME
	AuthScheme string `env:"AUTH_SCHEME"`
}

// Adapter holds settings of the remote export service client.
type Adapter struct {
	// BaseURL is the REST API root. When empty it is derived from Region.
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Region selects a well-known API root ("us" or "eu").
	// Env: ADAPTER_REGION
	Region string `env:"REGION"`

	// APIVersion is sent as the "version" query parameter.
	// Env: ADAPTER_API_VERSION
	APIVersion string `env:"API_VERSION"`

	// RequestTimeout bounds a single outbound request (e.g. "30s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// ExportsDir is the directory downloaded artifacts are written to.
	// Env: STORAGE_EXPORTS_DIR
	ExportsDir string `env:"EXPORTS_DIR"`

	// DB holds the job journal database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite job journal.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds the polling policy of the wait-until-complete mode.
type Workers struct {
	// PollInterval is the fixed pause between two status polls.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// MaxWait bounds the total time spent waiting for one job.
	// Env: WORKERS_MAX_WAIT
	MaxWait time.Duration `env:"MAX_WAIT"`
}

// Log holds log output settings.
type Log struct {
	// File is the log file used by the interactive client.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from command-line
// arguments, environment variables, the optional config file and defaults.
//
// args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}

// LoadStructuredConfig is like [GetStructuredConfig] but takes already parsed
// overrides (e.g. from cobra flags) instead of raw arguments.
func LoadStructuredConfig(overrides *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withOverrides(overrides).
		withEnv().
		withFile().
		withDefaults().
		build()
}
