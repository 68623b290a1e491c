// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds the credentials and account scope handed to the core.
type ClientApp struct {
	// Token is the API token.
	Token string
	// GroupID is the group every export runs under.
	GroupID string
	// AuthScheme is the Authorization header scheme.
	AuthScheme string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the resolved REST API root without a trailing slash.
	BaseURL string
	// APIVersion is the "version" query parameter value.
	APIVersion string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains job journal connection settings.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups local storage settings.
type ClientStorage struct {
	// ExportsDir is where artifacts are downloaded to.
	ExportsDir string
	// DB holds journal database settings.
	DB ClientDB
}

// ClientWorkers contains the wait-mode polling policy.
type ClientWorkers struct {
	// PollInterval is the pause between two polls.
	PollInterval time.Duration
	// MaxWait bounds a single wait.
	MaxWait time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	// LogFile is the client log file path; empty means next to the binary.
	LogFile string
}

// GetClientConfig builds and validates the client config from command-line
// arguments, environment, config file and defaults.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

// GetClientConfigWithOverrides builds and validates the client config using
// pre-parsed overrides in place of command-line arguments.
func GetClientConfigWithOverrides(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := LoadStructuredConfig(overrides)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	baseURL, err := resolveBaseURL(cfg.Adapter.BaseURL, cfg.Adapter.Region)
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Token:      strings.TrimSpace(cfg.App.Token),
			GroupID:    strings.TrimSpace(cfg.App.GroupID),
			AuthScheme: cfg.App.AuthScheme,
		},
		Adapter: ClientAdapter{
			BaseURL:        baseURL,
			APIVersion:     cfg.Adapter.APIVersion,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			ExportsDir: cfg.Storage.ExportsDir,
			DB:         ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{
			PollInterval: cfg.Workers.PollInterval,
			MaxWait:      cfg.Workers.MaxWait,
		},
		LogFile: cfg.Log.File,
	}

	return clientCfg, clientCfg.validate()
}

// resolveBaseURL prefers an explicit base URL and falls back to the region
// table.
func resolveBaseURL(baseURL, region string) (string, error) {
	if baseURL = strings.TrimSpace(baseURL); baseURL != "" {
		return strings.TrimRight(baseURL, "/"), nil
	}

	resolved, ok := regionBaseURLs[strings.ToLower(strings.TrimSpace(region))]
	if !ok {
		return "", fmt.Errorf("%w: unknown region %q", ErrInvalidAdapterConfigs, region)
	}
	return resolved, nil
}
