// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the client configuration is complete before any
// export command executes. Credentials are checked first so that a missing
// token is reported as such rather than as a secondary failure.
func (cfg *ClientConfig) validate() error {
	if cfg.App.Token == "" || cfg.App.GroupID == "" {
		return ErrMissingCredentials
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.APIVersion == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.ExportsDir == "" || cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.PollInterval <= 0 || cfg.Workers.MaxWait < cfg.Workers.PollInterval {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
