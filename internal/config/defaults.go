// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultRegion         = "us"
	DefaultAPIVersion     = "2024-10-15"
	DefaultAuthScheme     = "token"
	DefaultRequestTimeout = 60 * time.Second
	DefaultExportsDir     = "exports"
	DefaultJournalDSN     = "export-journal.db"
	DefaultPollInterval   = 30 * time.Second
	DefaultMaxWait        = 30 * time.Minute
)

// regionBaseURLs maps region names to the REST API roots.
var regionBaseURLs = map[string]string{
	"us": "https://api.snyk.io/rest",
	"eu": "https://api.eu.snyk.io/rest",
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			AuthScheme: DefaultAuthScheme,
		},
		Adapter: Adapter{
			Region:         DefaultRegion,
			APIVersion:     DefaultAPIVersion,
			RequestTimeout: DefaultRequestTimeout,
		},
		Storage: Storage{
			ExportsDir: DefaultExportsDir,
			DB:         DB{DSN: DefaultJournalDSN},
		},
		Workers: Workers{
			PollInterval: DefaultPollInterval,
			MaxWait:      DefaultMaxWait,
		},
	}
}
