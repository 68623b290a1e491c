// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the configuration flags from args (without the program
// name).
//
// Flags:
//
//	-token API token
//	-group group ID
//	-auth-scheme Authorization scheme ("token" or "Bearer")
//	-base-url REST API root
//	-region API region ("us", "eu")
//	-api-version API version query parameter
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-exports-dir directory for downloaded artifacts
//	-d job journal database path
//	-poll-interval wait mode poll interval (e.g., "30s")
//	-max-wait wait mode upper bound (e.g., "30m")
//	-log-file client log file
//	-c/-config JSON or YAML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		token, groupID, authScheme   string
		baseURL, region, apiVersion  string
		exportsDir, databaseDSN      string
		configPath, logFile          string
		requestTimeout, pollInterval time.Duration
		maxWait                      time.Duration
	)

	fs := flag.NewFlagSet("group-export", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&token, "token", "", "API token")
	fs.StringVar(&groupID, "group", "", "Group ID")
	fs.StringVar(&authScheme, "auth-scheme", "", "Authorization scheme (token or Bearer)")
	fs.StringVar(&baseURL, "base-url", "", "REST API base URL")
	fs.StringVar(&region, "region", "", "API region (us, eu)")
	fs.StringVar(&apiVersion, "api-version", "", "API version")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&exportsDir, "exports-dir", "", "Directory for downloaded exports")
	fs.StringVar(&databaseDSN, "d", "", "Job journal database path")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Poll interval in wait mode (e.g., 30s)")
	fs.DurationVar(&maxWait, "max-wait", 0, "Maximum wait for a job (e.g., 30m)")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Token:      token,
			GroupID:    groupID,
			AuthScheme: authScheme,
		},
		Adapter: Adapter{
			BaseURL:        baseURL,
			Region:         region,
			APIVersion:     apiVersion,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			ExportsDir: exportsDir,
			DB:         DB{DSN: databaseDSN},
		},
		Workers: Workers{
			PollInterval: pollInterval,
			MaxWait:      maxWait,
		},
		Log:            Log{File: logFile},
		ConfigFilePath: configPath,
	}, nil
}
