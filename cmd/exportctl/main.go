// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// exportctl is the scriptable front end of the group export client.
//
// Usage:
//
//	exportctl start    --dataset=issues [--format=csv] [--orgs=a,b] [--introduced-days=N] [--wait] [--download]
//	exportctl status   <job-id>
//	exportctl wait     <job-id>... [--download]
//	exportctl download <job-id> [--dir=exports]
//	exportctl history  [--limit=20]
//
// Credentials and service settings come from the global flags, the SNYK_*,
// ADAPTER_*, STORAGE_* and WORKERS_* environment variables or a config file.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-group-export/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr, info)

	stop()
	os.Exit(code)
}
