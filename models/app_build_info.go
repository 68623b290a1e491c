// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// NotAvailable stands in for build metadata the linker did not set.
const NotAvailable = "N/A"

// AppBuildInfo is the version stamp of the client, exportctl and sandbox
// binaries, set with -ldflags "-X main.buildVersion=...". Unset values read
// as [NotAvailable].
type AppBuildInfo struct {
	version string
	date    string
	commit  string
}

// NewAppBuildInfo trims the linker-provided values.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		version: strings.TrimSpace(version),
		date:    strings.TrimSpace(date),
		commit:  strings.TrimSpace(commit),
	}
}

func (a AppBuildInfo) BuildVersion() string {
	return orNotAvailable(a.version)
}

func (a AppBuildInfo) BuildDate() string {
	return orNotAvailable(a.date)
}

func (a AppBuildInfo) BuildCommit() string {
	return orNotAvailable(a.commit)
}

// Stamped reports whether a version was set at link time.
func (a AppBuildInfo) Stamped() bool {
	return a.version != ""
}

func orNotAvailable(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
