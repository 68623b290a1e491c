// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"testing"

	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/sandbox"
	"github.com/stretchr/testify/assert"
)

func TestSandboxOptions(t *testing.T) {
	cfg := config.Sandbox{
		PollsToComplete: 4,
		Parts:           3,
		Rows:            2,
		FailPart:        2,
		EmptyPart:       3,
		FinalState:      sandbox.StateFailed,
		ErrorDetail:     "boom",
	}

	assert.Equal(t, sandbox.Options{
		PollsToComplete: 4,
		Parts:           3,
		Rows:            2,
		FailPart:        2,
		EmptyPart:       3,
		FinalState:      sandbox.StateFailed,
		ErrorDetail:     "boom",
	}, sandboxOptions(cfg))

	cfg.NoResults = true
	assert.Zero(t, sandboxOptions(cfg).Parts)
}
