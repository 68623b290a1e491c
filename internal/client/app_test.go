// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/service"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	_, err := NewApp(nil, models.AppBuildInfo{}, logger.Nop())
	assert.ErrorIs(t, err, errNoConfig)

	app, err := NewApp(&config.ClientConfig{}, models.AppBuildInfo{}, nil)
	require.NoError(t, err)
	assert.NotNil(t, app.logger)
}

func TestApp_TUIOptions(t *testing.T) {
	cfg := &config.ClientConfig{
		App:     config.ClientApp{GroupID: "grp"},
		Storage: config.ClientStorage{ExportsDir: "/data/exports"},
		Workers: config.ClientWorkers{PollInterval: 15 * time.Second, MaxWait: time.Hour},
	}
	info := models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc")

	app, err := NewApp(cfg, info, logger.Nop())
	require.NoError(t, err)

	opts := app.tuiOptions()
	assert.Equal(t, "grp", opts.GroupID)
	assert.Equal(t, "/data/exports", opts.ExportsDir)
	assert.Equal(t, service.WaitPolicy{Interval: 15 * time.Second, MaxWait: time.Hour}, opts.Wait)
	assert.Equal(t, info, opts.BuildInfo)
}
