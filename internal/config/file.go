// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk layout of the optional config file. The same
// structure is accepted as JSON and as YAML.
type FileConfig struct {
	App struct {
		Token      string `json:"token" yaml:"token"`
		GroupID    string `json:"group_id" yaml:"group_id"`
		AuthScheme string `json:"auth_scheme" yaml:"auth_scheme"`
	} `json:"app,omitempty" yaml:"app,omitempty"`

	Adapter struct {
		BaseURL        string   `json:"base_url" yaml:"base_url"`
		Region         string   `json:"region" yaml:"region"`
		APIVersion     string   `json:"api_version" yaml:"api_version"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"adapter,omitempty" yaml:"adapter,omitempty"`

	Storage struct {
		ExportsDir string `json:"exports_dir" yaml:"exports_dir"`
		DB         struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db,omitempty" yaml:"db,omitempty"`
	} `json:"storage,omitempty" yaml:"storage,omitempty"`

	Workers struct {
		PollInterval Duration `json:"poll_interval" yaml:"poll_interval"`
		MaxWait      Duration `json:"max_wait" yaml:"max_wait"`
	} `json:"workers,omitempty" yaml:"workers,omitempty"`

	Log struct {
		File string `json:"file" yaml:"file"`
	} `json:"log,omitempty" yaml:"log,omitempty"`
}

// parseConfigFile reads the config file at path. Files ending in .yaml or
// .yml are decoded as YAML, everything else as JSON.
func parseConfigFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fileCfg FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			Token:      fileCfg.App.Token,
			GroupID:    fileCfg.App.GroupID,
			AuthScheme: fileCfg.App.AuthScheme,
		},
		Adapter: Adapter{
			BaseURL:        fileCfg.Adapter.BaseURL,
			Region:         fileCfg.Adapter.Region,
			APIVersion:     fileCfg.Adapter.APIVersion,
			RequestTimeout: time.Duration(fileCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			ExportsDir: fileCfg.Storage.ExportsDir,
			DB:         DB{DSN: fileCfg.Storage.DB.DSN},
		},
		Workers: Workers{
			PollInterval: time.Duration(fileCfg.Workers.PollInterval),
			MaxWait:      time.Duration(fileCfg.Workers.MaxWait),
		},
		Log: Log{File: fileCfg.Log.File},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds, in JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if tmp, err := time.ParseDuration(raw); err == nil {
		*d = Duration(tmp)
		return nil
	}

	var n int64
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("invalid duration %q", raw)
	}
	*d = Duration(time.Duration(n))
	return nil
}
