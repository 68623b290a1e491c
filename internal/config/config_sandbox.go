// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"dario.cat/mergo"
)

const (
	DefaultSandboxAddress = ":8080"
	DefaultSandboxToken   = "sandbox-token"
	DefaultSandboxPolls   = 3
	DefaultSandboxParts   = 1
	DefaultSandboxRows    = 5
	DefaultSandboxState   = "finished"
)

// ErrInvalidSandboxConfigs indicates an unusable sandbox server setup.
var ErrInvalidSandboxConfigs = errors.New("invalid sandbox configuration")

// Sandbox holds settings of the local stand-in export service.
type Sandbox struct {
	// Address is the listen address.
	// Env: SANDBOX_ADDRESS
	Address string `env:"ADDRESS"`

	// PublicURL is the root result URLs are built on. Empty derives it from
	// the request host.
	// Env: SANDBOX_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// Token is the only API token the sandbox accepts.
	// Env: SANDBOX_TOKEN
	Token string `env:"TOKEN"`

	// PollsToComplete is the status read on which a job reaches its final state.
	// Env: SANDBOX_POLLS_TO_COMPLETE
	PollsToComplete int `env:"POLLS_TO_COMPLETE"`

	// Parts is the number of result URLs of a finished job.
	// Env: SANDBOX_PARTS
	Parts int `env:"PARTS"`

	// NoResults makes finished jobs report no result URLs at all.
	// Env: SANDBOX_NO_RESULTS
	NoResults bool `env:"NO_RESULTS"`

	// Rows is the number of rows per part.
	// Env: SANDBOX_ROWS
	Rows int `env:"ROWS"`

	// FailPart answers 404 for that part (1-based).
	// Env: SANDBOX_FAIL_PART
	FailPart int `env:"FAIL_PART"`

	// EmptyPart answers that part with an empty body (1-based).
	// Env: SANDBOX_EMPTY_PART
	EmptyPart int `env:"EMPTY_PART"`

	// FinalState is "finished" or "failed".
	// Env: SANDBOX_FINAL_STATE
	FinalState string `env:"FINAL_STATE"`

	// ErrorDetail is reported on failed jobs.
	// Env: SANDBOX_ERROR_DETAIL
	ErrorDetail string `env:"ERROR_DETAIL"`
}

// SandboxConfig is the configuration of the sandbox server binary.
type SandboxConfig struct {
	Sandbox Sandbox `envPrefix:"SANDBOX_"`
}

// GetSandboxConfig merges command-line flags, environment and defaults, in
// that order of precedence, and validates the result.
func GetSandboxConfig(args []string) (*SandboxConfig, error) {
	flags, err := parseSandboxFlags(args)
	if err != nil {
		return nil, err
	}

	envCfg := &SandboxConfig{}
	if err = parseEnv(envCfg); err != nil {
		return nil, err
	}

	cfg := new(SandboxConfig)
	for _, src := range []*SandboxConfig{flags, envCfg, defaultSandboxConfig()} {
		if err = mergo.Merge(cfg, src); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	cfg.Sandbox.FinalState = strings.ToLower(strings.TrimSpace(cfg.Sandbox.FinalState))
	return cfg, cfg.validate()
}

func (cfg *SandboxConfig) validate() error {
	s := cfg.Sandbox
	if s.Address == "" || s.Token == "" {
		return fmt.Errorf("%w: address and token are required", ErrInvalidSandboxConfigs)
	}

	if s.FinalState != "finished" && s.FinalState != "failed" {
		return fmt.Errorf("%w: unknown final state %q", ErrInvalidSandboxConfigs, s.FinalState)
	}

	if s.PollsToComplete < 1 || s.Parts < 0 || s.Rows < 1 {
		return fmt.Errorf("%w: polls, parts and rows must be positive", ErrInvalidSandboxConfigs)
	}

	return nil
}

func parseSandboxFlags(args []string) (*SandboxConfig, error) {
	var s Sandbox

	fs := flag.NewFlagSet("sandbox", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&s.Address, "a", "", "Listen address")
	fs.StringVar(&s.PublicURL, "public-url", "", "Public root of result URLs")
	fs.StringVar(&s.Token, "token", "", "Accepted API token")
	fs.IntVar(&s.PollsToComplete, "polls", 0, "Status reads until a job is final")
	fs.IntVar(&s.Parts, "parts", 0, "Result parts per finished job")
	fs.BoolVar(&s.NoResults, "no-results", false, "Finish jobs without result URLs")
	fs.IntVar(&s.Rows, "rows", 0, "Rows per part")
	fs.IntVar(&s.FailPart, "fail-part", 0, "Part answered with 404")
	fs.IntVar(&s.EmptyPart, "empty-part", 0, "Part answered with an empty body")
	fs.StringVar(&s.FinalState, "final-state", "", "Final job state (finished or failed)")
	fs.StringVar(&s.ErrorDetail, "error-detail", "", "Error reported on failed jobs")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &SandboxConfig{Sandbox: s}, nil
}

func defaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		Sandbox: Sandbox{
			Address:         DefaultSandboxAddress,
			Token:           DefaultSandboxToken,
			PollsToComplete: DefaultSandboxPolls,
			Parts:           DefaultSandboxParts,
			Rows:            DefaultSandboxRows,
			FinalState:      DefaultSandboxState,
		},
	}
}
