// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-group-export/internal/adapter"
	"github.com/MKhiriev/go-group-export/internal/app"
	"github.com/MKhiriev/go-group-export/internal/config"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/internal/service"
	"github.com/MKhiriev/go-group-export/internal/store"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/spf13/cobra"
)

// cli holds the state shared by all subcommands of one invocation.
type cli struct {
	overrides config.StructuredConfig

	cfg      *config.ClientConfig
	log      *logger.Logger
	storages *store.ClientStorages
	services *service.ClientServices
}

// execute runs one exportctl invocation and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer, info models.AppBuildInfo) int {
	c := &cli{}
	defer c.close()

	root := c.newRootCmd(info)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	fmt.Fprintln(stderr, "exportctl: "+app.HumanizeError(err))
	return exitCode(err)
}

func (c *cli) newRootCmd(info models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "exportctl",
		Short: "Create, watch and collect group exports",
		Long: "exportctl submits export jobs for a group, polls them and downloads\n" +
			"their artifacts. Submitted jobs are journaled locally so later calls\n" +
			"only need the job id.",
		Version:           versionOf(info),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})
	root.SetVersionTemplate(fmt.Sprintf("exportctl %s (date: %s, commit: %s)\n",
		versionOf(info), info.BuildDate(), info.BuildCommit()))

	f := root.PersistentFlags()
	f.StringVar(&c.overrides.App.Token, "token", "", "API token")
	f.StringVar(&c.overrides.App.GroupID, "group", "", "Group ID")
	f.StringVar(&c.overrides.App.AuthScheme, "auth-scheme", "", "Authorization scheme (token or Bearer)")
	f.StringVar(&c.overrides.Adapter.BaseURL, "base-url", "", "REST API base URL")
	f.StringVar(&c.overrides.Adapter.Region, "region", "", "API region (us, eu)")
	f.StringVar(&c.overrides.Adapter.APIVersion, "api-version", "", "API version")
	f.DurationVar(&c.overrides.Adapter.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s)")
	f.StringVar(&c.overrides.Storage.ExportsDir, "exports-dir", "", "Directory for downloaded exports")
	f.StringVar(&c.overrides.Storage.DB.DSN, "journal", "", "Job journal database path")
	f.DurationVar(&c.overrides.Workers.PollInterval, "poll-interval", 0, "Poll interval while waiting (e.g. 30s)")
	f.DurationVar(&c.overrides.Workers.MaxWait, "max-wait", 0, "Maximum wait for a job (e.g. 30m)")
	f.StringVar(&c.overrides.Log.File, "log-file", "", "Log file")
	f.StringVarP(&c.overrides.ConfigFilePath, "config", "c", "", "JSON or YAML config file path")

	root.AddCommand(
		c.newStartCmd(),
		c.newStatusCmd(),
		c.newWaitCmd(),
		c.newDownloadCmd(),
		c.newHistoryCmd(),
	)
	return root
}

// setup resolves the configuration and wires the lifecycle services.
func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "help" {
		return nil
	}

	cfg, err := config.GetClientConfigWithOverrides(&c.overrides)
	if err != nil {
		return &usageError{err: err}
	}
	c.cfg = cfg
	c.log = logger.NewClientLogger("exportctl", cfg.LogFile)

	storages, err := store.NewClientStorages(cmd.Context(), cfg.Storage, c.log)
	if err != nil {
		c.log.Warn().Err(err).Msg("job journal unavailable, continuing without it")
	} else {
		c.storages = storages
	}

	exportAdapter, err := adapter.NewHTTPExportAdapter(cfg.Adapter, cfg.App, c.log)
	if err != nil {
		return &usageError{err: err}
	}

	c.services = service.NewClientServices(cfg.App.GroupID, c.storages, exportAdapter, c.log)
	return nil
}

func (c *cli) close() {
	if err := c.storages.Close(); err != nil && c.log != nil {
		c.log.Err(err).Msg("close client storages")
	}
}

func (c *cli) waitPolicy() service.WaitPolicy {
	return service.WaitPolicy{Interval: c.cfg.Workers.PollInterval, MaxWait: c.cfg.Workers.MaxWait}
}

func versionOf(info models.AppBuildInfo) string {
	if !info.Stamped() {
		return "dev"
	}
	return info.BuildVersion()
}
