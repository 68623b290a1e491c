// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-group-export/internal/service"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/spf13/cobra"
)

type startFlags struct {
	dataset string
	format  string
	columns []string
	orgs    []string

	introducedDays int
	introducedFrom string
	introducedTo   string
	updatedDays    int
	updatedFrom    string
	updatedTo      string

	wait     bool
	download bool
	combine  bool
}

func (c *cli) newStartCmd() *cobra.Command {
	var flags startFlags

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Submit a new export job and print its id",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.runStart(cmd, flags)
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.dataset, "dataset", string(models.DatasetIssues), "Dataset to export (issues, dependencies)")
	f.StringVar(&flags.format, "format", string(models.FormatCSV), "Artifact format (csv, json)")
	f.StringSliceVar(&flags.columns, "columns", nil, "Columns to export; default set when empty")
	f.StringSliceVar(&flags.orgs, "orgs", nil, "Restrict to these organization ids")
	f.IntVar(&flags.introducedDays, "introduced-days", 0, "Only issues introduced in the last N days")
	f.StringVar(&flags.introducedFrom, "introduced-from", "", "Introduced on or after (YYYY-MM-DD)")
	f.StringVar(&flags.introducedTo, "introduced-to", "", "Introduced on or before (YYYY-MM-DD)")
	f.IntVar(&flags.updatedDays, "updated-days", 0, "Only records updated in the last N days")
	f.StringVar(&flags.updatedFrom, "updated-from", "", "Updated on or after (YYYY-MM-DD)")
	f.StringVar(&flags.updatedTo, "updated-to", "", "Updated on or before (YYYY-MM-DD)")
	f.BoolVar(&flags.wait, "wait", false, "Wait until the job finishes")
	f.BoolVar(&flags.download, "download", false, "Wait and download the results")
	f.BoolVar(&flags.combine, "combine", false, "Wait, download and merge the parts into one file")

	cmd.MarkFlagsMutuallyExclusive("introduced-days", "introduced-from")
	cmd.MarkFlagsMutuallyExclusive("updated-days", "updated-from")
	return cmd
}

func (c *cli) runStart(cmd *cobra.Command, flags startFlags) error {
	filters, err := flags.filters(time.Now())
	if err != nil {
		return err
	}

	opts := []service.BuildOption{service.WithFormat(models.ExportFormat(strings.ToLower(flags.format)))}
	if len(flags.columns) > 0 {
		opts = append(opts, service.WithColumns(flags.columns...))
	}

	ctx := cmd.Context()
	handle, err := c.services.Manager.StartExport(ctx, models.ParseDatasetKind(flags.dataset), filters, opts...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, handle.JobID())

	download := flags.download || flags.combine
	if !flags.wait && !download {
		return nil
	}

	p := &printer{out: out}
	if _, err = c.waitOne(ctx, p, handle); err != nil {
		return err
	}
	if !download {
		return nil
	}
	return c.downloadOne(ctx, p, handle, flags.combine)
}

// filters assembles the service filters from the flags.
func (f startFlags) filters(now time.Time) (map[string]any, error) {
	filters := make(map[string]any)
	if len(f.orgs) > 0 {
		filters[service.FilterOrgs] = f.orgs
	}

	windows := []struct {
		key      string
		days     int
		from, to string
	}{
		{service.FilterIntroduced, f.introducedDays, f.introducedFrom, f.introducedTo},
		{service.FilterUpdated, f.updatedDays, f.updatedFrom, f.updatedTo},
	}
	for _, w := range windows {
		switch {
		case w.days < 0:
			return nil, fmt.Errorf("%w: %s days must be positive", service.ErrInvalidParameter, w.key)
		case w.days > 0:
			window := service.DaysBack(w.days, now)
			if w.to != "" {
				window.To = w.to
			}
			filters = service.WithWindow(filters, w.key, window)
		case w.from != "" || w.to != "":
			filters = service.WithWindow(filters, w.key, service.DateWindow{From: w.from, To: w.to})
		}
	}
	return filters, nil
}

func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return &usageError{err: err}
	}
	return nil
}

func minArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.MinimumNArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}

func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{err: err}
		}
		return nil
	}
}
