// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-group-export/internal/service"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var errJournalDisabled = errors.New("job journal is disabled")

func (c *cli) newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently submitted jobs of the group",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.services.Journal == nil {
				return errJournalDisabled
			}
			if limit <= 0 {
				return &usageError{err: fmt.Errorf("limit must be positive, got %d", limit)}
			}

			handles, err := c.services.Journal.Recent(cmd.Context(), c.cfg.App.GroupID, limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(handles) == 0 {
				fmt.Fprintf(out, "no jobs recorded for group %s\n", c.cfg.App.GroupID)
				return nil
			}

			t := table.New().
				Border(lipgloss.HiddenBorder()).
				Headers("JOB ID", "DATASET", "FORMAT", "SUBMITTED")
			for _, handle := range handles {
				submitted := "-"
				if at := handle.CreatedAt(); !at.IsZero() {
					submitted = at.Local().Format("2006-01-02 15:04:05")
				}
				t.Row(handle.JobID(), string(handle.Dataset()), string(handle.Format()), submitted)
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", service.DefaultRecentJobs, "Number of jobs to list")
	return cmd
}
