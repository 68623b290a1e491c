// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-group-export/models"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// handleFlags describe a job the local journal does not know about.
type handleFlags struct {
	dataset string
	format  string
}

func (h *handleFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&h.dataset, "dataset", "", "Dataset of a job missing from the journal")
	f.StringVar(&h.format, "format", "", "Format of a job missing from the journal")
}

func (c *cli) resolve(cmd *cobra.Command, jobID string, h handleFlags) models.JobHandle {
	return c.services.Manager.Resolve(cmd.Context(), jobID,
		models.ParseDatasetKind(h.dataset), models.ExportFormat(strings.ToLower(h.format)))
}

func (c *cli) newStatusCmd() *cobra.Command {
	var h handleFlags

	cmd := &cobra.Command{
		Use:   "status <job-id>...",
		Short: "Poll export jobs once",
		Args:  minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &printer{out: cmd.OutOrStdout()}
			for _, jobID := range args {
				status, err := c.services.Manager.CheckStatus(cmd.Context(), c.resolve(cmd, jobID, h))
				if err != nil {
					return err
				}
				p.status(status)
			}
			return nil
		},
	}
	h.register(cmd)
	return cmd
}

func (c *cli) newWaitCmd() *cobra.Command {
	var (
		h        handleFlags
		download bool
		combine  bool
		parallel int
	)

	cmd := &cobra.Command{
		Use:   "wait <job-id>...",
		Short: "Wait for export jobs to finish",
		Long: "wait polls every given job until it finishes, fails or the maximum\n" +
			"wait elapses. Jobs are waited on concurrently.",
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &printer{out: cmd.OutOrStdout()}
			errs := make([]error, len(args))

			var g errgroup.Group
			if parallel > 0 {
				g.SetLimit(parallel)
			}
			for i, jobID := range args {
				handle := c.resolve(cmd, jobID, h)
				g.Go(func() error {
					if _, err := c.waitOne(cmd.Context(), p, handle); err != nil {
						errs[i] = err
						return nil
					}
					if download || combine {
						errs[i] = c.downloadOne(cmd.Context(), p, handle, combine)
					}
					return nil
				})
			}
			_ = g.Wait()

			return errors.Join(errs...)
		},
	}
	h.register(cmd)
	cmd.Flags().BoolVar(&download, "download", false, "Download the results of finished jobs")
	cmd.Flags().BoolVar(&combine, "combine", false, "Download and merge the parts of each job into one file")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "Maximum jobs waited on at once; 0 means all")
	return cmd
}

func (c *cli) newDownloadCmd() *cobra.Command {
	var (
		h       handleFlags
		dir     string
		combine bool
	)

	cmd := &cobra.Command{
		Use:   "download <job-id>",
		Short: "Download the results of a finished export job",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir != "" {
				c.cfg.Storage.ExportsDir = dir
			}
			p := &printer{out: cmd.OutOrStdout()}
			return c.downloadOne(cmd.Context(), p, c.resolve(cmd, args[0], h), combine)
		},
	}
	h.register(cmd)
	cmd.Flags().StringVar(&dir, "dir", "", "Destination directory; defaults to the exports directory")
	cmd.Flags().BoolVar(&combine, "combine", false, "Merge the downloaded parts into one file")
	return cmd
}
