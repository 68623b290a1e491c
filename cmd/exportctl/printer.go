// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/MKhiriev/go-group-export/models"
)

// printer serialises output of concurrently running jobs.
type printer struct {
	mu  sync.Mutex
	out io.Writer
}

func (p *printer) printf(format string, args ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

func (p *printer) status(s models.JobStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()

	fmt.Fprintf(p.out, "job %s: %s (service: %s)\n", s.JobID, s.State, s.RemoteState)
	switch s.State {
	case models.JobComplete:
		for _, location := range s.ResultLocations {
			fmt.Fprintf(p.out, "  result %s\n", location)
		}
	case models.JobError:
		fmt.Fprintf(p.out, "  error %s\n", s.ErrorDetail)
	}
}

func (p *printer) download(jobID string, result models.DownloadResult) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, artifact := range result.Artifacts {
		fmt.Fprintf(p.out, "job %s: saved %s (%d bytes)\n", jobID, artifact.LocalPath, artifact.ByteSize)
	}
	for _, failure := range result.Failures {
		fmt.Fprintf(p.out, "job %s: failed %s: %s\n", jobID, failure.Location, failure.Reason)
	}
}

// waitOne blocks until handle is terminal, reporting every poll.
func (c *cli) waitOne(ctx context.Context, p *printer, handle models.JobHandle) (models.JobStatus, error) {
	status, err := c.services.Manager.WaitForCompletion(ctx, handle, c.waitPolicy(), func(s models.JobStatus) {
		if !s.State.Terminal() {
			p.printf("job %s: %s\n", s.JobID, s.State)
		}
	})
	if status.JobID != "" {
		p.status(status)
	}
	return status, err
}

// downloadOne fetches the artifacts of handle into the exports directory and,
// when combine is set, merges the stored parts into one file.
func (c *cli) downloadOne(ctx context.Context, p *printer, handle models.JobHandle, combine bool) error {
	dir := c.cfg.Storage.ExportsDir
	result, err := c.services.Manager.DownloadExport(ctx, handle, dir)
	if err != nil {
		return err
	}
	p.download(handle.JobID(), result)

	var partial error
	if len(result.Failures) > 0 {
		partial = partialDownload(len(result.Failures), len(result.Failures)+len(result.Artifacts))
	}
	if !combine || len(result.Artifacts) == 0 {
		return partial
	}

	combined, err := c.services.Manager.CombineExport(ctx, handle, result, dir)
	if err != nil {
		return errors.Join(err, partial)
	}
	p.printf("job %s: combined %d parts into %s (%d rows)\n", handle.JobID(), combined.Parts, combined.LocalPath, combined.Rows)
	return partial
}
