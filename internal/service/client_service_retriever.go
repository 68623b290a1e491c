// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-group-export/internal/adapter"
	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/models"
)

const (
	artifactDirPerm  = 0o755
	artifactFilePerm = 0o644
)

type artifactRetriever struct {
	adapter adapter.ExportAdapter
	logger  *logger.Logger
}

// NewArtifactRetriever returns an ArtifactRetriever fetching result locations
// through exportAdapter.
func NewArtifactRetriever(exportAdapter adapter.ExportAdapter, log *logger.Logger) ArtifactRetriever {
	return &artifactRetriever{adapter: exportAdapter, logger: log}
}

// Retrieve implements ArtifactRetriever. Artifacts are named
// <dataset>_<jobID>_<n>.<format> with n counting from 1 in location order.
// An existing file with the same name is replaced.
func (r *artifactRetriever) Retrieve(ctx context.Context, handle models.JobHandle, status models.JobStatus, destDir string) (models.DownloadResult, error) {
	var result models.DownloadResult

	if status.State != models.JobComplete {
		return result, fmt.Errorf("%w: state %s", ErrJobNotReady, status.State)
	}
	if err := os.MkdirAll(destDir, artifactDirPerm); err != nil {
		return result, fmt.Errorf("create destination directory: %w", err)
	}

	log := r.logger.WithJob(handle.GroupID(), handle.JobID())

	for i, location := range status.ResultLocations {
		if err := ctx.Err(); err != nil {
			for _, skipped := range status.ResultLocations[i:] {
				result.Failures = append(result.Failures, models.DownloadFailure{Location: skipped, Reason: err.Error()})
			}
			break
		}

		path := filepath.Join(destDir, ArtifactName(handle, i+1))
		artifact, err := r.fetch(ctx, location, path)
		if err != nil {
			var dlErr *DownloadError
			if !errors.As(err, &dlErr) {
				dlErr = &DownloadError{Location: location, Reason: err.Error(), cause: err}
			}
			log.Warn().Str("func", "artifactRetriever.Retrieve").Str("location", location).Str("reason", dlErr.Reason).Msg("result location failed")
			result.Failures = append(result.Failures, models.DownloadFailure{Location: location, Reason: dlErr.Reason})
			continue
		}

		log.Info().Str("func", "artifactRetriever.Retrieve").Str("path", artifact.LocalPath).Int64("bytes", artifact.ByteSize).Msg("artifact stored")
		result.Artifacts = append(result.Artifacts, artifact)
	}

	return result, nil
}

// fetch streams location into a temporary file next to path and renames it
// into place once the body is complete.
func (r *artifactRetriever) fetch(ctx context.Context, location, path string) (models.DownloadedArtifact, error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.part")
	if err != nil {
		return models.DownloadedArtifact{}, &DownloadError{Location: location, Reason: fmt.Sprintf("create file: %v", err), cause: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	n, fetchErr := r.adapter.FetchResult(ctx, location, tmp)
	closeErr := tmp.Close()
	if fetchErr != nil {
		return models.DownloadedArtifact{}, &DownloadError{Location: location, Reason: downloadReason(fetchErr), cause: fetchErr}
	}
	if closeErr != nil {
		return models.DownloadedArtifact{}, &DownloadError{Location: location, Reason: fmt.Sprintf("write file: %v", closeErr), cause: closeErr}
	}

	if err = os.Chmod(tmpName, artifactFilePerm); err != nil {
		return models.DownloadedArtifact{}, &DownloadError{Location: location, Reason: fmt.Sprintf("chmod file: %v", err), cause: err}
	}
	if err = os.Rename(tmpName, path); err != nil {
		return models.DownloadedArtifact{}, &DownloadError{Location: location, Reason: fmt.Sprintf("move file into place: %v", err), cause: err}
	}

	return models.DownloadedArtifact{SourceLocation: location, LocalPath: path, ByteSize: n}, nil
}

// ArtifactName is the file name of the index-th (1-based) artifact of handle.
func ArtifactName(handle models.JobHandle, index int) string {
	return fmt.Sprintf("%s_%s_%d.%s", handle.Dataset(), sanitizeFileComponent(handle.JobID()), index, handle.Format())
}

func sanitizeFileComponent(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, s)
}

// DownloadErrors returns one [*DownloadError] per failure in result.
func DownloadErrors(result models.DownloadResult) []error {
	errs := make([]error, 0, len(result.Failures))
	for _, f := range result.Failures {
		errs = append(errs, &DownloadError{Location: f.Location, Reason: f.Reason})
	}
	return errs
}
