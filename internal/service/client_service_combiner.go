// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/models"
)

type artifactCombiner struct {
	logger *logger.Logger
}

// NewArtifactCombiner returns an ArtifactCombiner writing next to the parts.
func NewArtifactCombiner(log *logger.Logger) ArtifactCombiner {
	return &artifactCombiner{logger: log}
}

// Combine implements ArtifactCombiner. The combined file is written to a
// temporary file and renamed into place, replacing an earlier one.
func (c *artifactCombiner) Combine(ctx context.Context, handle models.JobHandle, result models.DownloadResult, destDir string) (models.CombinedArtifact, error) {
	if len(result.Artifacts) == 0 {
		return models.CombinedArtifact{}, ErrNothingToCombine
	}
	if err := os.MkdirAll(destDir, artifactDirPerm); err != nil {
		return models.CombinedArtifact{}, fmt.Errorf("create destination directory: %w", err)
	}

	paths := make([]string, 0, len(result.Artifacts))
	for _, artifact := range result.Artifacts {
		paths = append(paths, artifact.LocalPath)
	}

	path := filepath.Join(destDir, CombinedName(handle))
	tmp, err := os.CreateTemp(destDir, "."+filepath.Base(path)+".*.part")
	if err != nil {
		return models.CombinedArtifact{}, fmt.Errorf("create combined file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	var rows int
	if handle.Format() == models.FormatJSON {
		rows, err = combineJSON(ctx, tmp, paths)
	} else {
		rows, err = combineCSV(ctx, tmp, paths)
	}
	closeErr := tmp.Close()
	if err != nil {
		return models.CombinedArtifact{}, err
	}
	if closeErr != nil {
		return models.CombinedArtifact{}, fmt.Errorf("write combined file: %w", closeErr)
	}

	if err = os.Chmod(tmpName, artifactFilePerm); err != nil {
		return models.CombinedArtifact{}, fmt.Errorf("chmod combined file: %w", err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return models.CombinedArtifact{}, fmt.Errorf("move combined file into place: %w", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		return models.CombinedArtifact{}, fmt.Errorf("stat combined file: %w", err)
	}

	c.logger.WithJob(handle.GroupID(), handle.JobID()).Info().
		Str("func", "artifactCombiner.Combine").
		Str("path", path).
		Int("parts", len(paths)).
		Int("rows", rows).
		Msg("parts combined")

	return models.CombinedArtifact{LocalPath: path, ByteSize: info.Size(), Parts: len(paths), Rows: rows}, nil
}

// CombinedName is the file name of the combined artifact of handle.
func CombinedName(handle models.JobHandle) string {
	return fmt.Sprintf("%s_%s_combined.%s", handle.Dataset(), sanitizeFileComponent(handle.JobID()), handle.Format())
}

func combineCSV(ctx context.Context, out io.Writer, paths []string) (int, error) {
	w := csv.NewWriter(out)

	var header []string
	rows := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return rows, err
		}
		n, err := appendCSV(w, path, &header)
		rows += n
		if err != nil {
			return rows, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return rows, fmt.Errorf("write combined csv: %w", err)
	}
	return rows, nil
}

// appendCSV copies the records of path to w. The first part with a header
// sets header; later headers must match it.
func appendCSV(w *csv.Writer, path string, header *[]string) (int, error) {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	first, err := r.Read()
	if errors.Is(err, io.EOF) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", name, err)
	}

	switch {
	case *header == nil:
		*header = slices.Clone(first)
		if err = w.Write(first); err != nil {
			return 0, fmt.Errorf("write combined csv: %w", err)
		}
	case !slices.Equal(*header, first):
		return 0, fmt.Errorf("%w: header of %s differs from the first part", ErrPartMismatch, name)
	}

	rows := 0
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("read %s: %w", name, err)
		}
		if err = w.Write(record); err != nil {
			return rows, fmt.Errorf("write combined csv: %w", err)
		}
		rows++
	}
}

func combineJSON(ctx context.Context, out io.Writer, paths []string) (int, error) {
	items := []json.RawMessage{}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		name := filepath.Base(path)
		data, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", name, err)
		}

		var doc json.RawMessage
		if err = json.Unmarshal(data, &doc); err != nil {
			return 0, fmt.Errorf("%w: %s is not valid JSON: %v", ErrPartMismatch, name, err)
		}
		if bytes.HasPrefix(bytes.TrimSpace(doc), []byte("[")) {
			var elements []json.RawMessage
			if err = json.Unmarshal(doc, &elements); err != nil {
				return 0, fmt.Errorf("%w: %s: %v", ErrPartMismatch, name, err)
			}
			items = append(items, elements...)
			continue
		}
		items = append(items, doc)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return 0, fmt.Errorf("write combined json: %w", err)
	}
	return len(items), nil
}
