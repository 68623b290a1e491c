// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-group-export/internal/logger"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// writeParts stores bodies as downloaded artifacts of handle in dir.
func writeParts(t *testing.T, dir string, handle models.JobHandle, bodies ...string) models.DownloadResult {
	t.Helper()
	var result models.DownloadResult
	for i, body := range bodies {
		path := filepath.Join(dir, ArtifactName(handle, i+1))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		result.Artifacts = append(result.Artifacts, models.DownloadedArtifact{
			SourceLocation: fmt.Sprintf("https://s3/%d", i+1),
			LocalPath:      path,
			ByteSize:       int64(len(body)),
		})
	}
	return result
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestCombinedName(t *testing.T) {
	h := models.NewJobHandle("exp/1", "grp", models.DatasetDependencies, models.FormatJSON, testHandle.CreatedAt())
	assert.Equal(t, "dependencies_exp_1_combined.json", CombinedName(h))
	assert.Equal(t, "issues_exp-1_combined.csv", CombinedName(testHandle))
}

func TestCombine_CSVWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	result := writeParts(t, dir, testHandle,
		"ISSUE_ID,TITLE\n1,first\n2,\"with, comma\"\n",
		"ISSUE_ID,TITLE\n",
		"ISSUE_ID,TITLE\n3,third\n",
	)

	combined, err := NewArtifactCombiner(logger.Nop()).Combine(context.Background(), testHandle, result, dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "issues_exp-1_combined.csv"), combined.LocalPath)
	assert.Equal(t, 3, combined.Parts)
	assert.Equal(t, 3, combined.Rows)
	assert.Equal(t, "ISSUE_ID,TITLE\n1,first\n2,\"with, comma\"\n3,third\n", readFile(t, combined.LocalPath))

	info, err := os.Stat(combined.LocalPath)
	require.NoError(t, err)
	assert.Equal(t, info.Size(), combined.ByteSize)
}

func TestCombine_CSVHeaderMismatch(t *testing.T) {
	dir := t.TempDir()
	result := writeParts(t, dir, testHandle,
		"ISSUE_ID,TITLE\n1,first\n",
		"ISSUE_ID,SEVERITY\n2,high\n",
	)

	_, err := NewArtifactCombiner(logger.Nop()).Combine(context.Background(), testHandle, result, dir)

	require.ErrorIs(t, err, ErrPartMismatch)
	assert.Contains(t, err.Error(), "issues_exp-1_2.csv")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "neither a combined nor a temporary file is left")
}

func TestCombine_JSON(t *testing.T) {
	handle := models.NewJobHandle("exp-2", "grp-1", models.DatasetDependencies, models.FormatJSON, testHandle.CreatedAt())
	dir := t.TempDir()
	result := writeParts(t, dir, handle,
		`[{"ID":"a"},{"ID":"b"}]`,
		`[]`,
		` {"ID":"c"} `,
	)

	combined, err := NewArtifactCombiner(logger.Nop()).Combine(context.Background(), handle, result, dir)

	require.NoError(t, err)
	assert.Equal(t, 3, combined.Rows)

	var got []map[string]string
	require.NoError(t, json.Unmarshal([]byte(readFile(t, combined.LocalPath)), &got))
	assert.Equal(t, []map[string]string{{"ID": "a"}, {"ID": "b"}, {"ID": "c"}}, got)
}

func TestCombine_InvalidJSON(t *testing.T) {
	handle := models.NewJobHandle("exp-2", "grp-1", models.DatasetIssues, models.FormatJSON, testHandle.CreatedAt())
	dir := t.TempDir()
	result := writeParts(t, dir, handle, `[{"ID":"a"}]`, `{"ID":`)

	_, err := NewArtifactCombiner(logger.Nop()).Combine(context.Background(), handle, result, dir)

	assert.ErrorIs(t, err, ErrPartMismatch)
}

func TestCombine_NothingToCombine(t *testing.T) {
	result := models.DownloadResult{Failures: []models.DownloadFailure{{Location: "https://s3/1", Reason: "empty result"}}}

	_, err := NewArtifactCombiner(logger.Nop()).Combine(context.Background(), testHandle, result, t.TempDir())

	assert.ErrorIs(t, err, ErrNothingToCombine)
}

func TestCombine_Cancelled(t *testing.T) {
	dir := t.TempDir()
	result := writeParts(t, dir, testHandle, "A\n1\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewArtifactCombiner(logger.Nop()).Combine(ctx, testHandle, result, dir)

	assert.ErrorIs(t, err, context.Canceled)
	_, statErr := os.Stat(filepath.Join(dir, CombinedName(testHandle)))
	assert.True(t, os.IsNotExist(statErr))
}

func TestCombineExport_SkipsFailedPart(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, a, _ := newTestManager(t, ctrl)
	dir := t.TempDir()

	a.EXPECT().GetExportStatus(gomock.Any(), "grp-1", "exp-1").
		Return(resource("complete", "https://s3/1", "https://s3/2", "https://s3/3"), nil)
	gomock.InOrder(
		a.EXPECT().FetchResult(gomock.Any(), "https://s3/1", gomock.Any()).DoAndReturn(writeBody("ID,NAME\n1,one\n")),
		a.EXPECT().FetchResult(gomock.Any(), "https://s3/2", gomock.Any()).Return(int64(0), io.ErrUnexpectedEOF),
		a.EXPECT().FetchResult(gomock.Any(), "https://s3/3", gomock.Any()).DoAndReturn(writeBody("ID,NAME\n3,three\n")),
	)

	res, err := m.DownloadExport(context.Background(), testHandle, dir)
	require.NoError(t, err)
	require.Len(t, res.Failures, 1)

	combined, err := m.CombineExport(context.Background(), testHandle, res, dir)

	require.NoError(t, err)
	assert.Equal(t, 2, combined.Parts)
	assert.Equal(t, 2, combined.Rows)
	assert.Equal(t, "ID,NAME\n1,one\n3,three\n", readFile(t, combined.LocalPath))
}

func TestCombineExport_EnrichesErrorsWithJobID(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestManager(t, ctrl)

	_, err := m.CombineExport(context.Background(), testHandle, models.DownloadResult{}, t.TempDir())

	var jobErr *JobError
	require.ErrorAs(t, err, &jobErr)
	assert.Equal(t, "exp-1", jobErr.JobID)
	assert.ErrorIs(t, err, ErrNothingToCombine)
}
