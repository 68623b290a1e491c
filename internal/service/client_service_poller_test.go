// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-group-export/internal/adapter"
	"github.com/MKhiriev/go-group-export/internal/mock"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testHandle = models.NewJobHandle("exp-1", "grp-1", models.DatasetIssues, models.FormatCSV, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))

func resource(status string, urls ...string) models.ExportResource {
	res := models.ExportResource{ID: "exp-1", Type: "export", Attributes: models.ExportAttributes{Status: status}}
	for _, u := range urls {
		res.Attributes.Results = append(res.Attributes.Results, models.ExportResult{URL: u})
	}
	return res
}

func TestClassifyState(t *testing.T) {
	tests := []struct {
		raw   string
		want  models.JobState
		known bool
	}{
		{"pending", models.JobPending, true},
		{"QUEUED", models.JobPending, true},
		{"started", models.JobProcessing, true},
		{"Processing", models.JobProcessing, true},
		{"in_progress", models.JobProcessing, true},
		{"running", models.JobProcessing, true},
		{"complete", models.JobComplete, true},
		{"Completed", models.JobComplete, true},
		{" FINISHED ", models.JobComplete, true},
		{"error", models.JobError, true},
		{"failed", models.JobError, true},
		{"cancelled", models.JobError, true},
		{"canceled", models.JobError, true},
		{"", models.JobError, false},
		{"succeeded", models.JobError, false},
		{"done", models.JobError, false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, known := classifyState(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.known, known)
		})
	}
}

// ── Poll ────────────────────────────────────────────────────────────────────

func TestPoll_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockExportAdapter(ctrl)
	a.EXPECT().GetExportStatus(gomock.Any(), "grp-1", "exp-1").Return(resource("pending"), nil)

	status, err := NewStatusPoller(a).Poll(context.Background(), testHandle)

	require.NoError(t, err)
	assert.Equal(t, models.JobStatus{JobID: "exp-1", State: models.JobPending, RemoteState: "pending"}, status)
}

func TestPoll_CompleteWithResults(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockExportAdapter(ctrl)
	a.EXPECT().GetExportStatus(gomock.Any(), "grp-1", "exp-1").
		Return(resource("finished", "https://s3/a", " ", "https://s3/b"), nil)

	status, err := NewStatusPoller(a).Poll(context.Background(), testHandle)

	require.NoError(t, err)
	assert.Equal(t, models.JobComplete, status.State)
	assert.Equal(t, []string{"https://s3/a", "https://s3/b"}, status.ResultLocations)
	assert.Empty(t, status.ErrorDetail)
}

func TestPoll_CompleteWithDownloadURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockExportAdapter(ctrl)
	res := resource("complete")
	res.Attributes.DownloadURL = "https://s3/single"
	a.EXPECT().GetExportStatus(gomock.Any(), "grp-1", "exp-1").Return(res, nil)

	status, err := NewStatusPoller(a).Poll(context.Background(), testHandle)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://s3/single"}, status.ResultLocations)
}

func TestPoll_CompleteFallsBackToDownloadEndpoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockExportAdapter(ctrl)
	a.EXPECT().GetExportStatus(gomock.Any(), "grp-1", "exp-1").Return(resource("complete"), nil)
	a.EXPECT().ResultLocation("grp-1", "exp-1").Return("https://api/groups/grp-1/export/exp-1/download")

	status, err := NewStatusPoller(a).Poll(context.Background(), testHandle)

	require.NoError(t, err)
	assert.Equal(t, []string{"https://api/groups/grp-1/export/exp-1/download"}, status.ResultLocations)
}

func TestPoll_ErrorDetail(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockExportAdapter(ctrl)

	withDetail := resource("failed")
	withDetail.Attributes.Error = "dataset too large"
	gomock.InOrder(
		a.EXPECT().GetExportStatus(gomock.Any(), "grp-1", "exp-1").Return(withDetail, nil),
		a.EXPECT().GetExportStatus(gomock.Any(), "grp-1", "exp-1").Return(resource("Cancelled"), nil),
	)

	p := NewStatusPoller(a)

	status, err := p.Poll(context.Background(), testHandle)
	require.NoError(t, err)
	assert.Equal(t, models.JobError, status.State)
	assert.Equal(t, "dataset too large", status.ErrorDetail)
	assert.Nil(t, status.ResultLocations)

	status, err = p.Poll(context.Background(), testHandle)
	require.NoError(t, err)
	assert.Equal(t, "export cancelled", status.ErrorDetail)
}

func TestPoll_UnknownStateIsError(t *testing.T) {
	for _, raw := range []string{"", "succeeded", "COMPLETE-ish", "ready"} {
		t.Run(raw, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			a := mock.NewMockExportAdapter(ctrl)
			a.EXPECT().GetExportStatus(gomock.Any(), "grp-1", "exp-1").Return(resource(raw, "https://s3/a"), nil)

			status, err := NewStatusPoller(a).Poll(context.Background(), testHandle)

			require.NoError(t, err)
			assert.Equal(t, models.JobError, status.State)
			assert.Contains(t, status.ErrorDetail, "unexpected export state")
			assert.Empty(t, status.ResultLocations)
		})
	}
}

func TestPoll_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mock.NewMockExportAdapter(ctrl)
	a.EXPECT().GetExportStatus(gomock.Any(), "grp-1", "exp-1").
		Return(resource("finished", "https://s3/a", "https://s3/b"), nil).
		Times(2)

	p := NewStatusPoller(a)
	first, err := p.Poll(context.Background(), testHandle)
	require.NoError(t, err)
	second, err := p.Poll(context.Background(), testHandle)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("statuses differ (-first +second):\n%s", diff)
	}
}

func TestPoll_AdapterErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, err error)
	}{
		{
			name: "unauthorized",
			err:  adapter.NewHTTPError(http.StatusUnauthorized, "bad token"),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrAuthentication)
			},
		},
		{
			name: "not found",
			err:  adapter.NewHTTPError(http.StatusNotFound, "no such export"),
			check: func(t *testing.T, err error) {
				var remote *RemoteServiceError
				require.True(t, errors.As(err, &remote))
				assert.Equal(t, http.StatusNotFound, remote.StatusCode)
				assert.Equal(t, "no such export", remote.Message)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			a := mock.NewMockExportAdapter(ctrl)
			a.EXPECT().GetExportStatus(gomock.Any(), "grp-1", "exp-1").Return(models.ExportResource{}, tt.err)

			_, err := NewStatusPoller(a).Poll(context.Background(), testHandle)
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}
