// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-group-export/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "cancelled", err: fmt.Errorf("wait: %w", context.Canceled), want: MsgCancelled},
		{name: "invalid parameter keeps detail", err: fmt.Errorf("%w: unsupported dataset", service.ErrInvalidParameter), want: "invalid parameter: unsupported dataset"},
		{name: "authentication", err: fmt.Errorf("%w: http 401", service.ErrAuthentication), want: MsgAuthentication},
		{name: "job failed", err: &service.JobFailedError{JobID: "j", Detail: "quota exceeded"}, want: MsgJobFailed + ": quota exceeded"},
		{name: "job failed wrapped", err: &service.JobError{JobID: "j", Err: &service.JobFailedError{JobID: "j", Detail: "x"}}, want: MsgJobFailed + ": x"},
		{name: "not ready", err: &service.JobError{JobID: "j", Err: service.ErrJobNotReady}, want: MsgJobNotReady},
		{name: "wait timeout", err: fmt.Errorf("%w after 3 polls", service.ErrWaitTimeout), want: MsgWaitTimeout},
		{name: "transport", err: &service.RemoteServiceError{Message: "dial tcp: connection refused"}, want: MsgServiceUnavailable + " (dial tcp: connection refused)"},
		{name: "not found", err: &service.RemoteServiceError{StatusCode: 404, Message: "not found"}, want: MsgJobNotFound},
		{name: "rate limited", err: &service.RemoteServiceError{StatusCode: 429}, want: MsgRateLimited},
		{name: "server error", err: &service.RemoteServiceError{StatusCode: 502, Message: "bad gateway"}, want: "export service error (http 502): bad gateway"},
		{name: "unknown", err: errors.New("disk full"), want: "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HumanizeError(tt.err))
		})
	}
}
