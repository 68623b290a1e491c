// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-group-export/internal/app"
	"github.com/MKhiriev/go-group-export/internal/service"
)

// humanizeError renders err for the error overlay, naming the job when the
// message does not already.
func humanizeError(err error) string {
	msg := app.HumanizeError(err)

	var jobErr *service.JobError
	if errors.As(err, &jobErr) && !strings.Contains(msg, jobErr.JobID) {
		return fmt.Sprintf("job %s: %s", jobErr.JobID, msg)
	}
	return msg
}
