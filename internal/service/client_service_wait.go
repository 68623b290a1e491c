// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-group-export/models"
)

const (
	DefaultWaitInterval = 30 * time.Second
	DefaultMaxWait      = 30 * time.Minute
)

// WaitPolicy bounds WaitForCompletion: a fixed pause between polls and a
// maximum total wait.
type WaitPolicy struct {
	Interval time.Duration
	MaxWait  time.Duration
}

func (p WaitPolicy) normalized() WaitPolicy {
	if p.Interval <= 0 {
		p.Interval = DefaultWaitInterval
	}
	if p.MaxWait <= 0 {
		p.MaxWait = DefaultMaxWait
	}
	return p
}

// WaitForCompletion implements LifecycleManager. The loop never sleeps past
// the deadline: when the next poll would land after MaxWait it stops with
// [ErrWaitTimeout].
func (m *lifecycleManager) WaitForCompletion(ctx context.Context, handle models.JobHandle, policy WaitPolicy, onPoll func(models.JobStatus)) (models.JobStatus, error) {
	policy = policy.normalized()
	deadline := time.Now().Add(policy.MaxWait)
	log := m.logger.WithJob(handle.GroupID(), handle.JobID())

	var last models.JobStatus
	for polls := 1; ; polls++ {
		status, err := m.CheckStatus(ctx, handle)
		if err != nil {
			return last, err
		}
		last = status
		if onPoll != nil {
			onPoll(status)
		}

		switch status.State {
		case models.JobComplete:
			log.Info().Str("func", "lifecycleManager.WaitForCompletion").Int("polls", polls).Msg("export complete")
			return status, nil
		case models.JobError:
			return status, &JobFailedError{JobID: handle.JobID(), Detail: status.ErrorDetail}
		}

		if time.Now().Add(policy.Interval).After(deadline) {
			return status, withJob(handle.JobID(), fmt.Errorf("%w after %s (last state %s)", ErrWaitTimeout, policy.MaxWait, status.State))
		}

		timer := time.NewTimer(policy.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Info().Str("func", "lifecycleManager.WaitForCompletion").Msg("wait cancelled")
			return status, withJob(handle.JobID(), ctx.Err())
		case <-timer.C:
		}
	}
}
