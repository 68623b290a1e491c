// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sandbox

import "strings"

// Remote states reported by the sandbox, in the order a healthy job walks
// through them.
const (
	StatePending  = "pending"
	StateStarted  = "started"
	StateFinished = "finished"
	StateFailed   = "failed"
)

const (
	DefaultPollsToComplete = 3
	DefaultParts           = 1
	DefaultRows            = 5
	DefaultErrorDetail     = "export generation failed"
)

// Options shape how simulated export jobs progress and what they produce.
type Options struct {
	// PollsToComplete is the status read on which a job reaches its final
	// state. The first read reports "pending", later ones "started".
	PollsToComplete int

	// Parts is the number of result URLs of a finished job. Zero makes the
	// job finish without result URLs so clients use the download endpoint.
	Parts int

	// Rows is the number of data rows in each part.
	Rows int

	// FailPart (1-based) answers 404 for that part, as an expired link would.
	FailPart int

	// EmptyPart (1-based) answers that part with an empty body.
	EmptyPart int

	// FinalState is "finished" or "failed".
	FinalState string

	// ErrorDetail is reported on failed jobs.
	ErrorDetail string
}

func (o Options) normalized() Options {
	if o.PollsToComplete <= 0 {
		o.PollsToComplete = DefaultPollsToComplete
	}
	if o.Parts < 0 {
		o.Parts = 0
	}
	if o.Rows <= 0 {
		o.Rows = DefaultRows
	}
	o.FinalState = strings.ToLower(strings.TrimSpace(o.FinalState))
	if o.FinalState != StateFailed {
		o.FinalState = StateFinished
	}
	if o.ErrorDetail == "" {
		o.ErrorDetail = DefaultErrorDetail
	}
	return o
}

// defaultColumns are served when a request names no columns.
var defaultColumns = map[string][]string{
	"issues":       {"ISSUE_ID", "ISSUE_SEVERITY", "PROJECT_NAME", "PROBLEM_TITLE"},
	"dependencies": {"ORG_PUBLIC_ID", "PROJECT_NAME", "PACKAGE_NAME", "PACKAGE_VERSION"},
}
