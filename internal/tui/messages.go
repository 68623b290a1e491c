// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"time"

	"github.com/MKhiriev/go-group-export/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu   = "menu"
	pageStart  = "start"
	pageJob    = "job"
	pageRecent = "recent"
)

const statusTTL = 3 * time.Second

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// jobAction is what the job screen does with a job id.
type jobAction int

const (
	actionStatus jobAction = iota
	actionWait
	actionDownload
)

var jobActionTitles = map[jobAction]string{
	actionStatus:   "CHECK STATUS",
	actionWait:     "WAIT FOR COMPLETION",
	actionDownload: "DOWNLOAD RESULTS",
}

func (a jobAction) next() jobAction {
	return (a + 1) % 3
}

// openJobMsg opens the job screen for action. A non-empty JobID runs the
// action right away.
type openJobMsg struct {
	action jobAction
	jobID  string
}

type openRecentMsg struct{}

type openStartMsg struct{}

type startDoneMsg struct {
	handle models.JobHandle
	err    error
}

// statusDoneMsg, pollMsg, waitDoneMsg and downloadDoneMsg carry the id of
// the job screen run that produced them.
type statusDoneMsg struct {
	run    int
	status models.JobStatus
	err    error
}

type pollMsg struct {
	run    int
	status models.JobStatus
}

type waitDoneMsg struct {
	run    int
	status models.JobStatus
	err    error
}

type downloadDoneMsg struct {
	run    int
	result models.DownloadResult
	err    error

	combined   models.CombinedArtifact
	combineErr error
}

type recentLoadedMsg struct {
	handles []models.JobHandle
	err     error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

// clipboardWrite is replaced in tests.
var clipboardWrite = clipboard.WriteAll

func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{text: text, err: clipboardWrite(text)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
