// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-group-export/internal/service"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errJobIDRequired = errors.New("job id is required")

// pollBuffer bounds statuses queued between two screen updates; extra
// statuses are dropped, the final one always arrives with waitDoneMsg.
const pollBuffer = 16

// minCombineParts is the artifact count from which a download is also merged
// into one file.
const minCombineParts = 2

type jobModel struct {
	ctx        context.Context
	manager    service.LifecycleManager
	exportsDir string
	wait       service.WaitPolicy

	action  jobAction
	input   textinput.Model
	running bool
	runID   int
	cancel  context.CancelFunc
	spinner spinner.Model
	polls   <-chan models.JobStatus

	lines   []string
	status  string
	overlay *errorOverlayModel
}

func newJobModel(ctx context.Context, manager service.LifecycleManager, opts Options) *jobModel {
	input := textinput.New()
	input.Placeholder = "export job id"
	input.Width = 48
	input.Focus()

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return &jobModel{
		ctx:        ctx,
		manager:    manager,
		exportsDir: opts.ExportsDir,
		wait:       opts.Wait,
		input:      input,
		spinner:    s,
	}
}

func (m *jobModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *jobModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openJobMsg:
		m.stop()
		m.action = msg.action
		m.lines = nil
		m.overlay = nil
		m.input.SetValue(msg.jobID)
		if msg.jobID != "" {
			return m.run()
		}
		return m, textinput.Blink
	case statusDoneMsg:
		if !m.current(msg.run) {
			return m, nil
		}
		m.finish()
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.lines = statusLines(msg.status)
		return m, nil
	case pollMsg:
		if !m.current(msg.run) {
			return m, nil
		}
		m.lines = append(m.lines, fmt.Sprintf("poll: %s (service: %s)", renderState(msg.status.State), msg.status.RemoteState))
		return m, m.listenPolls()
	case waitDoneMsg:
		if !m.current(msg.run) {
			return m, nil
		}
		m.finish()
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.lines = append(m.lines, "")
		m.lines = append(m.lines, statusLines(msg.status)...)
		return m, nil
	case downloadDoneMsg:
		if !m.current(msg.run) {
			return m, nil
		}
		m.finish()
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.lines = append(downloadLines(msg.result), combineLines(msg.combined, msg.combineErr)...)
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "job id copied"
		}
		return m, clearStatusAfter(statusTTL)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case spinner.TickMsg:
		if !m.running {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.overlay != nil {
		if key.Matches(keyMsg, keys.enter, keys.esc) {
			m.overlay = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.stop()
		return m, navigate(pageMenu, nil)
	case m.running:
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		return m.run()
	case key.Matches(keyMsg, keys.tab):
		m.action = m.action.next()
		m.lines = nil
		return m, nil
	case key.Matches(keyMsg, keys.copyID):
		if jobID := strings.TrimSpace(m.input.Value()); jobID != "" {
			return m, copyToClipboard(jobID)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	return m, cmd
}

// run issues the selected action for the job id in the input.
func (m *jobModel) run() (tea.Model, tea.Cmd) {
	jobID := strings.TrimSpace(m.input.Value())
	if jobID == "" {
		return m.fail(errJobIDRequired)
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	m.running = true
	m.runID++
	m.lines = nil

	run := m.runID

	manager := m.manager

	switch m.action {
	case actionWait:
		polls := make(chan models.JobStatus, pollBuffer)
		m.polls = polls
		policy := m.wait
		wait := func() tea.Msg {
			defer close(polls)
			handle := manager.Resolve(ctx, jobID, "", "")
			status, err := manager.WaitForCompletion(ctx, handle, policy, func(s models.JobStatus) {
				select {
				case polls <- s:
				default:
				}
			})
			return waitDoneMsg{run: run, status: status, err: err}
		}
		return m, tea.Batch(m.spinner.Tick, wait, m.listenPolls())
	case actionDownload:
		dir := m.exportsDir
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			handle := manager.Resolve(ctx, jobID, "", "")
			result, err := manager.DownloadExport(ctx, handle, dir)
			msg := downloadDoneMsg{run: run, result: result, err: err}
			if err == nil && len(result.Artifacts) >= minCombineParts {
				msg.combined, msg.combineErr = manager.CombineExport(ctx, handle, result, dir)
			}
			return msg
		})
	default:
		return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
			handle := manager.Resolve(ctx, jobID, "", "")
			status, err := manager.CheckStatus(ctx, handle)
			return statusDoneMsg{run: run, status: status, err: err}
		})
	}
}

// listenPolls delivers the next queued poll, or nothing once the wait ended.
func (m *jobModel) listenPolls() tea.Cmd {
	polls, run := m.polls, m.runID
	if polls == nil {
		return nil
	}
	return func() tea.Msg {
		status, ok := <-polls
		if !ok {
			return nil
		}
		return pollMsg{run: run, status: status}
	}
}

func (m *jobModel) fail(err error) (tea.Model, tea.Cmd) {
	m.overlay = &errorOverlayModel{message: humanizeError(err)}
	return m, nil
}

func (m *jobModel) finish() {
	m.running = false
	m.polls = nil
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// stop abandons a running action. Its late messages carry a stale run id and
// are dropped by current.
func (m *jobModel) stop() {
	m.finish()
}

// current reports whether a message of run belongs to the action in flight.
func (m *jobModel) current(run int) bool {
	return m.running && run == m.runID
}

func (m *jobModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	var b strings.Builder
	b.WriteString("Job id: " + m.input.View())

	if m.running {
		b.WriteString("\n\n" + m.spinner.View() + " working...")
	}
	if len(m.lines) > 0 {
		b.WriteString("\n\n" + strings.Join(m.lines, "\n"))
	}
	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}

	hotKeys := "enter: run │ tab: switch action │ ctrl+y: copy job id │ esc: back"
	if m.action == actionDownload && m.exportsDir != "" {
		hotKeys = "into " + m.exportsDir + " │ " + hotKeys
	}
	return renderPage(jobActionTitles[m.action], b.String(), hotKeys)
}
