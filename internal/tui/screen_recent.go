// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-group-export/internal/service"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const journalDisabled = "job journal is disabled"

type recentModel struct {
	ctx     context.Context
	journal service.ClientJournalService
	groupID string
	limit   int

	handles []models.JobHandle
	idx     int
	loading bool
	loaded  bool
	status  string
	overlay *errorOverlayModel
}

func newRecentModel(ctx context.Context, journal service.ClientJournalService, opts Options) *recentModel {
	return &recentModel{
		ctx:     ctx,
		journal: journal,
		groupID: opts.GroupID,
		limit:   opts.RecentLimit,
	}
}

func (m *recentModel) Init() tea.Cmd {
	return m.load()
}

func (m *recentModel) load() tea.Cmd {
	if m.journal == nil {
		return nil
	}
	m.loading = true

	ctx, journal, groupID, limit := m.ctx, m.journal, m.groupID, m.limit
	return func() tea.Msg {
		handles, err := journal.Recent(ctx, groupID, limit)
		return recentLoadedMsg{handles: handles, err: err}
	}
}

func (m *recentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openRecentMsg:
		m.overlay = nil
		return m, m.load()
	case recentLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		m.loaded = true
		m.handles = msg.handles
		if m.idx >= len(m.handles) {
			m.idx = max(len(m.handles)-1, 0)
		}
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
		return m, navigate(pageMenu, nil)
	case key.Matches(keyMsg, keys.reload):
		return m, m.load()
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.handles)-1 {
			m.idx++
		}
		return m, nil
	}

	if len(m.handles) == 0 {
		return m, nil
	}
	jobID := m.handles[m.idx].JobID()

	switch {
	case key.Matches(keyMsg, keys.enter):
		return m, navigate(pageJob, openJobMsg{action: actionStatus, jobID: jobID})
	case key.Matches(keyMsg, keys.wait):
		return m, navigate(pageJob, openJobMsg{action: actionWait, jobID: jobID})
	case key.Matches(keyMsg, keys.download):
		return m, navigate(pageJob, openJobMsg{action: actionDownload, jobID: jobID})
	case key.Matches(keyMsg, keys.copy):
		return m, copyToClipboard(jobID)
	}
	return m, nil
}

func (m *recentModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	const hotKeys = "enter: status │ w: wait │ d: download │ c: copy id │ r: reload │ esc: back"

	switch {
	case m.journal == nil:
		return renderPage("RECENT JOBS", journalDisabled, "esc: back")
	case m.loading && !m.loaded:
		return renderPage("RECENT JOBS", "loading...", "esc: back")
	case len(m.handles) == 0:
		return renderPage("RECENT JOBS", "no jobs recorded for group "+m.groupID, "r: reload │ esc: back")
	}

	var b strings.Builder
	for i, handle := range m.handles {
		cursor := " "
		id := fitText(handle.JobID(), 36)
		if i == m.idx {
			cursor = ">"
			id = focusStyle.Render(id)
		}

		created := "-"
		if at := handle.CreatedAt(); !at.IsZero() {
			created = at.Local().Format("2006-01-02 15:04")
		}
		b.WriteString(fmt.Sprintf("%s %s │ %-12s │ %-4s │ %s\n", cursor, id, handle.Dataset(), handle.Format(), created))
	}
	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return renderPage("RECENT JOBS", strings.TrimRight(b.String(), "\n"), hotKeys)
}
