// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-group-export/internal/service"
	"github.com/MKhiriev/go-group-export/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errInvalidDays = errors.New("days back must be a positive whole number")

// start form fields in focus order
const (
	fieldDataset = iota
	fieldFormat
	fieldColumns
	fieldOrgs
	fieldIntroduced
	fieldUpdated
	fieldCount
)

var formats = []models.ExportFormat{models.FormatCSV, models.FormatJSON}

type startModel struct {
	ctx     context.Context
	manager service.LifecycleManager
	now     func() time.Time

	datasetIdx int
	formatIdx  int
	inputs     map[int]*textinput.Model
	focus      int

	submitting bool
	spinner    spinner.Model
	handle     *models.JobHandle
	status     string
	overlay    *errorOverlayModel
}

func newStartModel(ctx context.Context, manager service.LifecycleManager) *startModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &startModel{
		ctx:     ctx,
		manager: manager,
		now:     time.Now,
		spinner: s,
		inputs:  make(map[int]*textinput.Model, 4),
	}

	placeholders := map[int]string{
		fieldColumns:    "default columns",
		fieldOrgs:       "all organizations",
		fieldIntroduced: "no limit",
		fieldUpdated:    "no limit",
	}
	for field, placeholder := range placeholders {
		input := textinput.New()
		input.Placeholder = placeholder
		input.Width = 48
		m.inputs[field] = &input
	}
	return m
}

func (m *startModel) Init() tea.Cmd {
	return nil
}

func (m *startModel) reset() {
	m.handle = nil
	m.submitting = false
	m.status = ""
	m.overlay = nil
	m.setFocus(fieldDataset)
}

func (m *startModel) setFocus(field int) {
	m.focus = (field + fieldCount) % fieldCount
	for f, input := range m.inputs {
		if f == m.focus {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (m *startModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openStartMsg:
		m.reset()
		return m, nil
	case startDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.overlay = &errorOverlayModel{message: humanizeError(msg.err)}
			return m, nil
		}
		handle := msg.handle
		m.handle = &handle
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
		if !m.submitting {
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
	if m.submitting {
		return m, nil
	}
	if m.handle != nil {
		return m.updateStarted(keyMsg)
	}
	return m.updateForm(keyMsg)
}

// updateStarted handles keys once a job was submitted.
func (m *startModel) updateStarted(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	jobID := m.handle.JobID()

	switch {
	case key.Matches(keyMsg, keys.copy):
		return m, copyToClipboard(jobID)
	case key.Matches(keyMsg, keys.wait):
		return m, navigate(pageJob, openJobMsg{action: actionWait, jobID: jobID})
	case key.Matches(keyMsg, keys.download):
		return m, navigate(pageJob, openJobMsg{action: actionDownload, jobID: jobID})
	case key.Matches(keyMsg, keys.enter, keys.esc):
		m.reset()
		return m, navigate(pageMenu, nil)
	}
	return m, nil
}

func (m *startModel) updateForm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageMenu, nil)
	case key.Matches(keyMsg, keys.tab), keyMsg.Type == tea.KeyDown:
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab), keyMsg.Type == tea.KeyUp:
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		return m.submit()
	}

	switch m.focus {
	case fieldDataset:
		if key.Matches(keyMsg, keys.left, keys.right) {
			m.datasetIdx = (m.datasetIdx + 1) % len(models.DatasetKinds)
		}
		return m, nil
	case fieldFormat:
		if key.Matches(keyMsg, keys.left, keys.right) {
			m.formatIdx = (m.formatIdx + 1) % len(formats)
		}
		return m, nil
	}

	var cmd tea.Cmd
	*m.inputs[m.focus], cmd = m.inputs[m.focus].Update(keyMsg)
	return m, cmd
}

func (m *startModel) submit() (tea.Model, tea.Cmd) {
	dataset := models.DatasetKinds[m.datasetIdx]

	filters, err := m.filters()
	if err != nil {
		m.overlay = &errorOverlayModel{message: err.Error()}
		return m, nil
	}

	opts := []service.BuildOption{service.WithFormat(formats[m.formatIdx])}
	if columns := splitList(m.inputs[fieldColumns].Value()); len(columns) > 0 {
		opts = append(opts, service.WithColumns(columns...))
	}

	m.submitting = true
	ctx, manager := m.ctx, m.manager
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		handle, err := manager.StartExport(ctx, dataset, filters, opts...)
		return startDoneMsg{handle: handle, err: err}
	})
}

// filters assembles the service filters from the form.
func (m *startModel) filters() (map[string]any, error) {
	filters := make(map[string]any)

	if orgs := splitList(m.inputs[fieldOrgs].Value()); len(orgs) > 0 {
		filters[service.FilterOrgs] = orgs
	}

	windows := []struct {
		field int
		key   string
	}{
		{fieldIntroduced, service.FilterIntroduced},
		{fieldUpdated, service.FilterUpdated},
	}
	for _, w := range windows {
		raw := strings.TrimSpace(m.inputs[w.field].Value())
		if raw == "" {
			continue
		}
		days, err := strconv.Atoi(raw)
		if err != nil || days <= 0 {
			return nil, fmt.Errorf("%s: %w", w.key, errInvalidDays)
		}
		filters = service.WithWindow(filters, w.key, service.DaysBack(days, m.now()))
	}

	return filters, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (m *startModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	if m.handle != nil {
		lines := []string{
			okStyle.Render("Export started"),
			"",
			"Job:     " + m.handle.JobID(),
			"Group:   " + m.handle.GroupID(),
			"Dataset: " + string(m.handle.Dataset()),
			"Format:  " + string(m.handle.Format()),
		}
		if m.status != "" {
			lines = append(lines, "", m.status)
		}
		return renderPage("START EXPORT", strings.Join(lines, "\n"), "c: copy job id │ w: wait │ d: download │ enter: menu")
	}

	var b strings.Builder
	b.WriteString(m.label(fieldDataset, "Dataset") + "< " + string(models.DatasetKinds[m.datasetIdx]) + " >\n")
	b.WriteString(m.label(fieldFormat, "Format") + "< " + string(formats[m.formatIdx]) + " >\n")
	b.WriteString(m.label(fieldColumns, "Columns") + m.inputs[fieldColumns].View() + "\n")
	b.WriteString(m.label(fieldOrgs, "Orgs") + m.inputs[fieldOrgs].View() + "\n")
	b.WriteString(m.label(fieldIntroduced, "Introduced (days)") + m.inputs[fieldIntroduced].View() + "\n")
	b.WriteString(m.label(fieldUpdated, "Updated (days)") + m.inputs[fieldUpdated].View())

	if m.submitting {
		b.WriteString("\n\n" + m.spinner.View() + " submitting...")
	}

	return renderPage("START EXPORT", b.String(), "tab/↑/↓: field │ ←/→: change │ enter: start │ esc: back")
}

func (m *startModel) label(field int, title string) string {
	text := fmt.Sprintf("%-18s ", title+":")
	if field == m.focus {
		return focusStyle.Render(text)
	}
	return text
}
