// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	focusStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// stateStyles colours job states.
var stateStyles = map[string]lipgloss.Style{
	"PENDING":    lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	"PROCESSING": lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	"COMPLETE":   okStyle,
	"ERROR":      errorStyle,
}
