// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-group-export/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func renderState(state models.JobState) string {
	if style, ok := stateStyles[string(state)]; ok {
		return style.Render(string(state))
	}
	return string(state)
}

// statusLines renders one polled status.
func statusLines(status models.JobStatus) []string {
	lines := []string{
		"Job:    " + status.JobID,
		fmt.Sprintf("State:  %s (service: %s)", renderState(status.State), status.RemoteState),
	}

	switch status.State {
	case models.JobComplete:
		lines = append(lines, fmt.Sprintf("Results: %d location(s)", len(status.ResultLocations)))
		for _, location := range status.ResultLocations {
			lines = append(lines, "  "+fitText(location, 70))
		}
	case models.JobError:
		lines = append(lines, "Error:  "+status.ErrorDetail)
	}
	return lines
}

// downloadLines renders a batch download outcome.
func downloadLines(result models.DownloadResult) []string {
	lines := []string{okStyle.Render(fmt.Sprintf("Downloaded %d artifact(s)", len(result.Artifacts)))}
	for _, artifact := range result.Artifacts {
		lines = append(lines, fmt.Sprintf("  %s (%d bytes)", artifact.LocalPath, artifact.ByteSize))
	}

	if len(result.Failures) > 0 {
		lines = append(lines, errorStyle.Render(fmt.Sprintf("Failed %d location(s)", len(result.Failures))))
		for _, failure := range result.Failures {
			lines = append(lines, fmt.Sprintf("  %s: %s", fitText(failure.Location, 50), failure.Reason))
		}
	}
	return lines
}

func combineLines(combined models.CombinedArtifact, err error) []string {
	if err != nil {
		return []string{errorStyle.Render("Combine failed: " + humanizeError(err))}
	}
	if combined.LocalPath == "" {
		return nil
	}
	return []string{okStyle.Render(fmt.Sprintf("Combined %d parts (%d rows)", combined.Parts, combined.Rows)),
		fmt.Sprintf("  %s (%d bytes)", combined.LocalPath, combined.ByteSize)}
}
