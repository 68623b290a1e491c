// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"maps"
	"strings"
	"time"
)

// Filter keys understood by the export service.
const (
	FilterOrgs       = "orgs"
	FilterIntroduced = "introduced"
	FilterUpdated    = "updated"
)

const (
	timestampLayout = "2006-01-02T15:04:05Z"
	dateLayout      = "2006-01-02"
)

// DefaultIssueColumns is the column set requested for issue exports when the
// caller does not choose columns.
var DefaultIssueColumns = []string{
	"ISSUE_SEVERITY_RANK",
	"ISSUE_SEVERITY",
	"SCORE",
	"PROBLEM_TITLE",
	"CVE",
	"CWE",
	"ORG_PUBLIC_ID",
	"PROJECT_PUBLIC_ID",
	"PROJECT_NAME",
	"PROJECT_URL",
	"EXPLOIT_MATURITY",
	"AUTOFIXABLE",
	"FIRST_INTRODUCED",
	"PRODUCT_NAME",
	"ISSUE_URL",
	"ISSUE_STATUS_INDICATOR",
	"ISSUE_TYPE",
}

// DateWindow is an inclusive UTC time range filter. Either bound may be
// empty. Bounds are "YYYY-MM-DD" or "YYYY-MM-DDTHH:MM:SSZ".
type DateWindow struct {
	From string
	To   string
}

// DaysBack returns the window from midnight UTC `days` days before now up to
// now.
func DaysBack(days int, now time.Time) DateWindow {
	now = now.UTC()
	from := now.AddDate(0, 0, -days).Truncate(24 * time.Hour)
	return DateWindow{From: from.Format(timestampLayout), To: now.Format(timestampLayout)}
}

// WithWindow returns a copy of filters with key set to w.
func WithWindow(filters map[string]any, key string, w DateWindow) map[string]any {
	out := make(map[string]any, len(filters)+1)
	maps.Copy(out, filters)
	out[key] = w
	return out
}

// normalizeWindow converts a date window filter value into the service
// schema. ok is false when both bounds are empty.
func normalizeWindow(key string, value any) (window map[string]any, ok bool, err error) {
	var from, to string

	switch v := value.(type) {
	case DateWindow:
		from, to = v.From, v.To
	case *DateWindow:
		if v != nil {
			from, to = v.From, v.To
		}
	case map[string]string:
		bounds := make(map[string]any, len(v))
		for bound, s := range v {
			bounds[bound] = s
		}
		return normalizeWindow(key, bounds)
	case map[string]any:
		for bound, raw := range v {
			s, isString := raw.(string)
			if !isString && raw != nil {
				return nil, false, fmt.Errorf("%w: filter %s.%s must be a string", ErrInvalidParameter, key, bound)
			}
			switch bound {
			case "from":
				from = s
			case "to":
				to = s
			default:
				return nil, false, fmt.Errorf("%w: filter %s has unknown bound %q", ErrInvalidParameter, key, bound)
			}
		}
	case nil:
	default:
		return nil, false, fmt.Errorf("%w: filter %s has unsupported type %T", ErrInvalidParameter, key, value)
	}

	window = make(map[string]any, 2)
	var fromAt, toAt time.Time
	if strings.TrimSpace(from) != "" {
		if fromAt, err = normalizeTimestamp(from, false); err != nil {
			return nil, false, fmt.Errorf("%w: filter %s.from: %v", ErrInvalidParameter, key, err)
		}
		window["from"] = fromAt.Format(timestampLayout)
	}
	if strings.TrimSpace(to) != "" {
		if toAt, err = normalizeTimestamp(to, true); err != nil {
			return nil, false, fmt.Errorf("%w: filter %s.to: %v", ErrInvalidParameter, key, err)
		}
		window["to"] = toAt.Format(timestampLayout)
	}
	if !fromAt.IsZero() && !toAt.IsZero() && toAt.Before(fromAt) {
		return nil, false, fmt.Errorf("%w: filter %s ends before it starts", ErrInvalidParameter, key)
	}

	return window, len(window) > 0, nil
}

// normalizeTimestamp parses a bound. A bare date is the start of the day for
// lower bounds and the last second of the day for upper bounds.
func normalizeTimestamp(raw string, end bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)

	if t, err := time.Parse(timestampLayout, raw); err == nil {
		return t.UTC(), nil
	}

	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not YYYY-MM-DD or YYYY-MM-DDTHH:MM:SSZ", raw)
	}
	if end {
		t = t.Add(24*time.Hour - time.Second)
	}
	return t.UTC(), nil
}
