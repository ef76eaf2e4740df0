package handlers

import "time"

// parseTimeParam accepts RFC 3339 timestamps ("2026-03-01T10:00:00Z" or
// with offset). Returns nil for an empty value.
func parseTimeParam(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// parseDayParam accepts a calendar date ("2026-03-01"). Returns nil for an
// empty value.
func parseDayParam(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, false
	}
	return &t, true
}
