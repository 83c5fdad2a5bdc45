package schema

import (
	"strings"
	"time"
)

var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
}

// ParseDate parses a calendar date typed by the user in local time.
// An empty string means no date and yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return &t, nil
		}
	}
	return nil, ErrInvalidDate
}

// FormatDate is the inverse of ParseDate for prefilling inputs
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayouts[0])
}
