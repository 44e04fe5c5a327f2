package config

import (
	"fmt"
	"strings"
	"time"
)

var birthDateLayouts = []string{
	"2006-01-02",
	"20060102",
	"01/02/2006",
	time.RFC3339,
}

// ParseBirthDate accepts the common date spellings and returns the calendar
// date at midnight UTC.
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrNoBirthDate
	}
	for _, layout := range birthDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOnly(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised birth date %q (want YYYY-MM-DD)", s)
}

// DateOnly drops the clock part of t, keeping the date as written.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
