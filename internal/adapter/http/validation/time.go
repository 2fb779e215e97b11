package validation

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var localTimestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ParseTimestamp accepts RFC 3339 or a local date-time without offset.
func ParseTimestamp(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.Local(), true
	}
	for _, layout := range localTimestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseDueDate accepts a timestamp or a bare local date.
func ParseDueDate(value string) (time.Time, bool) {
	if t, ok := ParseTimestamp(value); ok {
		return t, true
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
	return t, err == nil
}

// ParseDate reads a YYYY-MM-DD query value as local midnight. An empty value
// means today.
func ParseDate(value string, now time.Time) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		y, m, d := now.Local().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.Local), true
	}
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	return t, err == nil
}

// ParseOptionalDate is ParseDate without the today default.
func ParseOptionalDate(value string) (*time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		return nil, true
	}
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(value), time.Local)
	if err != nil {
		return nil, false
	}
	return &t, true
}
