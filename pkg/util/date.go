package util

import (
	"strconv"
	"time"
)

// DateLayout is the ISO calendar-date layout used by economic data APIs.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date. Returns (t, true) if it parsed.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// FormatDate formats a time as an ISO calendar date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseUnixSeconds converts a unix-seconds string to a UTC time.
func ParseUnixSeconds(s string) (time.Time, bool) {
	ts, err := strconv.ParseInt(s, 10, 64)
	if err != nil || ts <= 0 {
		return time.Time{}, false
	}
	return time.Unix(ts, 0).UTC(), true
}
