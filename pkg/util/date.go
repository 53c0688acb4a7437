package util

import (
	"strconv"
	"time"
)

// ParseMatchDate tries the date layouts that appear in raw match records:
// plain "2006-01-02", RFC3339, and unix seconds. Returns (t, true) if any worked.
func ParseMatchDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if ts, err := strconv.ParseInt(s, 10, 64); err == nil && ts > 0 {
		return time.Unix(ts, 0).UTC(), true
	}
	return time.Time{}, false
}

// ParseMatchDateDefault parses a match date or returns default if empty/invalid.
func ParseMatchDateDefault(s string, def time.Time) time.Time {
	if t, ok := ParseMatchDate(s); ok {
		return t
	}
	return def
}

// MatchIDFromFilename strips the directory and extension from a raw record
// path, e.g. "data/raw/335982.json" -> "335982".
func MatchIDFromFilename(path string) string {
	base := path
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			base = path[i+1:]
			break
		}
	}
	for i := 0; i < len(base); i++ {
		if base[i] == '.' {
			return base[:i]
		}
	}
	return base
}
