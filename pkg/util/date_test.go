package util

import (
	"testing"
	"time"
)

func TestParseMatchDatePlain(t *testing.T) {
	got, ok := ParseMatchDate("2008-04-18")
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.Year() != 2008 || got.Month() != time.April || got.Day() != 18 {
		t.Fatalf("unexpected date %v", got)
	}
}

func TestParseMatchDateRFC3339(t *testing.T) {
	s := "2024-10-10T10:10:10Z"
	got, ok := ParseMatchDate(s)
	if !ok {
		t.Fatalf("expected ok")
	}
	if got.UTC().Format(time.RFC3339) != s {
		t.Fatalf("unexpected time %v", got)
	}
}

func TestParseMatchDateDefault(t *testing.T) {
	def := time.Date(2024, 10, 10, 0, 0, 0, 0, time.UTC)
	got := ParseMatchDateDefault("not-a-date", def)
	if !got.Equal(def) {
		t.Fatalf("expected default")
	}
}

func TestMatchIDFromFilename(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"data/raw_json/335982.json", "335982"},
		{"335982.json", "335982"},
		{"335982", "335982"},
		{`raw\1254086.json`, "1254086"},
	}
	for _, c := range cases {
		if got := MatchIDFromFilename(c.in); got != c.want {
			t.Fatalf("MatchIDFromFilename(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
