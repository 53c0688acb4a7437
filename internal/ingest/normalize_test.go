package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"CricPull/internal/domain/models"
)

func TestMappingIdempotent(t *testing.T) {
	m := DefaultMapping()
	if err := m.Validate(); err != nil {
		t.Fatalf("default mapping invalid: %v", err)
	}
	for raw := range m.Teams {
		once := m.Team(raw)
		if twice := m.Team(once); twice != once {
			t.Fatalf("team %q: %q -> %q not idempotent", raw, once, twice)
		}
	}
	for raw := range m.Venues {
		once := m.Venue(raw)
		if twice := m.Venue(once); twice != once {
			t.Fatalf("venue %q: %q -> %q not idempotent", raw, once, twice)
		}
	}
}

func TestMappingPassThrough(t *testing.T) {
	m := DefaultMapping()
	if got := m.Team("Gujarat Titans"); got != "Gujarat Titans" {
		t.Fatalf("unmapped team rewritten to %q", got)
	}
	if got := m.Venue("Eden Gardens"); got != "Eden Gardens" {
		t.Fatalf("unmapped venue rewritten to %q", got)
	}
}

func TestMappingApply(t *testing.T) {
	e := models.BallEvent{
		Venue:       "Feroz Shah Kotla",
		BattingTeam: "Kings XI Punjab",
		BowlingTeam: models.UnknownTeam,
	}
	DefaultMapping().Apply(&e)
	if e.Venue != "Arun Jaitley Stadium" {
		t.Fatalf("venue %q", e.Venue)
	}
	if e.BattingTeam != "Punjab Kings" {
		t.Fatalf("batting team %q", e.BattingTeam)
	}
	if e.BowlingTeam != models.UnknownTeam {
		t.Fatalf("unknown sentinel rewritten to %q", e.BowlingTeam)
	}
}

func TestValidateRejectsChains(t *testing.T) {
	m := &Mapping{Teams: map[string]string{
		"Delhi Daredevils": "Delhi Capitals",
		"Delhi Capitals":   "Capitals",
	}}
	if err := m.Validate(); err == nil {
		t.Fatalf("chained mapping accepted")
	}
}

func TestLoadMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.yaml")
	doc := `version: "test"
teams:
  Deccan Chargers: Sunrisers Hyderabad
venues:
  Newlands, Cape Town: Newlands
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write mapping: %v", err)
	}

	m, err := LoadMapping(path)
	if err != nil {
		t.Fatalf("LoadMapping: %v", err)
	}
	if got := m.Team("Deccan Chargers"); got != "Sunrisers Hyderabad" {
		t.Fatalf("team %q", got)
	}
	if got := m.Venue("Newlands, Cape Town"); got != "Newlands" {
		t.Fatalf("venue %q", got)
	}

	if _, err := LoadMapping(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("missing file accepted")
	}
}
