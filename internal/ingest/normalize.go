package ingest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"CricPull/internal/domain/models"
)

// Mapping rewrites historical team and venue spellings to one canonical
// label. It is immutable after construction and idempotent: canonical
// labels are never themselves keys, so applying it twice is a no-op.
// Unmapped values pass through unchanged.
type Mapping struct {
	Version string            `yaml:"version"`
	Teams   map[string]string `yaml:"teams"`
	Venues  map[string]string `yaml:"venues"`
}

// DefaultMapping returns the built-in rename tables: franchise rebrands
// and venue-string variants (city suffixes, punctuation, pre-rename names).
func DefaultMapping() *Mapping {
	return &Mapping{
		Version: "2024.1",
		Teams: map[string]string{
			// Rebrands; defunct franchises are kept distinct.
			"Delhi Daredevils":            "Delhi Capitals",
			"Kings XI Punjab":             "Punjab Kings",
			"Royal Challengers Bangalore": "Royal Challengers Bengaluru",
			"Rising Pune Supergiant":      "Rising Pune Supergiants",
		},
		Venues: map[string]string{
			// City suffixes
			"Arun Jaitley Stadium, Delhi":     "Arun Jaitley Stadium",
			"Brabourne Stadium, Mumbai":       "Brabourne Stadium",
			"Dr DY Patil Sports Academy, Mumbai": "Dr DY Patil Sports Academy",
			"Dr. Y.S. Rajasekhara Reddy ACA-VDCA Cricket Stadium, Visakhapatnam": "Dr. Y.S. Rajasekhara Reddy ACA-VDCA Cricket Stadium",
			"Eden Gardens, Kolkata": "Eden Gardens",
			"Himachal Pradesh Cricket Association Stadium, Dharamsala": "Himachal Pradesh Cricket Association Stadium",
			"M Chinnaswamy Stadium, Bengaluru":                         "M. Chinnaswamy Stadium",
			"M Chinnaswamy Stadium":                                    "M. Chinnaswamy Stadium",
			"MA Chidambaram Stadium, Chepauk":                          "MA Chidambaram Stadium",
			"MA Chidambaram Stadium, Chepauk, Chennai":                 "MA Chidambaram Stadium",
			"Maharashtra Cricket Association Stadium, Pune":            "Maharashtra Cricket Association Stadium",
			"Maharaja Yadavindra Singh International Cricket Stadium, New Chandigarh": "Maharaja Yadavindra Singh International Cricket Stadium, Mullanpur",
			"Punjab Cricket Association IS Bindra Stadium, Mohali":                    "Punjab Cricket Association IS Bindra Stadium",
			"Punjab Cricket Association IS Bindra Stadium, Mohali, Chandigarh":        "Punjab Cricket Association IS Bindra Stadium",
			"Punjab Cricket Association Stadium, Mohali":                              "Punjab Cricket Association IS Bindra Stadium",
			"Rajiv Gandhi International Stadium, Uppal":                               "Rajiv Gandhi International Stadium",
			"Rajiv Gandhi International Stadium, Uppal, Hyderabad":                    "Rajiv Gandhi International Stadium",
			"Sawai Mansingh Stadium, Jaipur":                                          "Sawai Mansingh Stadium",
			"Wankhede Stadium, Mumbai":                                                "Wankhede Stadium",
			"Zayed Cricket Stadium, Abu Dhabi":                                        "Sheikh Zayed Stadium",
			// Historic renames
			"Feroz Shah Kotla":                                "Arun Jaitley Stadium",
			"Sardar Patel Stadium, Motera":                    "Narendra Modi Stadium",
			"Narendra Modi Stadium, Ahmedabad":                "Narendra Modi Stadium",
			"Subrata Roy Sahara Stadium":                      "Maharashtra Cricket Association Stadium",
			"Vidarbha Cricket Association Stadium, Jamtha":    "Vidarbha Cricket Association Stadium",
		},
	}
}

// LoadMapping reads a mapping from a YAML file, so rename tables can be
// extended without code changes.
func LoadMapping(path string) (*Mapping, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping: %w", err)
	}
	var m Mapping
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse mapping: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validate mapping %q: %w", path, err)
	}
	return &m, nil
}

// Validate rejects mappings that are not idempotent: a canonical label
// must not itself be a key rewriting to a different label.
func (m *Mapping) Validate() error {
	for _, table := range []map[string]string{m.Teams, m.Venues} {
		for k, v := range table {
			if mapped, ok := table[v]; ok && mapped != v {
				return fmt.Errorf("%q -> %q -> %q is not idempotent", k, v, mapped)
			}
		}
	}
	return nil
}

// Team returns the canonical team label.
func (m *Mapping) Team(name string) string {
	if canonical, ok := m.Teams[name]; ok {
		return canonical
	}
	return name
}

// Venue returns the canonical venue label.
func (m *Mapping) Venue(name string) string {
	if canonical, ok := m.Venues[name]; ok {
		return canonical
	}
	return name
}

// Apply rewrites the identity columns of one ball event in place.
func (m *Mapping) Apply(e *models.BallEvent) {
	e.BattingTeam = m.Team(e.BattingTeam)
	if e.BowlingTeam != models.UnknownTeam {
		e.BowlingTeam = m.Team(e.BowlingTeam)
	}
	e.Venue = m.Venue(e.Venue)
}
