package ingest

import (
	"math"
	"testing"
)

const matchFixture = `{
  "info": {
    "dates": ["2024-04-12"],
    "venue": "Wankhede Stadium, Mumbai",
    "teams": ["Delhi Daredevils", "Chennai Super Kings"]
  },
  "innings": [
    {
      "team": "Delhi Daredevils",
      "overs": [
        {
          "over": 0,
          "deliveries": [
            {"batter": "DA Warner", "bowler": "DL Chahar", "runs": {"batter": 4, "extras": 0, "total": 4}},
            {"batter": "DA Warner", "bowler": "DL Chahar", "extras": {"wides": 1}, "runs": {"batter": 0, "extras": 1, "total": 1}},
            {"batter": "DA Warner", "bowler": "DL Chahar", "runs": {"batter": 1, "extras": 0, "total": 1}},
            {"batter": "PP Shaw", "bowler": "DL Chahar", "wickets": [{"kind": "bowled", "player_out": "PP Shaw"}], "runs": {"batter": 0, "extras": 0, "total": 0}}
          ]
        },
        {
          "over": 1,
          "deliveries": [
            {"batter": "DA Warner", "bowler": "MM Ali", "runs": {"batter": 6, "extras": 0, "total": 6}}
          ]
        }
      ]
    },
    {
      "team": "Chennai Super Kings",
      "overs": [
        {
          "over": 0,
          "deliveries": [
            {"batter": "RD Gaikwad", "bowler": "A Nortje", "runs": {"batter": 2, "extras": 0, "total": 2}}
          ]
        }
      ]
    }
  ]
}`

func TestParseMatch(t *testing.T) {
	events, err := NewParser(nil).Parse([]byte(matchFixture), "1426789")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(events) != 6 {
		t.Fatalf("got %d events, want 6", len(events))
	}

	// The counter advances only after a legal delivery, so the wide
	// shares its label with the legal ball that follows it. The sequence
	// counts every delivery and restarts per innings, keeping the
	// label-sharing pair distinct.
	wantBalls := []float64{0.1, 0.2, 0.2, 0.3, 1.1, 0.1}
	wantSeqs := []int{1, 2, 3, 4, 5, 1}
	for i, want := range wantBalls {
		if math.Abs(events[i].Ball-want) > 1e-9 {
			t.Fatalf("event %d: ball %v, want %v", i, events[i].Ball, want)
		}
		if events[i].Seq != wantSeqs[i] {
			t.Fatalf("event %d: seq %d, want %d", i, events[i].Seq, wantSeqs[i])
		}
	}

	first := events[0]
	if first.MatchID != "1426789" {
		t.Fatalf("match id %q", first.MatchID)
	}
	if first.Date.Year() != 2024 {
		t.Fatalf("date %v", first.Date)
	}
	if first.Venue != "Wankhede Stadium" {
		t.Fatalf("venue %q not canonicalized", first.Venue)
	}
	if first.BattingTeam != "Delhi Capitals" {
		t.Fatalf("batting team %q not canonicalized", first.BattingTeam)
	}
	if first.BowlingTeam != "Chennai Super Kings" {
		t.Fatalf("bowling team %q", first.BowlingTeam)
	}
	if first.Innings != 1 || first.Over != 1 {
		t.Fatalf("innings %d over %d", first.Innings, first.Over)
	}

	wide := events[1]
	if !wide.IsWide || wide.IsLegal {
		t.Fatalf("wide not flagged: %+v", wide)
	}
	if wide.TotalRuns != 1 || wide.RunsOffBat != 0 || wide.Extras != 1 {
		t.Fatalf("wide runs: %+v", wide)
	}

	wicket := events[3]
	if !wicket.IsWicket {
		t.Fatalf("wicket not flagged")
	}

	second := events[5]
	if second.Innings != 2 {
		t.Fatalf("second innings index %d", second.Innings)
	}
	if second.BattingTeam != "Chennai Super Kings" || second.BowlingTeam != "Delhi Capitals" {
		t.Fatalf("second innings teams %q vs %q", second.BattingTeam, second.BowlingTeam)
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `{`},
		{"missing dates", `{"info": {"venue": "Eden Gardens", "teams": ["a", "b"]}, "innings": []}`},
		{"bad date", `{"info": {"dates": ["April 12"], "teams": ["a", "b"]}, "innings": []}`},
		{"missing batting team", `{"info": {"dates": ["2024-04-12"], "teams": ["a", "b"]}, "innings": [{"overs": []}]}`},
		{"missing bowler", `{"info": {"dates": ["2024-04-12"], "teams": ["a", "b"]},
			"innings": [{"team": "a", "overs": [{"over": 0, "deliveries": [{"batter": "x", "runs": {"total": 0}}]}]}]}`},
	}
	p := NewParser(nil)
	for _, tt := range tests {
		if _, err := p.Parse([]byte(tt.doc), "m1"); err == nil {
			t.Fatalf("%s: expected error", tt.name)
		}
	}
	if _, err := p.Parse([]byte(matchFixture), ""); err == nil {
		t.Fatalf("empty match id: expected error")
	}
}

func TestParseDefaultsAndSentinels(t *testing.T) {
	doc := `{
	  "info": {"dates": ["2024-04-12"], "teams": ["a", "b", "c"]},
	  "innings": [{"team": "a", "overs": [{"over": 0, "deliveries": [
	    {"batter": "x", "bowler": "y", "runs": {"batter": 0, "extras": 0, "total": 0}}
	  ]}]}]
	}`
	events, err := NewParser(nil).Parse([]byte(doc), "m1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if events[0].Venue != "Unknown" {
		t.Fatalf("venue %q, want Unknown", events[0].Venue)
	}
	// Three listed teams: the bowling side cannot be inferred.
	if events[0].BowlingTeam != "Unknown" {
		t.Fatalf("bowling team %q, want Unknown", events[0].BowlingTeam)
	}
}
