package features

import (
	"fmt"
	"sort"

	"CricPull/internal/domain/models"
)

const (
	// MaxInnings: events beyond the second innings (superovers,
	// restarted innings) are out of scope and dropped.
	MaxInnings = 2
	// MinValidDeliveries: an innings must record more legal deliveries
	// than this, or lose all ten wickets, to be a valid training target.
	// Shorter innings are rain-curtailed or otherwise abnormal.
	MinValidDeliveries = 60
)

// Synthesize turns the flat ball-event table into training rows:
// running innings state, trailing momentum, the final-score target,
// validity filtering, and recency weighting. An empty input produces an
// empty, schema-valid output.
func Synthesize(events []models.BallEvent) ([]models.StateRow, error) {
	kept := make([]models.BallEvent, 0, len(events))
	for _, e := range events {
		if e.Innings <= MaxInnings {
			kept = append(kept, e)
		}
	}

	// The delivery sequence breaks ties between equal ball labels (a
	// wide and its retry share a label), so ordering is deterministic
	// whatever order the store returned.
	sort.SliceStable(kept, func(i, j int) bool {
		return lessEvent(&kept[i], &kept[j])
	})

	return synthesizeOrdered(kept)
}

// synthesizeOrdered requires events sorted by (match_id, innings, over,
// ball, seq). Ordering is an explicit precondition, verified up front, since
// every cumulative and rolling computation below silently depends on it.
func synthesizeOrdered(events []models.BallEvent) ([]models.StateRow, error) {
	for i := 1; i < len(events); i++ {
		if lessEvent(&events[i], &events[i-1]) {
			return nil, fmt.Errorf("ball events not ordered at index %d (match %s)", i, events[i].MatchID)
		}
	}

	type group struct {
		rows []models.StateRow
		year int
	}
	var valid []group

	for start := 0; start < len(events); {
		end := start + 1
		for end < len(events) &&
			events[end].MatchID == events[start].MatchID &&
			events[end].Innings == events[start].Innings {
			end++
		}

		if g, ok := synthesizeGroup(events[start:end]); ok {
			valid = append(valid, group{rows: g, year: events[start].Date.Year()})
		}
		start = end
	}

	// Recency weights use the newest season among surviving rows.
	maxYear := 0
	for _, g := range valid {
		if g.year > maxYear {
			maxYear = g.year
		}
	}

	out := make([]models.StateRow, 0, len(events))
	for _, g := range valid {
		w := RecencyWeight(g.year, maxYear)
		for i := range g.rows {
			g.rows[i].SampleWeight = w
			out = append(out, g.rows[i])
		}
	}
	return out, nil
}

// synthesizeGroup computes the state rows for one (match, innings)
// group, returning ok=false when the validity filter rejects it.
func synthesizeGroup(group []models.BallEvent) ([]models.StateRow, bool) {
	n := len(group)
	if n == 0 {
		return nil, false
	}

	runs := make([]int, n)
	wickets := make([]int, n)
	for i, e := range group {
		runs[i] = e.TotalRuns
		if e.IsWicket {
			wickets[i] = 1
		}
	}
	runsWindow := rollingSum(runs, MomentumWindow)
	wicketsWindow := rollingSum(wickets, MomentumWindow)

	rows := make([]models.StateRow, 0, n)
	score, fallen, legal := 0, 0, 0
	for i, e := range group {
		score += e.TotalRuns
		if e.IsWicket {
			fallen++
		}
		if e.IsLegal {
			legal++
		}

		rows = append(rows, models.StateRow{
			MatchID:          e.MatchID,
			Venue:            e.Venue,
			BattingTeam:      e.BattingTeam,
			BowlingTeam:      e.BowlingTeam,
			Innings:          e.Innings,
			Seq:              e.Seq,
			Ball:             e.Ball,
			LegalBallsBowled: legal,
			WicketsLeft:      WicketsLeft(fallen),
			BallsLeft:        BallsLeft(legal),
			CurrentScore:     score,
			CRR:              CurrentRunRate(score, legal),
			RunsLast30:       runsWindow[i],
			WicketsLast30:    wicketsWindow[i],
		})
	}

	// The eventual innings total, broadcast to every row of the group.
	finalScore := score
	for i := range rows {
		rows[i].FinalScore = finalScore
	}

	// Validity filter: exclude rain-curtailed or abnormally short
	// innings whose final score would mislead the regressor.
	if legal <= MinValidDeliveries && fallen != WicketsPerInnings {
		return nil, false
	}
	return rows, true
}

func lessEvent(a, b *models.BallEvent) bool {
	if a.MatchID != b.MatchID {
		return a.MatchID < b.MatchID
	}
	if a.Innings != b.Innings {
		return a.Innings < b.Innings
	}
	if a.Over != b.Over {
		return a.Over < b.Over
	}
	if a.Ball != b.Ball {
		return a.Ball < b.Ball
	}
	return a.Seq < b.Seq
}
