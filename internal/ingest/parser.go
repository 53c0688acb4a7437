package ingest

import (
	"encoding/json"
	"fmt"
	"os"

	"CricPull/internal/domain/models"
	"CricPull/pkg/util"
)

// Parser flattens raw match documents into ordered ball events and
// applies the injected name mapping.
type Parser struct {
	mapping *Mapping
}

func NewParser(mapping *Mapping) *Parser {
	if mapping == nil {
		mapping = DefaultMapping()
	}
	return &Parser{mapping: mapping}
}

// ParseFile reads one raw match document from disk. The match identifier
// is the filename stem, which upstream guarantees stable and unique.
func (p *Parser) ParseFile(path string) ([]models.BallEvent, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read match: %w", err)
	}
	return p.Parse(b, util.MatchIDFromFilename(path))
}

// Parse flattens one raw match record into ball events in raw
// chronological order (innings, then over, then delivery). A malformed
// record returns an error so the caller can skip just this match.
func (p *Parser) Parse(doc []byte, matchID string) ([]models.BallEvent, error) {
	if matchID == "" {
		return nil, fmt.Errorf("match id is required")
	}

	var m models.RawMatch
	if err := json.Unmarshal(doc, &m); err != nil {
		return nil, fmt.Errorf("unmarshal match %s: %w", matchID, err)
	}

	if len(m.Info.Dates) == 0 {
		return nil, fmt.Errorf("match %s: missing dates", matchID)
	}
	date, ok := util.ParseMatchDate(m.Info.Dates[0])
	if !ok {
		return nil, fmt.Errorf("match %s: bad date %q", matchID, m.Info.Dates[0])
	}

	venue := m.Info.Venue
	if venue == "" {
		venue = "Unknown"
	}

	var events []models.BallEvent
	for inningsIdx, innings := range m.Innings {
		battingTeam := innings.Team
		if battingTeam == "" {
			return nil, fmt.Errorf("match %s innings %d: missing batting team", matchID, inningsIdx+1)
		}
		bowlingTeam := inferBowlingTeam(m.Info.Teams, battingTeam)

		// Seq numbers every delivery of the innings, wides and no-balls
		// included, so events keep a unique key even where ball labels
		// repeat.
		seq := 0
		for _, over := range innings.Overs {
			// Raw over indexes are 0-based; the counter restarts each
			// over and advances only after a legal delivery.
			ballCounter := 1
			for ballIdx, d := range over.Deliveries {
				if d.Batter == "" || d.Bowler == "" {
					return nil, fmt.Errorf("match %s innings %d over %d ball %d: missing batter or bowler",
						matchID, inningsIdx+1, over.Over, ballIdx+1)
				}

				_, isWide := d.Extras["wides"]
				_, isNoball := d.Extras["noballs"]
				isLegal := !isWide && !isNoball
				seq++

				e := models.BallEvent{
					MatchID:     matchID,
					Date:        date,
					Venue:       venue,
					BattingTeam: battingTeam,
					BowlingTeam: bowlingTeam,
					Innings:     inningsIdx + 1,
					Seq:         seq,
					Over:        over.Over + 1,
					Ball:        float64(over.Over) + float64(ballCounter)/10.0,
					Batter:      d.Batter,
					Bowler:      d.Bowler,
					RunsOffBat:  d.Runs.Batter,
					Extras:      d.Runs.Extras,
					TotalRuns:   d.Runs.Total,
					IsWicket:    len(d.Wickets) > 0,
					IsWide:      isWide,
					IsNoball:    isNoball,
					IsLegal:     isLegal,
				}
				p.mapping.Apply(&e)
				events = append(events, e)

				if isLegal {
					ballCounter++
				}
			}
		}
	}

	return events, nil
}

// inferBowlingTeam returns "the other of the two match teams", or the
// Unknown sentinel when the record does not list exactly two teams.
func inferBowlingTeam(teams []string, batting string) string {
	if len(teams) != 2 {
		return models.UnknownTeam
	}
	if teams[0] == batting {
		return teams[1]
	}
	return teams[0]
}
