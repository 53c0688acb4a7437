package models

import "time"

// UnknownTeam is the sentinel emitted when the bowling side cannot be
// inferred (the match record does not list exactly two teams).
const UnknownTeam = "Unknown"

// BallEvent is one flattened delivery. Ball encodes the raw 0-based over
// index plus a within-over legal-delivery counter in the tenths place:
// the first ball of the match is 0.1, and a wide or no-ball repeats the
// counter on the delivery that follows it. Because of that repetition
// Ball is not unique; Seq counts every delivery, legal or not, and is
// the unique per-innings key.
type BallEvent struct {
	MatchID     string    `json:"match_id"`
	Date        time.Time `json:"date"`
	Venue       string    `json:"venue"`
	BattingTeam string    `json:"batting_team"`
	BowlingTeam string    `json:"bowling_team"`
	Innings     int       `json:"innings"` // 1-based
	Seq         int       `json:"seq"`     // 1-based delivery number within the innings
	Over        int       `json:"over"`    // 1-based display over
	Ball        float64   `json:"ball"`
	Batter      string    `json:"batter"`
	Bowler      string    `json:"bowler"`
	RunsOffBat  int       `json:"runs_off_bat"`
	Extras      int       `json:"extras"`
	TotalRuns   int       `json:"total_runs"`
	IsWicket    bool      `json:"is_wicket"`
	IsWide      bool      `json:"is_wide"`
	IsNoball    bool      `json:"is_noball"`
	IsLegal     bool      `json:"is_legal"`
}

// StateRow is one training row: a BallEvent's identity plus reconstructed
// innings state, trailing-window momentum, the innings' final score as
// regression target, and a recency sample weight. Immutable once written.
type StateRow struct {
	MatchID          string  `json:"match_id"`
	Venue            string  `json:"venue"`
	BattingTeam      string  `json:"batting_team"`
	BowlingTeam      string  `json:"bowling_team"`
	Innings          int     `json:"innings"`
	Seq              int     `json:"seq"`
	Ball             float64 `json:"ball"`
	LegalBallsBowled int     `json:"legal_balls_bowled"`
	WicketsLeft      int     `json:"wickets_left"`
	BallsLeft        int     `json:"balls_left"`
	CurrentScore     int     `json:"current_score"`
	CRR              float64 `json:"crr"`
	RunsLast30       int     `json:"runs_last_30"`
	WicketsLast30    int     `json:"wickets_last_30"`
	SampleWeight     float64 `json:"sample_weight"`
	FinalScore       int     `json:"final_score"`
}

// Prediction is a served point-in-time final-score estimate.
type Prediction struct {
	PredictedScore   float64 `json:"predicted_score"`
	Venue            string  `json:"venue"`
	BattingTeam      string  `json:"batting_team"`
	BowlingTeam      string  `json:"bowling_team"`
	Innings          int     `json:"innings"`
	Ball             float64 `json:"ball"`
	LegalBallsBowled int     `json:"legal_balls_bowled"`
	BallsLeft        int     `json:"balls_left"`
	WicketsLeft      int     `json:"wickets_left"`
	CurrentScore     int     `json:"current_score"`
	CRR              float64 `json:"crr"`
	Cached           bool    `json:"cached"`
}
