package models

// PredictRequest is the serving-time input: the reduced match state from
// which the derived features (legal balls bowled, balls/wickets left,
// current run rate) are recomputed with the training-time formulas.
type PredictRequest struct {
	Venue         string  `json:"venue" validate:"required"`
	BattingTeam   string  `json:"batting_team" validate:"required"`
	BowlingTeam   string  `json:"bowling_team" validate:"required"`
	Innings       int     `json:"innings" default:"1" validate:"gte=1,lte=2"`
	Ball          float64 `json:"ball" validate:"gte=0,lt=20"`
	CurrentScore  int     `json:"current_score" validate:"gte=0"`
	WicketsFallen int     `json:"wickets_fallen" validate:"gte=0,lte=10"`
	RunsLast30    int     `json:"runs_last_30" validate:"gte=0"`
	WicketsLast30 int     `json:"wickets_last_30" validate:"gte=0,lte=10"`
}
