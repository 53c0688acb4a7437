package usecase

import (
	"context"
	"testing"
	"time"

	"CricPull/internal/domain/models"
	"CricPull/internal/service/cache"
	applogger "CricPull/pkg/logger"
)

type stubModel struct {
	calls int
	score float64
}

func (s *stubModel) Predict(ctx context.Context, features map[string]interface{}) (models.Prediction, error) {
	s.calls++
	return models.Prediction{PredictedScore: s.score}, nil
}

type nopMetrics struct{}

func (nopMetrics) RecordMatchParsed()                   {}
func (nopMetrics) RecordMatchSkipped(string)            {}
func (nopMetrics) RecordEventsWritten(string, int)      {}
func (nopMetrics) RecordRowsEmitted(int)                {}
func (nopMetrics) RecordError(string)                   {}
func (nopMetrics) RecordLastPrediction(string, float64) {}
func (nopMetrics) RecordLatency(string, float64)        {}

func TestPredictorDerivesAndNormalizes(t *testing.T) {
	model := &stubModel{score: 186.4}
	p := NewPredictor(nil, model, cache.NewMemoryCache(), time.Minute, nopMetrics{}, applogger.Nop())

	req := &models.PredictRequest{
		Venue:         "Feroz Shah Kotla",
		BattingTeam:   "Delhi Daredevils",
		BowlingTeam:   "Kings XI Punjab",
		Innings:       1,
		Ball:          7.3,
		CurrentScore:  62,
		WicketsFallen: 2,
		RunsLast30:    28,
		WicketsLast30: 1,
	}
	got, err := p.Predict(context.Background(), req)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if got.PredictedScore != 186.4 {
		t.Fatalf("score %v", got.PredictedScore)
	}
	if got.Venue != "Arun Jaitley Stadium" || got.BattingTeam != "Delhi Capitals" || got.BowlingTeam != "Punjab Kings" {
		t.Fatalf("names not canonicalized: %+v", got)
	}
	if got.LegalBallsBowled != 45 || got.BallsLeft != 75 || got.WicketsLeft != 8 {
		t.Fatalf("derived state: %+v", got)
	}
	if got.Cached {
		t.Fatalf("first call flagged cached")
	}
}

func TestPredictorCaches(t *testing.T) {
	model := &stubModel{score: 150}
	p := NewPredictor(nil, model, cache.NewMemoryCache(), time.Minute, nopMetrics{}, applogger.Nop())

	req := &models.PredictRequest{
		Venue: "Eden Gardens", BattingTeam: "Kolkata Knight Riders", BowlingTeam: "Mumbai Indians",
		Innings: 1, Ball: 10.2, CurrentScore: 88, WicketsFallen: 3,
	}
	if _, err := p.Predict(context.Background(), req); err != nil {
		t.Fatalf("first predict: %v", err)
	}
	second, err := p.Predict(context.Background(), req)
	if err != nil {
		t.Fatalf("second predict: %v", err)
	}
	if model.calls != 1 {
		t.Fatalf("model called %d times, want 1", model.calls)
	}
	if !second.Cached {
		t.Fatalf("cache hit not flagged")
	}

	// Historical spellings of the same state share the cache entry.
	alias := *req
	alias.BowlingTeam = "Mumbai Indians"
	alias.Venue = "Eden Gardens, Kolkata"
	if _, err := p.Predict(context.Background(), &alias); err != nil {
		t.Fatalf("alias predict: %v", err)
	}
	if model.calls != 1 {
		t.Fatalf("alias state missed cache, model called %d times", model.calls)
	}
}
