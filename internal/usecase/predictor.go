package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"CricPull/internal/domain/models"
	drepo "CricPull/internal/domain/repository"
	domsvc "CricPull/internal/domain/service"
	"CricPull/internal/features"
	"CricPull/internal/ingest"
	"CricPull/internal/service/cache"
	applogger "CricPull/pkg/logger"
)

// Predictor serves final-score estimates. It canonicalizes the request's
// team and venue names with the same mapping used at ingestion, derives
// the engineered features with the training-time formulas, and scores
// the vector against the model service, caching by exact match state.
type Predictor struct {
	mapping  *ingest.Mapping
	model    domsvc.ScorePredictor
	cache    cache.BytesCache
	cacheTTL time.Duration
	metrics  drepo.Metrics
	l        *applogger.Logger
}

func NewPredictor(
	mapping *ingest.Mapping,
	model domsvc.ScorePredictor,
	c cache.BytesCache,
	cacheTTL time.Duration,
	metrics drepo.Metrics,
	l *applogger.Logger,
) *Predictor {
	if mapping == nil {
		mapping = ingest.DefaultMapping()
	}
	return &Predictor{
		mapping:  mapping,
		model:    model,
		cache:    c,
		cacheTTL: cacheTTL,
		metrics:  metrics,
		l:        l,
	}
}

func (p *Predictor) Predict(ctx context.Context, req *models.PredictRequest) (models.Prediction, error) {
	start := time.Now()

	venue := p.mapping.Venue(req.Venue)
	batting := p.mapping.Team(req.BattingTeam)
	bowling := p.mapping.Team(req.BowlingTeam)
	st := features.DeriveState(req.Ball, req.CurrentScore, req.WicketsFallen)

	key := predictionKey(venue, batting, bowling, req, st)
	if p.cache != nil {
		if b, ok, err := p.cache.GetBytes(ctx, key); err != nil {
			p.metrics.RecordError("cache_get")
		} else if ok {
			var cached models.Prediction
			if err := json.Unmarshal(b, &cached); err == nil {
				cached.Cached = true
				p.metrics.RecordLatency("predict", time.Since(start).Seconds())
				return cached, nil
			}
		}
	}

	result, err := p.model.Predict(ctx, map[string]interface{}{
		"venue":              venue,
		"batting_team":       batting,
		"bowling_team":       bowling,
		"innings":            req.Innings,
		"ball":               req.Ball,
		"legal_balls_bowled": st.LegalBallsBowled,
		"wickets_left":       st.WicketsLeft,
		"balls_left":         st.BallsLeft,
		"current_score":      req.CurrentScore,
		"crr":                st.CRR,
		"runs_last_30":       req.RunsLast30,
		"wickets_last_30":    req.WicketsLast30,
	})
	if err != nil {
		p.metrics.RecordError("model_predict")
		return models.Prediction{}, fmt.Errorf("predict: %w", err)
	}

	result.Venue = venue
	result.BattingTeam = batting
	result.BowlingTeam = bowling
	result.Innings = req.Innings
	result.Ball = req.Ball
	result.LegalBallsBowled = st.LegalBallsBowled
	result.BallsLeft = st.BallsLeft
	result.WicketsLeft = st.WicketsLeft
	result.CurrentScore = req.CurrentScore
	result.CRR = st.CRR
	result.Cached = false

	if p.cache != nil {
		if b, err := json.Marshal(result); err == nil {
			if err := p.cache.SetBytes(ctx, key, b, p.cacheTTL); err != nil {
				p.metrics.RecordError("cache_set")
			}
		}
	}

	p.metrics.RecordLastPrediction(batting, result.PredictedScore)
	p.metrics.RecordLatency("predict", time.Since(start).Seconds())
	p.l.Debug("prediction served",
		applogger.String("batting_team", batting),
		applogger.Float64("ball", req.Ball),
		applogger.Float64("predicted_score", result.PredictedScore),
	)
	return result, nil
}

// predictionKey identifies one exact match state after normalization, so
// equivalent requests with historical spellings share a cache entry.
func predictionKey(venue, batting, bowling string, req *models.PredictRequest, st features.DerivedState) string {
	return fmt.Sprintf("predict:%s|%s|%s|%d|%.1f|%d|%d|%d|%d",
		venue, batting, bowling,
		req.Innings, req.Ball, req.CurrentScore, st.WicketsLeft,
		req.RunsLast30, req.WicketsLast30,
	)
}
