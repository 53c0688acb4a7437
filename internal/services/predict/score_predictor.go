package predict

import (
	"context"
	"fmt"

	"CricPull/internal/domain/models"
	domsvc "CricPull/internal/domain/service"
	"CricPull/pkg/config"
)

// HTTPScorePredictor calls the external model service, which holds the
// trained regressor and its feature encoder.
type HTTPScorePredictor struct {
	base *HTTPServiceBase
}

func NewHTTPScorePredictor(cfg *config.Config) *HTTPScorePredictor {
	return &HTTPScorePredictor{base: NewHTTPServiceBase(cfg)}
}

type predictReq struct {
	Features map[string]interface{} `json:"features"`
}

type predictResp struct {
	PredictedScore float64 `json:"predicted_score"`
}

func (s *HTTPScorePredictor) Predict(ctx context.Context, features map[string]interface{}) (models.Prediction, error) {
	var result models.Prediction
	var pr predictResp
	if err := s.base.PostJSONWithRetry(ctx, "/predict", predictReq{Features: features}, &pr, 3); err != nil {
		return result, fmt.Errorf("post predict: %w", err)
	}
	result.PredictedScore = pr.PredictedScore
	return result, nil
}

var _ domsvc.ScorePredictor = (*HTTPScorePredictor)(nil)
