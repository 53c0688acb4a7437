package service

import (
	"context"

	"CricPull/internal/domain/models"
)

// ScorePredictor scores a fully derived feature vector against the
// trained regressor. The model itself lives behind this boundary.
type ScorePredictor interface {
	Predict(ctx context.Context, features map[string]interface{}) (models.Prediction, error)
}
