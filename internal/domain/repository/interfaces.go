package repository

import (
	"context"

	"CricPull/internal/domain/models"
)

// EventStore persists and reads back the flat ball-event table.
type EventStore interface {
	Init(ctx context.Context) error // ensure tables exist
	Store(ctx context.Context, e *models.BallEvent) error
	StoreBatch(ctx context.Context, events []*models.BallEvent) error
	// LoadAll returns every ball event ordered by
	// (match_id, innings, over, ball).
	LoadAll(ctx context.Context) ([]models.BallEvent, error)
	Health(ctx context.Context) error
	Close() error
}

// TrainingStore persists synthesized training rows.
type TrainingStore interface {
	Init(ctx context.Context) error
	StoreBatch(ctx context.Context, rows []models.StateRow) error
	Close() error
}

// Publisher emits ball events to a message backend.
type Publisher interface {
	Publish(ctx context.Context, e *models.BallEvent) error
	PublishBatch(ctx context.Context, events []*models.BallEvent) error
	Close() error
}

// Metrics records pipeline and serving observations.
type Metrics interface {
	RecordMatchParsed()
	RecordMatchSkipped(reason string)
	RecordEventsWritten(backend string, n int)
	RecordRowsEmitted(n int)
	RecordError(kind string)
	RecordLastPrediction(battingTeam string, score float64)
	RecordLatency(op string, seconds float64)
}
