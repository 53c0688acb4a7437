package usecase

import (
	"context"
	"fmt"
	"time"

	"CricPull/internal/domain/models"
	drepo "CricPull/internal/domain/repository"
)

// EventProcessor routes parsed ball events to the configured backend:
// direct ClickHouse inserts, or a Kafka topic drained by a consumer.
type EventProcessor struct {
	pub     drepo.Publisher
	store   drepo.EventStore
	metrics drepo.Metrics
	backend string
}

func NewEventProcessor(
	pub drepo.Publisher,
	store drepo.EventStore,
	metrics drepo.Metrics,
	backend string,
) *EventProcessor {
	return &EventProcessor{
		pub:     pub,
		store:   store,
		metrics: metrics,
		backend: backend,
	}
}

// Process routes a single ball event to the configured backend.
func (p *EventProcessor) Process(ctx context.Context, e *models.BallEvent) error {
	if e == nil {
		return fmt.Errorf("ball event is nil")
	}
	return p.ProcessBatch(ctx, []*models.BallEvent{e})
}

// ProcessBatch writes one match's worth of events in a single call so a
// match lands atomically per backend round-trip.
func (p *EventProcessor) ProcessBatch(ctx context.Context, events []*models.BallEvent) error {
	if len(events) == 0 {
		return nil
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.PublishBatch(ctx, events)
	case "clickhouse":
		err = p.store.StoreBatch(ctx, events)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("process_batch")
		return fmt.Errorf("process events: %w", err)
	}

	p.metrics.RecordEventsWritten(p.backend, len(events))
	p.metrics.RecordLatency("process_batch", time.Since(start).Seconds())
	return nil
}

// Close closes underlying resources if available.
func (p *EventProcessor) Close() {
	if p.pub != nil {
		_ = p.pub.Close()
	}
	if p.store != nil {
		_ = p.store.Close()
	}
}
