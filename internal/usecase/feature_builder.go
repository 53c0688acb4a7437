package usecase

import (
	"context"
	"fmt"
	"time"

	drepo "CricPull/internal/domain/repository"
	"CricPull/internal/features"
	"CricPull/internal/repository"
	applogger "CricPull/pkg/logger"
)

// FeatureBuilder reads the full ball-event table, synthesizes training
// rows, and writes them to the training store and the CSV export. The
// whole dataset is recomputed each run; there is no incremental state.
type FeatureBuilder struct {
	events   drepo.EventStore
	training drepo.TrainingStore
	exporter *repository.CSVExporter
	metrics  drepo.Metrics
	l        *applogger.Logger
}

func NewFeatureBuilder(
	events drepo.EventStore,
	training drepo.TrainingStore,
	exporter *repository.CSVExporter,
	metrics drepo.Metrics,
	l *applogger.Logger,
) *FeatureBuilder {
	return &FeatureBuilder{
		events:   events,
		training: training,
		exporter: exporter,
		metrics:  metrics,
		l:        l,
	}
}

// Run synthesizes and persists the training dataset, returning the
// number of rows emitted.
func (b *FeatureBuilder) Run(ctx context.Context) (int, error) {
	start := time.Now()

	events, err := b.events.LoadAll(ctx)
	if err != nil {
		b.metrics.RecordError("load_events")
		return 0, fmt.Errorf("load events: %w", err)
	}

	trainingRows, err := features.Synthesize(events)
	if err != nil {
		b.metrics.RecordError("synthesize")
		return 0, fmt.Errorf("synthesize: %w", err)
	}

	if err := b.training.StoreBatch(ctx, trainingRows); err != nil {
		b.metrics.RecordError("store_training")
		return 0, fmt.Errorf("store training rows: %w", err)
	}
	if b.exporter != nil {
		if err := b.exporter.Export(trainingRows); err != nil {
			b.metrics.RecordError("export_csv")
			return 0, fmt.Errorf("export csv: %w", err)
		}
	}

	b.metrics.RecordRowsEmitted(len(trainingRows))
	b.metrics.RecordLatency("feature_run", time.Since(start).Seconds())
	b.l.Info("feature synthesis complete",
		applogger.Int("events", len(events)),
		applogger.Int("rows", len(trainingRows)),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return len(trainingRows), nil
}
