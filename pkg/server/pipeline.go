package server

import (
	"context"
	"fmt"

	"CricPull/internal/usecase"
	"CricPull/pkg/config"
	applogger "CricPull/pkg/logger"
)

// Pipeline runs the batch stages: ingest raw matches, synthesize
// training rows, or both in order.
type Pipeline struct {
	cfg      *config.Config
	l        *applogger.Logger
	ingestor *usecase.MatchIngestor
	builder  *usecase.FeatureBuilder
	closers  []func() error
}

func NewPipeline(
	cfg *config.Config,
	l *applogger.Logger,
	ingestor *usecase.MatchIngestor,
	builder *usecase.FeatureBuilder,
) *Pipeline {
	return &Pipeline{cfg: cfg, l: l, ingestor: ingestor, builder: builder}
}

// AddCloser registers a resource to close after the run.
func (p *Pipeline) AddCloser(f func() error) { p.closers = append(p.closers, f) }

// Run executes the requested stage: "ingest", "features", or "all".
func (p *Pipeline) Run(ctx context.Context, stage string) error {
	defer func() {
		for _, f := range p.closers {
			if err := f(); err != nil {
				p.l.Warn("resource close error", applogger.Error(err))
			}
		}
	}()

	switch stage {
	case "ingest":
		return p.runIngest(ctx)
	case "features":
		return p.runFeatures(ctx)
	case "all":
		if err := p.runIngest(ctx); err != nil {
			return err
		}
		return p.runFeatures(ctx)
	default:
		return fmt.Errorf("unknown stage %q (want ingest, features, or all)", stage)
	}
}

func (p *Pipeline) runIngest(ctx context.Context) error {
	report, err := p.ingestor.Run(ctx, p.cfg.Pipeline.RawDir)
	if err != nil {
		return fmt.Errorf("ingest stage: %w", err)
	}
	p.l.Info("ingest stage done",
		applogger.Int("parsed", report.Parsed),
		applogger.Int("skipped", report.Skipped),
		applogger.Int("events", report.Events),
	)
	return nil
}

func (p *Pipeline) runFeatures(ctx context.Context) error {
	rows, err := p.builder.Run(ctx)
	if err != nil {
		return fmt.Errorf("features stage: %w", err)
	}
	p.l.Info("features stage done", applogger.Int("rows", rows))
	return nil
}
