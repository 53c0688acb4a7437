package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"CricPull/internal/domain/models"
	drepo "CricPull/internal/domain/repository"
	"CricPull/internal/ingest"
	applogger "CricPull/pkg/logger"
)

// MatchIngestor walks a directory of raw match documents, parses each
// with a bounded worker pool, and hands per-match event batches to the
// processor. A malformed match is skipped and reported, never fatal.
type MatchIngestor struct {
	parser  *ingest.Parser
	proc    *EventProcessor
	metrics drepo.Metrics
	l       *applogger.Logger
	workers int
}

// IngestReport summarizes one ingestion run.
type IngestReport struct {
	Parsed  int
	Skipped int
	Events  int
}

func NewMatchIngestor(
	parser *ingest.Parser,
	proc *EventProcessor,
	metrics drepo.Metrics,
	l *applogger.Logger,
	workers int,
) *MatchIngestor {
	if workers <= 0 {
		workers = 4
	}
	return &MatchIngestor{
		parser:  parser,
		proc:    proc,
		metrics: metrics,
		l:       l,
		workers: workers,
	}
}

// Run ingests every .json file under dir. Files are dispatched in sorted
// order so repeated runs visit matches deterministically.
func (m *MatchIngestor) Run(ctx context.Context, dir string) (IngestReport, error) {
	files, err := matchFiles(dir)
	if err != nil {
		return IngestReport{}, err
	}
	if len(files) == 0 {
		// An empty raw directory is not an error: the run succeeds with
		// nothing to do and downstream stages produce empty output.
		m.l.Warn("no match files found", applogger.String("dir", dir))
		return IngestReport{}, nil
	}

	start := time.Now()
	paths := make(chan string)
	var wg sync.WaitGroup
	var mu sync.Mutex
	report := IngestReport{}

	for i := 0; i < m.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range paths {
				parsed, events := m.ingestOne(ctx, path)
				mu.Lock()
				if parsed {
					report.Parsed++
					report.Events += events
				} else {
					report.Skipped++
				}
				mu.Unlock()
			}
		}()
	}

dispatch:
	for _, path := range files {
		select {
		case <-ctx.Done():
			break dispatch
		case paths <- path:
		}
	}
	close(paths)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return report, err
	}

	m.metrics.RecordLatency("ingest_run", time.Since(start).Seconds())
	m.l.Info("ingestion run complete",
		applogger.Int("parsed", report.Parsed),
		applogger.Int("skipped", report.Skipped),
		applogger.Int("events", report.Events),
		applogger.Duration("duration_ms", time.Since(start)),
	)
	return report, nil
}

// ingestOne parses and writes one match, reporting success and the event
// count. Parse and write failures skip the match.
func (m *MatchIngestor) ingestOne(ctx context.Context, path string) (bool, int) {
	events, err := m.parser.ParseFile(path)
	if err != nil {
		m.metrics.RecordMatchSkipped("parse")
		m.l.Warn("skipping match",
			applogger.String("file", filepath.Base(path)),
			applogger.Error(err),
		)
		return false, 0
	}

	batch := make([]*models.BallEvent, len(events))
	for i := range events {
		batch[i] = &events[i]
	}
	if err := m.proc.ProcessBatch(ctx, batch); err != nil {
		m.metrics.RecordMatchSkipped("write")
		m.l.Error("match write failed",
			applogger.String("file", filepath.Base(path)),
			applogger.Error(err),
		)
		return false, 0
	}

	m.metrics.RecordMatchParsed()
	return true, len(events)
}

func matchFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read raw dir: %w", err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
