package usecase

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"CricPull/internal/domain/models"
	"CricPull/internal/ingest"
	applogger "CricPull/pkg/logger"
)

type memEventStore struct {
	mu     sync.Mutex
	events []models.BallEvent
}

func (s *memEventStore) Init(ctx context.Context) error { return nil }

func (s *memEventStore) Store(ctx context.Context, e *models.BallEvent) error {
	return s.StoreBatch(ctx, []*models.BallEvent{e})
}

func (s *memEventStore) StoreBatch(ctx context.Context, events []*models.BallEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range events {
		s.events = append(s.events, *e)
	}
	return nil
}

func (s *memEventStore) LoadAll(ctx context.Context) ([]models.BallEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.BallEvent, len(s.events))
	copy(out, s.events)
	return out, nil
}

func (s *memEventStore) Health(ctx context.Context) error { return nil }
func (s *memEventStore) Close() error                     { return nil }

const rawMatch = `{
  "info": {"dates": ["2024-04-12"], "venue": "Eden Gardens", "teams": ["Kolkata Knight Riders", "Mumbai Indians"]},
  "innings": [{"team": "Kolkata Knight Riders", "overs": [{"over": 0, "deliveries": [
    {"batter": "SP Narine", "bowler": "JJ Bumrah", "runs": {"batter": 1, "extras": 0, "total": 1}},
    {"batter": "P Salt", "bowler": "JJ Bumrah", "runs": {"batter": 4, "extras": 0, "total": 4}}
  ]}]}]
}`

func TestMatchIngestorRun(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1001.json", "1002.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(rawMatch), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	// Malformed match: skipped, not fatal.
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte(`{"info": {}}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	// Non-match files are ignored entirely.
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("raw data"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	store := &memEventStore{}
	proc := NewEventProcessor(nil, store, nopMetrics{}, "clickhouse")
	ing := NewMatchIngestor(ingest.NewParser(nil), proc, nopMetrics{}, applogger.Nop(), 2)

	report, err := ing.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Parsed != 2 || report.Skipped != 1 {
		t.Fatalf("report %+v", report)
	}
	if report.Events != 4 {
		t.Fatalf("events %d, want 4", report.Events)
	}

	stored, _ := store.LoadAll(context.Background())
	if len(stored) != 4 {
		t.Fatalf("stored %d events", len(stored))
	}
}

func TestMatchIngestorEmptyDir(t *testing.T) {
	store := &memEventStore{}
	proc := NewEventProcessor(nil, store, nopMetrics{}, "clickhouse")
	ing := NewMatchIngestor(ingest.NewParser(nil), proc, nopMetrics{}, applogger.Nop(), 2)

	// Zero matches is a successful run that just produces nothing.
	report, err := ing.Run(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Run on empty dir: %v", err)
	}
	if report != (IngestReport{}) {
		t.Fatalf("report %+v, want zero", report)
	}

	// A missing directory is still an error.
	if _, err := ing.Run(context.Background(), filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatalf("missing dir accepted")
	}
}

func TestEventProcessorUnknownBackend(t *testing.T) {
	proc := NewEventProcessor(nil, &memEventStore{}, nopMetrics{}, "postgres")
	err := proc.ProcessBatch(context.Background(), []*models.BallEvent{{MatchID: "m1"}})
	if err == nil {
		t.Fatalf("unknown backend accepted")
	}
}
