package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"CricPull/internal/domain/models"
	domrepo "CricPull/internal/domain/repository"
	pkgch "CricPull/pkg/clickhouse"
	applogger "CricPull/pkg/logger"
)

const eventsTable = "cricpull.ball_events"

const eventsDDL = `
CREATE TABLE IF NOT EXISTS ` + eventsTable + ` (
    match_id     String,
    match_date   Date,
    venue        LowCardinality(String),
    batting_team LowCardinality(String),
    bowling_team LowCardinality(String),
    innings      UInt8,
    seq          UInt16,
    over         UInt16,
    ball         Float64,
    batter       String,
    bowler       String,
    runs_off_bat UInt8,
    extras       UInt8,
    total_runs   UInt8,
    is_wicket    Bool,
    is_wide      Bool,
    is_noball    Bool,
    is_legal     Bool
) ENGINE = ReplacingMergeTree
ORDER BY (match_id, innings, seq)
`

// CHEventStore implements EventStore backed by ClickHouse. The sorting
// key is the per-innings delivery sequence, which is unique even where
// ball labels repeat (a wide shares its label with the retry), so
// re-ingesting a match replaces rows instead of collapsing deliveries.
type CHEventStore struct {
	db        *sql.DB
	batchSize int
	l         *applogger.Logger
}

func NewCHEventStore(ch *pkgch.Client, batchSize int) domrepo.EventStore {
	if batchSize <= 0 {
		batchSize = 2000
	}
	return &CHEventStore{db: ch.DB(), batchSize: batchSize}
}

// SetLogger injects a structured logger.
func (s *CHEventStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CHEventStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, eventsDDL); err != nil {
		return fmt.Errorf("init ball_events: %w", err)
	}
	return nil
}

func (s *CHEventStore) Store(ctx context.Context, e *models.BallEvent) error {
	return s.StoreBatch(ctx, []*models.BallEvent{e})
}

func (s *CHEventStore) StoreBatch(ctx context.Context, events []*models.BallEvent) error {
	if len(events) == 0 {
		return nil
	}
	// Multi-row VALUES per chunk to cut round-trips.
	for start := 0; start < len(events); start += s.batchSize {
		end := start + s.batchSize
		if end > len(events) {
			end = len(events)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*18)
		for _, e := range events[start:end] {
			if e == nil || e.MatchID == "" {
				continue
			}
			values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
			args = append(args,
				e.MatchID, e.Date, e.Venue, e.BattingTeam, e.BowlingTeam,
				e.Innings, e.Seq, e.Over, e.Ball, e.Batter, e.Bowler,
				e.RunsOffBat, e.Extras, e.TotalRuns,
				e.IsWicket, e.IsWide, e.IsNoball, e.IsLegal,
			)
		}
		if len(values) == 0 {
			continue
		}

		q := fmt.Sprintf(`INSERT INTO %s
            (match_id, match_date, venue, batting_team, bowling_team,
             innings, seq, over, ball, batter, bowler,
             runs_off_bat, extras, total_runs,
             is_wicket, is_wide, is_noball, is_legal)
            VALUES %s`, eventsTable, strings.Join(values, ", "))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			if s.l != nil {
				s.l.Error("clickhouse ball_events insert error",
					applogger.Int("rows", len(values)),
					applogger.Error(err),
				)
			}
			return fmt.Errorf("store ball events: %w", err)
		}
	}
	return nil
}

func (s *CHEventStore) LoadAll(ctx context.Context) ([]models.BallEvent, error) {
	start := time.Now()
	q := `
        SELECT match_id, match_date, venue, batting_team, bowling_team,
               innings, seq, over, ball, batter, bowler,
               runs_off_bat, extras, total_runs,
               is_wicket, is_wide, is_noball, is_legal
        FROM ` + eventsTable + ` FINAL
        ORDER BY match_id ASC, innings ASC, seq ASC
    `
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("load ball events: %w", err)
	}
	defer rows.Close()

	out := make([]models.BallEvent, 0, 4096)
	for rows.Next() {
		var e models.BallEvent
		if err := rows.Scan(
			&e.MatchID, &e.Date, &e.Venue, &e.BattingTeam, &e.BowlingTeam,
			&e.Innings, &e.Seq, &e.Over, &e.Ball, &e.Batter, &e.Bowler,
			&e.RunsOffBat, &e.Extras, &e.TotalRuns,
			&e.IsWicket, &e.IsWide, &e.IsNoball, &e.IsLegal,
		); err != nil {
			return nil, fmt.Errorf("scan ball event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if s.l != nil {
		s.l.Info("clickhouse ball_events load ok",
			applogger.Int("rows", len(out)),
			applogger.Duration("duration_ms", time.Since(start)),
		)
	}
	return out, nil
}

func (s *CHEventStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *CHEventStore) Close() error { return nil }
