package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"CricPull/internal/domain/models"
	domrepo "CricPull/internal/domain/repository"
	pkgch "CricPull/pkg/clickhouse"
	applogger "CricPull/pkg/logger"
)

const trainingTable = "cricpull.training_rows"

const trainingDDL = `
CREATE TABLE IF NOT EXISTS ` + trainingTable + ` (
    match_id           String,
    venue              LowCardinality(String),
    batting_team       LowCardinality(String),
    bowling_team       LowCardinality(String),
    innings            UInt8,
    seq                UInt16,
    ball               Float64,
    legal_balls_bowled UInt16,
    wickets_left       UInt8,
    balls_left         Int16,
    current_score      UInt16,
    crr                Float64,
    runs_last_30       UInt16,
    wickets_last_30    UInt8,
    sample_weight      Float64,
    final_score        UInt16
) ENGINE = ReplacingMergeTree
ORDER BY (match_id, innings, seq)
`

// CHTrainingStore implements TrainingStore backed by ClickHouse. Rows
// replace on the delivery sequence key, so re-running synthesis
// overwrites the previous run without merging the label-sharing rows a
// wide produces.
type CHTrainingStore struct {
	db        *sql.DB
	batchSize int
	l         *applogger.Logger
}

func NewCHTrainingStore(ch *pkgch.Client, batchSize int) domrepo.TrainingStore {
	if batchSize <= 0 {
		batchSize = 2000
	}
	return &CHTrainingStore{db: ch.DB(), batchSize: batchSize}
}

func (s *CHTrainingStore) SetLogger(l *applogger.Logger) { s.l = l }

func (s *CHTrainingStore) Init(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, trainingDDL); err != nil {
		return fmt.Errorf("init training_rows: %w", err)
	}
	return nil
}

func (s *CHTrainingStore) StoreBatch(ctx context.Context, trainingRows []models.StateRow) error {
	if len(trainingRows) == 0 {
		return nil
	}
	for start := 0; start < len(trainingRows); start += s.batchSize {
		end := start + s.batchSize
		if end > len(trainingRows) {
			end = len(trainingRows)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*16)
		for _, r := range trainingRows[start:end] {
			values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)")
			args = append(args,
				r.MatchID, r.Venue, r.BattingTeam, r.BowlingTeam,
				r.Innings, r.Seq, r.Ball, r.LegalBallsBowled, r.WicketsLeft, r.BallsLeft,
				r.CurrentScore, r.CRR, r.RunsLast30, r.WicketsLast30,
				r.SampleWeight, r.FinalScore,
			)
		}

		q := fmt.Sprintf(`INSERT INTO %s
            (match_id, venue, batting_team, bowling_team,
             innings, seq, ball, legal_balls_bowled, wickets_left, balls_left,
             current_score, crr, runs_last_30, wickets_last_30,
             sample_weight, final_score)
            VALUES %s`, trainingTable, strings.Join(values, ", "))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			if s.l != nil {
				s.l.Error("clickhouse training_rows insert error",
					applogger.Int("rows", len(values)),
					applogger.Error(err),
				)
			}
			return fmt.Errorf("store training rows: %w", err)
		}
	}
	return nil
}

func (s *CHTrainingStore) Close() error { return nil }
