package repository

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"CricPull/internal/domain/models"
)

var csvHeader = []string{
	"match_id", "venue", "batting_team", "bowling_team",
	"innings", "ball", "legal_balls_bowled", "wickets_left", "balls_left",
	"current_score", "crr", "runs_last_30", "wickets_last_30",
	"sample_weight", "final_score",
}

// CSVExporter writes synthesized training rows as a CSV file for model
// training. Output is deterministic for a given input: same rows in,
// byte-identical file out.
type CSVExporter struct {
	path string
}

func NewCSVExporter(path string) *CSVExporter {
	return &CSVExporter{path: path}
}

// Export writes rows to the configured path, replacing any previous
// file. The write goes through a temp file and rename so a crash never
// leaves a truncated dataset behind.
func (e *CSVExporter) Export(trainingRows []models.StateRow) error {
	dir := filepath.Dir(e.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(e.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp export: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	if err := w.Write(csvHeader); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for i := range trainingRows {
		if err := w.Write(csvRecord(&trainingRows[i])); err != nil {
			tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush export: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close export: %w", err)
	}
	if err := os.Rename(tmp.Name(), e.path); err != nil {
		return fmt.Errorf("publish export: %w", err)
	}
	return nil
}

func csvRecord(r *models.StateRow) []string {
	return []string{
		r.MatchID, r.Venue, r.BattingTeam, r.BowlingTeam,
		strconv.Itoa(r.Innings),
		formatFloat(r.Ball),
		strconv.Itoa(r.LegalBallsBowled),
		strconv.Itoa(r.WicketsLeft),
		strconv.Itoa(r.BallsLeft),
		strconv.Itoa(r.CurrentScore),
		formatFloat(r.CRR),
		strconv.Itoa(r.RunsLast30),
		strconv.Itoa(r.WicketsLast30),
		formatFloat(r.SampleWeight),
		strconv.Itoa(r.FinalScore),
	}
}

// formatFloat uses the shortest round-tripping representation so the
// file is stable across exports.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
