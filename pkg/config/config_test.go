package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleConfig = `environment: development
server:
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 5s
pipeline:
  raw_dir: data/raw
  backend: clickhouse
clickhouse:
  host: localhost
  port: 9000
  database: cricpull
model:
  service_url: http://localhost:8000
  timeout: 3s
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pipeline.Workers != 4 {
		t.Fatalf("workers default %d", cfg.Pipeline.Workers)
	}
	if cfg.Pipeline.BatchSize != 2000 {
		t.Fatalf("batch size default %d", cfg.Pipeline.BatchSize)
	}
	if cfg.Pipeline.TrainingCSV != "data/processed/train_data.csv" {
		t.Fatalf("csv default %q", cfg.Pipeline.TrainingCSV)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing environment", "pipeline:\n  raw_dir: data/raw\n"},
		{"missing raw dir", "environment: dev\n"},
		{"bad backend", "environment: dev\npipeline:\n  raw_dir: data/raw\n  backend: postgres\n"},
	}
	for _, tt := range tests {
		if _, err := Load(writeConfig(t, tt.body)); err == nil {
			t.Fatalf("%s: accepted", tt.name)
		}
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	t.Setenv("BACKEND", "kafka")
	t.Setenv("RAW_DIR", "/srv/matches")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("PIPELINE_WORKERS", "8")

	cfg, err := LoadWithEnv(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.Pipeline.Backend != "kafka" || cfg.Pipeline.RawDir != "/srv/matches" {
		t.Fatalf("env overrides not applied: %+v", cfg.Pipeline)
	}
	if len(cfg.Kafka.Brokers) != 2 || cfg.Kafka.Brokers[1] != "k2:9092" {
		t.Fatalf("brokers %v", cfg.Kafka.Brokers)
	}
	if cfg.Pipeline.Workers != 8 {
		t.Fatalf("workers %d", cfg.Pipeline.Workers)
	}
}
