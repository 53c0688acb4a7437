package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"CricPull/internal/di"
	"CricPull/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	stage := flag.String("stage", "all", "pipeline stage: ingest, features, or all")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s backend=%s stage=%s raw_dir=%s",
		cfg.Environment, cfg.Pipeline.Backend, *stage, cfg.Pipeline.RawDir)

	pipeline, err := di.InitializePipeline(cfg)
	if err != nil {
		log.Fatalf("pipeline initialization failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := pipeline.Run(ctx, *stage); err != nil {
		log.Printf("pipeline error: %v", err)
		os.Exit(1)
	}
}
