//go:build wireinject
// +build wireinject

package di

import (
	"CricPull/pkg/config"
	"CricPull/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires the serving process: HTTP API, prediction use
// case, optional Kafka drain consumer. Wire generates the
// implementation.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaConsumer,

		// Repositories
		ProvideEventStore,
		ProvideEventsHandler,

		// Prediction stack
		ProvideMapping,
		ProvideCache,
		ProvideScorePredictor,
		ProvidePredictor,
		ProvideHTTPHandler,

		ProvideApp,
	)
	return &server.App{}, nil
}

// InitializePipeline wires the batch pipeline: ingestion and feature
// synthesis over the configured backend.
func InitializePipeline(cfg *config.Config) (*server.Pipeline, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvidePublisher,

		// Repositories
		ProvideEventStore,
		ProvideTrainingStore,
		ProvideCSVExporter,

		// Stages
		ProvideMapping,
		ProvideParser,
		ProvideEventProcessor,
		ProvideMatchIngestor,
		ProvideFeatureBuilder,

		ProvidePipeline,
	)
	return &server.Pipeline{}, nil
}
