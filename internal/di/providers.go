package di

import (
	"context"
	"fmt"
	"time"

	"CricPull/internal/domain/repository"
	domsvc "CricPull/internal/domain/service"
	"CricPull/internal/handler/api"
	"CricPull/internal/ingest"
	internalrepo "CricPull/internal/repository"
	"CricPull/internal/service/cache"
	svcpredict "CricPull/internal/services/predict"
	"CricPull/internal/usecase"
	pkgch "CricPull/pkg/clickhouse"
	"CricPull/pkg/config"
	xhttp "CricPull/pkg/http"
	pkgkafka "CricPull/pkg/kafka"
	applogger "CricPull/pkg/logger"
	"CricPull/pkg/metrics"
	"CricPull/pkg/server"
)

// ProvideLogger creates the application logger. Production environments
// log JSON, everything else gets the console writer.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	format := "console"
	level := "debug"
	if cfg.Environment == "production" {
		format = "json"
		level = "info"
	}
	return applogger.New(&applogger.Config{Level: level, Format: format, Output: "stdout"})
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient creates a ClickHouse client and ensures the
// database exists.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithAddr(cfg.ClickHouse.Host, cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithHTTP(cfg.ClickHouse.UseHTTP),
		pkgch.WithAsyncInsert(cfg.ClickHouse.AsyncInsert, cfg.ClickHouse.WaitForAsync),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
		pkgch.WithMaxExecutionTime(cfg.ClickHouse.MaxExecutionTime),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := client.EnsureDatabase(ctx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}
	return client, nil
}

// ProvideMapping loads the team/venue rename tables, falling back to the
// built-in defaults when no override file is configured.
func ProvideMapping(cfg *config.Config) (*ingest.Mapping, error) {
	if cfg.Pipeline.MappingFile == "" {
		return ingest.DefaultMapping(), nil
	}
	return ingest.LoadMapping(cfg.Pipeline.MappingFile)
}

// ProvideParser creates the raw match parser.
func ProvideParser(mapping *ingest.Mapping) *ingest.Parser {
	return ingest.NewParser(mapping)
}

// ProvideEventStore creates the ball-event store and its table.
func ProvideEventStore(chClient *pkgch.Client, l *applogger.Logger, cfg *config.Config) (repository.EventStore, error) {
	store := internalrepo.NewCHEventStore(chClient, cfg.Pipeline.BatchSize)
	if s, ok := store.(*internalrepo.CHEventStore); ok {
		s.SetLogger(l)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// ProvideTrainingStore creates the training-row store and its table.
func ProvideTrainingStore(chClient *pkgch.Client, l *applogger.Logger, cfg *config.Config) (repository.TrainingStore, error) {
	store := internalrepo.NewCHTrainingStore(chClient, cfg.Pipeline.BatchSize)
	if s, ok := store.(*internalrepo.CHTrainingStore); ok {
		s.SetLogger(l)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.Init(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// ProvidePublisher creates the Kafka publisher when the backend is
// kafka; otherwise nil, and the processor writes to ClickHouse directly.
func ProvidePublisher(cfg *config.Config) (repository.Publisher, error) {
	if cfg.Pipeline.Backend != "kafka" {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithProducerTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic), nil
}

// ProvideKafkaConsumer creates the drain consumer when the backend is
// kafka; otherwise nil.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	if cfg.Pipeline.Backend != "kafka" {
		return nil, nil
	}
	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideEventsHandler registers the handler draining the events topic
// into ClickHouse. Nil unless the backend is kafka.
func ProvideEventsHandler(store repository.EventStore, m repository.Metrics, cfg *config.Config) pkgkafka.MessageHandler {
	if cfg.Pipeline.Backend != "kafka" {
		return nil
	}
	return usecase.NewKafkaEventsHandler(cfg.Kafka.Topic, store, m)
}

// ProvideCache selects the prediction cache backend.
func ProvideCache(cfg *config.Config) cache.BytesCache {
	if cfg.Model.Redis.Enabled {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Model.Redis.Addr,
			Password: cfg.Model.Redis.Password,
			DB:       cfg.Model.Redis.DB,
		})
	}
	return cache.NewMemoryCache()
}

// ProvideScorePredictor creates the model service client.
func ProvideScorePredictor(cfg *config.Config) domsvc.ScorePredictor {
	return svcpredict.NewHTTPScorePredictor(cfg)
}

// ProvidePredictor creates the prediction use case.
func ProvidePredictor(
	mapping *ingest.Mapping,
	model domsvc.ScorePredictor,
	c cache.BytesCache,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.Predictor {
	ttl := cfg.Model.CacheTTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return usecase.NewPredictor(mapping, model, c, ttl, m, l)
}

// ProvideHTTPHandler assembles the Echo route handler.
func ProvideHTTPHandler(
	l *applogger.Logger,
	predictor *usecase.Predictor,
	events repository.EventStore,
) xhttp.Handler {
	live := api.NewLiveHandler(l, predictor)
	return api.NewPredictHandler(l, predictor, events, live)
}

// ProvideApp creates the serving application.
func ProvideApp(
	cfg *config.Config,
	l *applogger.Logger,
	handler xhttp.Handler,
	consumer *pkgkafka.Consumer,
	kh pkgkafka.MessageHandler,
	chClient *pkgch.Client,
) *server.App {
	return server.New(cfg, l, handler, consumer, kh, chClient)
}

// ProvideEventProcessor creates the backend router for parsed events.
func ProvideEventProcessor(
	pub repository.Publisher,
	store repository.EventStore,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.EventProcessor {
	return usecase.NewEventProcessor(pub, store, m, cfg.Pipeline.Backend)
}

// ProvideMatchIngestor creates the ingestion runner.
func ProvideMatchIngestor(
	parser *ingest.Parser,
	proc *usecase.EventProcessor,
	m repository.Metrics,
	l *applogger.Logger,
	cfg *config.Config,
) *usecase.MatchIngestor {
	return usecase.NewMatchIngestor(parser, proc, m, l, cfg.Pipeline.Workers)
}

// ProvideCSVExporter creates the training CSV writer.
func ProvideCSVExporter(cfg *config.Config) *internalrepo.CSVExporter {
	return internalrepo.NewCSVExporter(cfg.Pipeline.TrainingCSV)
}

// ProvideFeatureBuilder creates the synthesis runner.
func ProvideFeatureBuilder(
	events repository.EventStore,
	training repository.TrainingStore,
	exporter *internalrepo.CSVExporter,
	m repository.Metrics,
	l *applogger.Logger,
) *usecase.FeatureBuilder {
	return usecase.NewFeatureBuilder(events, training, exporter, m, l)
}

// ProvidePipeline creates the batch pipeline runner.
func ProvidePipeline(
	cfg *config.Config,
	l *applogger.Logger,
	ingestor *usecase.MatchIngestor,
	builder *usecase.FeatureBuilder,
	proc *usecase.EventProcessor,
) *server.Pipeline {
	p := server.NewPipeline(cfg, l, ingestor, builder)
	p.AddCloser(func() error {
		proc.Close()
		return nil
	})
	return p
}
