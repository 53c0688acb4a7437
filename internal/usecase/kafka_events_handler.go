package usecase

import (
	"context"
	"encoding/json"
	"time"

	"CricPull/internal/domain/models"
	domrepo "CricPull/internal/domain/repository"
	pkgkafka "CricPull/pkg/kafka"
)

// KafkaEventsHandler drains the ball-events topic into the event store.
// It runs in the serving process when the pipeline backend is kafka.
type KafkaEventsHandler struct {
	topic   string
	storage domrepo.EventStore
	metrics domrepo.Metrics
}

func NewKafkaEventsHandler(topic string, storage domrepo.EventStore, metrics domrepo.Metrics) *KafkaEventsHandler {
	return &KafkaEventsHandler{topic: topic, storage: storage, metrics: metrics}
}

func (h *KafkaEventsHandler) Topic() string { return h.topic }

func (h *KafkaEventsHandler) Handle(ctx context.Context, b []byte) error {
	var e models.BallEvent
	if err := json.Unmarshal(b, &e); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}

	start := time.Now()
	if err := h.storage.Store(ctx, &e); err != nil {
		h.metrics.RecordError("consumer_store")
		return err
	}
	h.metrics.RecordEventsWritten("clickhouse", 1)
	h.metrics.RecordLatency("consumer_insert", time.Since(start).Seconds())
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaEventsHandler)(nil)
