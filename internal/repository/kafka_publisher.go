package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"CricPull/internal/domain/models"
	domrepo "CricPull/internal/domain/repository"
	pkgkafka "CricPull/pkg/kafka"
)

// KafkaPublisher emits ball events to a Kafka topic, keyed by match id
// so one match stays on one partition in delivery order.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) domrepo.Publisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e *models.BallEvent) error {
	return p.PublishBatch(ctx, []*models.BallEvent{e})
}

func (p *KafkaPublisher) PublishBatch(ctx context.Context, events []*models.BallEvent) error {
	if len(events) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, 0, len(events))
	for _, e := range events {
		if e == nil || e.MatchID == "" {
			continue
		}
		b, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("encode ball event: %w", err)
		}
		msgs = append(msgs, pkgkafka.Message{Key: []byte(e.MatchID), Value: b})
	}
	if len(msgs) == 0 {
		return nil
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
