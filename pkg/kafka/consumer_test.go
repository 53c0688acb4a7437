package kafka

import (
	"context"
	"testing"
	"time"
)

type nopHandler struct{ topic string }

func (h nopHandler) Topic() string                                  { return h.topic }
func (h nopHandler) Handle(ctx context.Context, value []byte) error { return nil }

func TestConsumerStopWithoutStart(t *testing.T) {
	c, err := NewConsumer(WithConsumerBrokers([]string{"localhost:9092"}))
	if err != nil {
		t.Fatalf("NewConsumer: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := c.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}
}

func TestConsumerStopAfterStart(t *testing.T) {
	// No broker listens on the address; the reader goroutine spins on
	// dial errors until Stop closes it. Stop must wait for the reader to
	// exit before closing the message channel, or a reader mid-send
	// panics on the closed channel.
	c, err := NewConsumer(
		WithConsumerBrokers([]string{"127.0.0.1:1"}),
		WithConsumerWorkers(2),
	)
	if err != nil {
		t.Fatalf("NewConsumer: %v", err)
	}
	c.RegisterHandler(nopHandler{topic: "ball-events"})

	if err := c.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Stop(ctx); err != nil {
		t.Fatalf("Stop: %v", err)
	}

	// Stop is idempotent.
	if err := c.Stop(ctx); err != nil {
		t.Fatalf("second Stop: %v", err)
	}
}
