package pkg

import (
	"context"

	"github.com/segmentio/kafka-go"
)

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// EventProducer publishes membership lifecycle events. A nil producer is
// valid and drops everything, so the stream can stay unconfigured.
type EventProducer struct {
	writer *kafka.Writer
}

func NewEventProducer(cfg KafkaConfig) *EventProducer {
	if len(cfg.Brokers) == 0 {
		return nil
	}
	w := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &EventProducer{writer: w}
}

func (p *EventProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

// Send publishes one event keyed for per-community ordering.
func (p *EventProducer) Send(ctx context.Context, key string, value []byte) error {
	if p == nil || p.writer == nil {
		return nil
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: value,
	}
	return p.writer.WriteMessages(ctx, msg)
}
