package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/Shopify/sarama"
)

// Type names a domain event.
type Type string

const (
	TypeOrderPlaced Type = "order_placed"
	TypeLedgerEntry Type = "ledger_entry"
)

// Event is a domain occurrence published for downstream consumers.
type Event struct {
	Type      Type      `json:"type"`
	SessionID string    `json:"session_id"`
	Timestamp time.Time `json:"timestamp"`
	Payload   any       `json:"payload"`
}

// Publisher emits domain events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// KafkaPublisher writes events as JSON to a Kafka topic keyed by session id.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaPublisher wraps an existing producer.
func NewKafkaPublisher(producer sarama.SyncProducer, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, logger: logger}
}

// DialKafka connects a synchronous producer to brokers.
func DialKafka(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}
	return producer, nil
}

// Publish sends event and waits for broker acknowledgement.
func (p *KafkaPublisher) Publish(ctx context.Context, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.SessionID),
		Value: sarama.ByteEncoder(data),
	})
	if err != nil {
		return fmt.Errorf("send %s event: %w", event.Type, err)
	}
	p.logger.Debug("event published",
		slog.String("type", string(event.Type)),
		slog.Int("partition", int(partition)),
		slog.Int64("offset", offset))
	return nil
}

// Close shuts the producer down.
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// NoopPublisher discards events when no broker is configured.
type NoopPublisher struct{}

// Publish does nothing.
func (NoopPublisher) Publish(context.Context, Event) error { return nil }

// Close does nothing.
func (NoopPublisher) Close() error { return nil }
