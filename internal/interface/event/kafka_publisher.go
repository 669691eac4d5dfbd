package event

import (
	"context"
	"encoding/json"

	"airdata-service/internal/domain/entity"
	"airdata-service/internal/domain/repository"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher implements EventPublisher over a kafka topic
type KafkaPublisher struct {
	writer *kafka.Writer
}

// NewKafkaPublisher creates a publisher writing to the given topic
func NewKafkaPublisher(brokers []string, topic string) repository.EventPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		MaxAttempts:  3,
		Logger:       kafka.LoggerFunc(func(msg string, args ...any) {}),
	}

	return &KafkaPublisher{
		writer: writer,
	}
}

// Publish writes one event, keyed by the entity id
func (p *KafkaPublisher) Publish(ctx context.Context, event entity.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Key),
		Value: value,
	})
}

// Close flushes and closes the underlying writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// NoopPublisher is used when no brokers are configured
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event
func NewNoopPublisher() repository.EventPublisher {
	return &NoopPublisher{}
}

// Publish drops the event
func (p *NoopPublisher) Publish(ctx context.Context, event entity.Event) error {
	return nil
}

// Close is a no-op
func (p *NoopPublisher) Close() error {
	return nil
}
