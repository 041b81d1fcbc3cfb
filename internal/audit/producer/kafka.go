// Package producer forwards audit events to a message broker.
package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
)

// messageWriter is the subset of *kafka.Writer the producer uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaProducer writes audit events as JSON to a Kafka topic, keyed by principal id so that
// one principal's events stay ordered within a partition.
type KafkaProducer struct {
	writer messageWriter
	topic  string
}

// message is the wire form of an audit event.
type message struct {
	ID          string    `json:"id"`
	PrincipalID string    `json:"principal_id"`
	SessionID   string    `json:"session_id,omitempty"`
	Action      string    `json:"action"`
	ActorIP     string    `json:"actor_ip,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	Outcome     string    `json:"outcome"`
	Detail      string    `json:"detail,omitempty"`
}

// NewKafkaProducer creates a producer for topic. It returns nil when brokers or topic are empty,
// so callers can pass the result straight to the dispatcher. Call Close when shutting down.
func NewKafkaProducer(brokers []string, topic string) *KafkaProducer {
	if len(brokers) == 0 || topic == "" {
		return nil
	}
	return &KafkaProducer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
		topic: topic,
	}
}

// Write serializes e and writes it to the topic. ctx bounds the write.
func (p *KafkaProducer) Write(ctx context.Context, e *domain.Event) error {
	if p == nil || p.writer == nil || e == nil {
		return nil
	}
	payload, err := json.Marshal(message{
		ID:          e.ID,
		PrincipalID: e.PrincipalID,
		SessionID:   e.SessionID,
		Action:      string(e.Action),
		ActorIP:     e.ActorIP,
		UserAgent:   e.UserAgent,
		Timestamp:   e.Timestamp.UTC(),
		Outcome:     string(e.Outcome),
		Detail:      e.Detail,
	})
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.PrincipalID),
		Value: payload,
		Time:  e.Timestamp,
	})
}

// Topic returns the destination topic.
func (p *KafkaProducer) Topic() string { return p.topic }

// Close closes the Kafka writer. Safe to call on a nil producer.
func (p *KafkaProducer) Close() error {
	if p == nil || p.writer == nil {
		return nil
	}
	return p.writer.Close()
}
