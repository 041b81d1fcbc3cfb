package producer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/advancia-platform/credential-lifecycle/internal/audit/domain"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestNewKafkaProducer_Disabled(t *testing.T) {
	if p := NewKafkaProducer(nil, "audit"); p != nil {
		t.Error("no brokers: want nil producer")
	}
	if p := NewKafkaProducer([]string{"localhost:9092"}, ""); p != nil {
		t.Error("no topic: want nil producer")
	}
	var p *KafkaProducer
	if err := p.Write(context.Background(), &domain.Event{}); err != nil {
		t.Errorf("nil producer Write: %v", err)
	}
	if err := p.Close(); err != nil {
		t.Errorf("nil producer Close: %v", err)
	}
}

func TestNewKafkaProducer_Configured(t *testing.T) {
	p := NewKafkaProducer([]string{"localhost:9092"}, "session-audit")
	if p == nil || p.Topic() != "session-audit" {
		t.Fatalf("got %+v", p)
	}
	_ = p.Close()
}

func TestKafkaProducer_Write(t *testing.T) {
	fw := &fakeWriter{}
	p := &KafkaProducer{writer: fw, topic: "audit"}
	ts := time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC)
	err := p.Write(context.Background(), &domain.Event{
		ID:          "e1",
		PrincipalID: "p1",
		SessionID:   "s1",
		Action:      domain.ActionSessionEvicted,
		Outcome:     domain.OutcomeSuccess,
		Timestamp:   ts,
		Detail:      "concurrency_limit",
	})
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(fw.msgs) != 1 {
		t.Fatalf("expected 1 message, got %d", len(fw.msgs))
	}
	m := fw.msgs[0]
	if string(m.Key) != "p1" {
		t.Errorf("key = %q, want principal id", m.Key)
	}
	var got message
	if err := json.Unmarshal(m.Value, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Action != "session_evicted" || got.SessionID != "s1" || !got.Timestamp.Equal(ts) || got.Detail != "concurrency_limit" {
		t.Errorf("payload: %+v", got)
	}

	if err := p.Close(); err != nil || !fw.closed {
		t.Errorf("Close: err=%v closed=%v", err, fw.closed)
	}
}

func TestKafkaProducer_WriteError(t *testing.T) {
	boom := errors.New("leader not available")
	p := &KafkaProducer{writer: &fakeWriter{err: boom}, topic: "audit"}
	if err := p.Write(context.Background(), &domain.Event{PrincipalID: "p1"}); !errors.Is(err, boom) {
		t.Errorf("want broker error, got %v", err)
	}
}
