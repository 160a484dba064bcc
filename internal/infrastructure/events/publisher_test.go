package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"storefront_orders/internal/domain/entities"

	"github.com/segmentio/kafka-go"
)

type recordingWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func TestKafkaPublisher(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	event := entities.OrderEvent{Type: entities.EventOrderPaid, OrderID: "o-1", Status: entities.OrderStatusPaid, PaymentID: "p-1", OccurredAt: at}

	t.Run("keys by order id", func(t *testing.T) {
		w := &recordingWriter{}
		p := &KafkaPublisher{writer: w, topic: DefaultTopic}

		if err := p.Publish(context.Background(), event); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(w.msgs) != 1 {
			t.Fatalf("expected one message, got %d", len(w.msgs))
		}
		msg := w.msgs[0]
		if string(msg.Key) != "o-1" || string(msg.Headers[0].Value) != "order.paid" || !msg.Time.Equal(at) {
			t.Fatalf("unexpected message: %+v", msg)
		}
		var decoded entities.OrderEvent
		if err := json.Unmarshal(msg.Value, &decoded); err != nil || decoded.PaymentID != "p-1" {
			t.Fatalf("unexpected payload %s (%v)", msg.Value, err)
		}
	})

	t.Run("surfaces writer errors", func(t *testing.T) {
		boom := errors.New("broker down")
		p := &KafkaPublisher{writer: &recordingWriter{err: boom}, topic: DefaultTopic}
		if err := p.Publish(context.Background(), event); !errors.Is(err, boom) {
			t.Fatalf("expected broker error, got %v", err)
		}
	})
}

func TestLogPublisher(t *testing.T) {
	if err := (LogPublisher{}).Publish(context.Background(), entities.OrderEvent{Type: entities.EventPaymentAnomaly, OrderID: "o-1"}); err != nil {
		t.Fatalf("log publisher must not fail: %v", err)
	}
}
