package events

import (
	"context"
	"encoding/json"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const DefaultTopic = "storefront.orders"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes order events keyed by order id, so all events of one
// order land on the same partition in commit order.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
}

var _ interfaces.IEventPublisher = (*KafkaPublisher)(nil)

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	if topic == "" {
		topic = DefaultTopic
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		WriteTimeout: 10 * time.Second,
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaPublisher{writer: writer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event entities.OrderEvent) error {
	msg, err := buildMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Error("[events][kafka] publish failed",
			zap.String("event_type", string(event.Type)),
			zap.String("order_id", event.OrderID),
			zap.Error(err),
		)
		return err
	}
	logger.Debug("[events][kafka] event published",
		zap.String("event_type", string(event.Type)),
		zap.String("order_id", event.OrderID),
	)
	return nil
}

func (p *KafkaPublisher) Close() error {
	logger.Info("[events][kafka] closing publisher", zap.String("topic", p.topic))
	return p.writer.Close()
}

func buildMessage(event entities.OrderEvent) (kafka.Message, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(event.OrderID),
		Value: body,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "event_id", Value: []byte(uuid.NewString())},
		},
	}, nil
}

// LogPublisher writes events to the application log. It is the default when
// no brokers are configured.
type LogPublisher struct{}

var _ interfaces.IEventPublisher = LogPublisher{}

func (LogPublisher) Publish(_ context.Context, event entities.OrderEvent) error {
	logger.Info("[events][log] "+string(event.Type),
		zap.String("order_id", event.OrderID),
		zap.String("status", string(event.Status)),
		zap.String("payment_id", event.PaymentID),
		zap.String("exchange_id", event.ExchangeID),
		zap.String("detail", event.Detail),
		zap.Time("occurred_at", event.OccurredAt),
	)
	return nil
}
