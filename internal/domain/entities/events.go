package entities

import "time"

type EventType string

const (
	EventOrderCreated           EventType = "order.created"
	EventOrderPaid              EventType = "order.paid"
	EventOrderCanceled          EventType = "order.canceled"
	EventOrderExpired           EventType = "order.expired"
	EventOrderExchangeRequested EventType = "order.exchange_requested"
	EventOrderExchanged         EventType = "order.exchanged"
	EventOrderExchangeRejected  EventType = "order.exchange_rejected"
	EventPaymentAnomaly         EventType = "payment.anomaly"
)

// OrderEvent is published after a committed lifecycle change.
type OrderEvent struct {
	Type       EventType   `json:"type"`
	OrderID    string      `json:"order_id"`
	UserID     string      `json:"user_id,omitempty"`
	Status     OrderStatus `json:"status"`
	PaymentID  string      `json:"payment_id,omitempty"`
	ExchangeID string      `json:"exchange_id,omitempty"`
	Total      Money       `json:"total,omitempty"`
	Detail     string      `json:"detail,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// EventForTransition maps a committed status change to its event type.
func EventForTransition(from, to OrderStatus) (EventType, bool) {
	switch {
	case to == OrderStatusPaid && from == OrderStatusExchangeRequested:
		return EventOrderExchangeRejected, true
	case to == OrderStatusPaid:
		return EventOrderPaid, true
	case to == OrderStatusCanceled:
		return EventOrderCanceled, true
	case to == OrderStatusExpired:
		return EventOrderExpired, true
	case to == OrderStatusExchangeRequested:
		return EventOrderExchangeRequested, true
	case to == OrderStatusExchanged:
		return EventOrderExchanged, true
	}
	return "", false
}
