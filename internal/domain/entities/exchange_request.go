package entities

import "time"

type ExchangeStatus string

const (
	ExchangeStatusPending  ExchangeStatus = "PENDING"
	ExchangeStatusApproved ExchangeStatus = "APPROVED"
	ExchangeStatusRejected ExchangeStatus = "REJECTED"
)

func (s ExchangeStatus) String() string { return string(s) }

func (s ExchangeStatus) Valid() bool {
	switch s {
	case ExchangeStatusPending, ExchangeStatusApproved, ExchangeStatusRejected:
		return true
	}
	return false
}

// ExchangeKind distinguishes a size/color exchange from a plain return.
type ExchangeKind string

const (
	ExchangeKindExchange ExchangeKind = "exchange"
	ExchangeKindReturn   ExchangeKind = "return"
)

func (k ExchangeKind) Valid() bool {
	return k == ExchangeKindExchange || k == ExchangeKindReturn
}

// ExchangeRequest is opened by the buyer of a PAID order and resolved by staff.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI order_id-index: order_id
//   - GSI user_id-index: user_id
type ExchangeRequest struct {
	ID         string         `json:"id"`
	OrderID    string         `json:"order_id"`
	UserID     string         `json:"user_id"`
	Kind       ExchangeKind   `json:"kind"`
	Reason     string         `json:"reason"`
	Evidence   []string       `json:"evidence,omitempty"`
	Status     ExchangeStatus `json:"status"`
	AdminNotes string         `json:"admin_notes,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	ResolvedAt *time.Time     `json:"resolved_at,omitempty"`
}

func (e *ExchangeRequest) Resolve(approve bool, notes string, now time.Time) error {
	next := ExchangeStatusRejected
	if approve {
		next = ExchangeStatusApproved
	}
	if e.Status != ExchangeStatusPending {
		return NewInvalidTransitionError("exchange_request", e.ID, e.Status, next)
	}
	resolvedAt := now.UTC()
	e.Status = next
	e.AdminNotes = notes
	e.ResolvedAt = &resolvedAt
	return nil
}
