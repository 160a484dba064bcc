package entities

import (
	"strings"
	"time"
	"unicode"
)

// OrderStatus is the lifecycle state of an order.
//
//	PENDING -> PAID -> EXCHANGE_REQUESTED -> EXCHANGED | PAID
//	PENDING -> CANCELED | EXPIRED
type OrderStatus string

const (
	OrderStatusPending           OrderStatus = "PENDING"
	OrderStatusPaid              OrderStatus = "PAID"
	OrderStatusCanceled          OrderStatus = "CANCELED"
	OrderStatusExpired           OrderStatus = "EXPIRED"
	OrderStatusExchangeRequested OrderStatus = "EXCHANGE_REQUESTED"
	OrderStatusExchanged         OrderStatus = "EXCHANGED"
)

// DefaultHoldWindow is how long a PENDING order keeps its stock reserved.
const DefaultHoldWindow = 30 * time.Minute

var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:           {OrderStatusPaid, OrderStatusCanceled, OrderStatusExpired},
	OrderStatusPaid:              {OrderStatusExchangeRequested},
	OrderStatusExchangeRequested: {OrderStatusExchanged, OrderStatusPaid},
}

func (s OrderStatus) String() string { return string(s) }

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusCanceled, OrderStatusExpired,
		OrderStatusExchangeRequested, OrderStatusExchanged:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// HasBeenPaid reports whether the order already went through PAID.
func (s OrderStatus) HasBeenPaid() bool {
	switch s {
	case OrderStatusPaid, OrderStatusExchangeRequested, OrderStatusExchanged:
		return true
	}
	return false
}

// PaymentMethod is the instrument chosen at checkout.
type PaymentMethod string

const (
	PaymentMethodPix    PaymentMethod = "pix"
	PaymentMethodBoleto PaymentMethod = "boleto"
	PaymentMethodCard   PaymentMethod = "credit_card"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodBoleto, PaymentMethodCard:
		return true
	}
	return false
}

// Address is the shipping address copied into the order at creation time.
type Address struct {
	Zip          string `json:"zip"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
}

// NormalizeZip keeps only the digits of a postal code.
func NormalizeZip(zip string) string {
	var b strings.Builder
	for _, r := range zip {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ZipPrefix returns the first two digits of a postal code, or "" when too short.
func ZipPrefix(zip string) string {
	z := NormalizeZip(zip)
	if len(z) < 2 {
		return ""
	}
	return z[:2]
}

// OrderLine is an immutable snapshot of one purchased stock line.
type OrderLine struct {
	StockLineID string `json:"stock_line_id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	UnitPrice   Money  `json:"unit_price"`
	Size        string `json:"size,omitempty"`
	Color       string `json:"color,omitempty"`
	Quantity    int    `json:"quantity"`
}

func (l OrderLine) Total() Money {
	return l.UnitPrice.Times(l.Quantity)
}

// Order is the central aggregate.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI user_id-index: user_id
//   - GSI status-index: status + expires_at_epoch
//
// Total is computed once at creation and never recomputed from the catalog.
type Order struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	Address       Address       `json:"address"`
	Status        OrderStatus   `json:"status"`
	Lines         []OrderLine   `json:"lines"`
	Subtotal      Money         `json:"subtotal"`
	Freight       Money         `json:"freight"`
	Discount      Money         `json:"discount"`
	Fee           Money         `json:"fee"`
	Total         Money         `json:"total"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	Installments  int           `json:"installments,omitempty"`
	PaymentID     string        `json:"payment_id,omitempty"`
	PaymentType   string        `json:"payment_type,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	ExpiresAt     time.Time     `json:"expires_at"`
	PaidAt        *time.Time    `json:"paid_at,omitempty"`
}

func (o Order) IsOwnedBy(userID string) bool {
	return userID != "" && o.UserID == userID
}

// Reservations sums the requested quantity per stock line.
func (o Order) Reservations() map[string]int {
	out := make(map[string]int, len(o.Lines))
	for _, l := range o.Lines {
		out[l.StockLineID] += l.Quantity
	}
	return out
}

// ConfirmPaid moves a PENDING order to PAID.
//
// It returns changed=false without error when the order was already paid, so
// repeated confirmations from webhook and polling converge. CANCELED and
// EXPIRED orders are never revived; ErrLatePayment is returned instead.
func (o *Order) ConfirmPaid(paymentID, paymentType string, now time.Time) (bool, error) {
	switch {
	case o.Status.HasBeenPaid():
		return false, nil
	case o.Status == OrderStatusCanceled || o.Status == OrderStatusExpired:
		return false, &DomainError{Kind: ErrLatePayment, Entity: "order", ID: o.ID, Reason: string(o.Status)}
	case o.Status != OrderStatusPending:
		return false, NewInvalidTransitionError("order", o.ID, o.Status, OrderStatusPaid)
	}

	paidAt := now.UTC()
	o.Status = OrderStatusPaid
	o.PaymentID = paymentID
	if paymentType != "" {
		o.PaymentType = paymentType
	}
	o.PaidAt = &paidAt
	o.UpdatedAt = paidAt
	return true, nil
}

func (o *Order) Cancel(now time.Time) error {
	return o.moveTo(OrderStatusCanceled, now)
}

// Expire lapses a PENDING order whose hold window is over.
func (o *Order) Expire(now time.Time) error {
	if o.Status == OrderStatusPending && now.Before(o.ExpiresAt) {
		return &DomainError{Kind: ErrInvalidTransition, Entity: "order", ID: o.ID, Reason: "hold window still open"}
	}
	return o.moveTo(OrderStatusExpired, now)
}

func (o *Order) RequestExchange(now time.Time) error {
	return o.moveTo(OrderStatusExchangeRequested, now)
}

// ResolveExchange closes the exchange sub-state: EXCHANGED on approval, back to PAID otherwise.
func (o *Order) ResolveExchange(approve bool, now time.Time) error {
	if o.Status != OrderStatusExchangeRequested {
		next := OrderStatusPaid
		if approve {
			next = OrderStatusExchanged
		}
		return NewInvalidTransitionError("order", o.ID, o.Status, next)
	}
	if approve {
		return o.moveTo(OrderStatusExchanged, now)
	}
	return o.moveTo(OrderStatusPaid, now)
}

// AttachPayment records the gateway payment created for this order.
func (o *Order) AttachPayment(paymentID, paymentType string) {
	o.PaymentID = paymentID
	o.PaymentType = paymentType
}

func (o *Order) moveTo(next OrderStatus, now time.Time) error {
	if !o.Status.CanTransitionTo(next) {
		return NewInvalidTransitionError("order", o.ID, o.Status, next)
	}
	o.Status = next
	o.UpdatedAt = now.UTC()
	return nil
}
