package payments

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/pkg/logger"

	"go.uber.org/zap"
)

// MockLedger stands in for Mercado Pago in local runs. Pix and boleto charges
// stay pending until Approve is called; card charges are approved unless the
// token contains "reject".
type MockLedger struct {
	mu        sync.Mutex
	now       func() time.Time
	seq       int64
	payments  map[string]entities.GatewayPayment
	byKey     map[string]string
	customers map[string]entities.GatewayCustomer
	cards     map[string][]entities.SavedCard
}

func NewMockLedger(now func() time.Time) *MockLedger {
	if now == nil {
		now = time.Now
	}
	return &MockLedger{
		now:       now,
		seq:       now().UTC().UnixNano() / int64(time.Millisecond),
		payments:  map[string]entities.GatewayPayment{},
		byKey:     map[string]string{},
		customers: map[string]entities.GatewayCustomer{},
		cards:     map[string][]entities.SavedCard{},
	}
}

func (m *MockLedger) nextID() string {
	m.seq++
	return fmt.Sprintf("%d", m.seq)
}

func (m *MockLedger) createPayment(req entities.PaymentRequest, body wirePaymentRequest) entities.GatewayPayment {
	m.mu.Lock()
	defer m.mu.Unlock()

	if id, ok := m.byKey[req.IdempotencyKey]; ok && req.IdempotencyKey != "" {
		logger.Info("[payment][gateway] mock replay for idempotency key", zap.String("key", req.IdempotencyKey))
		return m.payments[id]
	}

	now := m.now().UTC()
	p := entities.GatewayPayment{
		ID:                m.nextID(),
		Status:            entities.GatewayStatusPending,
		StatusDetail:      "pending_waiting_transfer",
		ExternalReference: req.OrderID,
		PaymentMethodID:   body.PaymentMethodID,
		Amount:            req.Amount,
		DateCreated:       now,
	}
	switch req.Method {
	case entities.PaymentMethodPix:
		p.PaymentTypeID = "bank_transfer"
		p.QRCode = "00020126mock" + p.ID
		p.QRCodeBase64 = "bW9jay1xci1" + p.ID
		p.TicketURL = "https://mock.mercadopago.local/pix/" + p.ID
	case entities.PaymentMethodBoleto:
		p.PaymentTypeID = "ticket"
		p.StatusDetail = "pending_waiting_payment"
		p.Barcode = "23790000000000000000000000000000000000" + p.ID
		p.TicketURL = "https://mock.mercadopago.local/boleto/" + p.ID
	case entities.PaymentMethodCard:
		p.PaymentTypeID = "credit_card"
		if strings.Contains(strings.ToLower(req.Card.Token), "reject") {
			p.Status = entities.GatewayStatusRejected
			p.StatusDetail = "cc_rejected_other_reason"
		} else {
			p.Status = entities.GatewayStatusApproved
			p.StatusDetail = "accredited"
			p.DateApproved = &now
		}
	}

	m.payments[p.ID] = p
	if req.IdempotencyKey != "" {
		m.byKey[req.IdempotencyKey] = p.ID
	}
	logger.Info("[payment][gateway] mock create success",
		zap.String("provider_payment_id", p.ID),
		zap.String("provider_status", p.Status),
	)
	return p
}

// Approve marks a pending mock payment as approved, as a buyer paying the pix
// code or the boleto would.
func (m *MockLedger) Approve(paymentID string) (entities.GatewayPayment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.payments[paymentID]
	if !ok {
		return entities.GatewayPayment{}, entities.NewNotFoundError("payment", paymentID)
	}
	if p.Status != entities.GatewayStatusApproved {
		now := m.now().UTC()
		p.Status = entities.GatewayStatusApproved
		p.StatusDetail = "accredited"
		p.DateApproved = &now
		m.payments[paymentID] = p
	}
	return p, nil
}

func (m *MockLedger) getPayment(id string) entities.GatewayPayment {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.payments[id]
}

func (m *MockLedger) searchPayments(externalReference string) []entities.GatewayPayment {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []entities.GatewayPayment
	for _, p := range m.payments {
		if p.ExternalReference == externalReference {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateCreated.After(out[j].DateCreated) })
	return out
}

func (m *MockLedger) searchCustomer(email string) entities.GatewayCustomer {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.customers[strings.ToLower(email)]
}

func (m *MockLedger) createCustomer(payer entities.Payer) entities.GatewayCustomer {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := strings.ToLower(payer.Email)
	if c, ok := m.customers[key]; ok {
		return c
	}
	c := entities.GatewayCustomer{ID: "cus-" + m.nextID(), Email: payer.Email}
	m.customers[key] = c
	return c
}

func (m *MockLedger) saveCard(customerID, token string) (entities.SavedCard, error) {
	if token == "" {
		return entities.SavedCard{}, errors.New(`{"status":400,"error":"bad_request","message":"token is required"}`)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	last4 := token
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	exp := m.now().UTC().AddDate(3, 0, 0)
	card := entities.SavedCard{
		ID:              "card-" + m.nextID(),
		LastFourDigits:  last4,
		PaymentMethodID: "visa",
		ExpirationMonth: int(exp.Month()),
		ExpirationYear:  exp.Year(),
	}
	m.cards[customerID] = append(m.cards[customerID], card)
	return card, nil
}

func (m *MockLedger) listCards(customerID string) []entities.SavedCard {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]entities.SavedCard(nil), m.cards[customerID]...)
}

func (m *MockLedger) deleteCard(customerID, cardID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cards := m.cards[customerID]
	for i, c := range cards {
		if c.ID == cardID {
			m.cards[customerID] = append(cards[:i:i], cards[i+1:]...)
			return nil
		}
	}
	return entities.NewNotFoundError("card", cardID)
}
