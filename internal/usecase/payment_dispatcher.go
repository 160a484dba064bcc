package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/infrastructure/metrics"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// CheckoutPayment is the buyer-supplied part of a payment.
type CheckoutPayment struct {
	Payer entities.Payer
	Card  entities.CardDetails
}

// DispatchResult is the artifact the buyer needs plus the order as it stands
// after dispatch. A card approved synchronously leaves the order PAID.
type DispatchResult struct {
	Artifact entities.PaymentArtifact
	Order    entities.Order
}

type DispatcherConfig struct {
	Timeout         time.Duration
	NotificationURL string
}

// PaymentDispatcher submits the instrument-specific charge of an order.
//
// Every charge carries an idempotency key derived from the order, so retrying
// a dispatch for the same order and instrument never charges twice.
type PaymentDispatcher struct {
	gateway   interfaces.IPaymentGateway
	orders    interfaces.IOrderRepository
	customers *CustomerResolver
	machine   *OrderStateMachine
	cfg       DispatcherConfig
}

func NewPaymentDispatcher(
	gateway interfaces.IPaymentGateway,
	orders interfaces.IOrderRepository,
	customers *CustomerResolver,
	machine *OrderStateMachine,
	cfg DispatcherConfig,
) *PaymentDispatcher {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &PaymentDispatcher{gateway: gateway, orders: orders, customers: customers, machine: machine, cfg: cfg}
}

// Dispatch charges order with its chosen instrument.
func (d *PaymentDispatcher) Dispatch(ctx context.Context, order entities.Order, payment CheckoutPayment) (result DispatchResult, err error) {
	ctx, span := startSpan(ctx, "PaymentDispatcher.Dispatch",
		attribute.String("order.id", order.ID), attribute.String("payment.method", string(order.PaymentMethod)))
	defer func() { endSpan(span, err) }()

	result.Order = order
	if d.gateway == nil {
		return result, entities.NewGatewayError("create payment", ErrPaymentGatewayNotConfigured)
	}

	req := entities.PaymentRequest{
		OrderID:         order.ID,
		Method:          order.PaymentMethod,
		Description:     fmt.Sprintf("Order %s", order.ID),
		Amount:          order.Total,
		Payer:           payment.Payer,
		NotificationURL: d.cfg.NotificationURL,
	}

	switch order.PaymentMethod {
	case entities.PaymentMethodPix:
		req.IdempotencyKey = order.ID + "-pix"
		req.ExpiresAt = order.ExpiresAt
	case entities.PaymentMethodBoleto:
		req.IdempotencyKey = order.ID + "-boleto"
		req.Address = order.Address
	case entities.PaymentMethodCard:
		if strings.TrimSpace(payment.Card.Token) == "" {
			return result, entities.NewValidationError("card.token is required")
		}
		customerID, err := d.customers.Resolve(ctx, order.UserID, payment.Payer)
		if err != nil {
			return result, err
		}
		req.CustomerID = customerID
		req.Card = payment.Card
		if req.Card.Installments <= 0 {
			req.Card.Installments = 1
		}
		req.IdempotencyKey = order.ID + "-" + tokenSuffix(payment.Card.Token)
	default:
		return result, entities.NewValidationError(fmt.Sprintf("unsupported payment method %q", order.PaymentMethod))
	}

	logger.Info("[payment][dispatch] submitting charge",
		zap.String("order_id", order.ID), zap.String("method", string(order.PaymentMethod)),
		zap.String("amount", order.Total.String()))

	gp, err := d.createPayment(ctx, req)
	if err != nil {
		logger.Error("[payment][dispatch] charge failed", zap.String("order_id", order.ID), zap.Error(err))
		return result, err
	}

	if err := d.orders.AttachPayment(ctx, order.ID, gp.ID, gp.PaymentTypeID); err != nil {
		logger.Warn("[payment][dispatch] attaching payment id failed",
			zap.String("order_id", order.ID), zap.String("payment_id", gp.ID), zap.Error(err))
	}
	result.Order.AttachPayment(gp.ID, gp.PaymentTypeID)
	result.Artifact = entities.ArtifactFromPayment(order.PaymentMethod, gp)

	logger.Info("[payment][dispatch] charge accepted",
		zap.String("order_id", order.ID), zap.String("payment_id", gp.ID), zap.String("status", gp.Status))

	if order.PaymentMethod == entities.PaymentMethodCard && gp.Approved() {
		paid, err := d.machine.ConfirmPaid(ctx, order.ID, gp.ID, gp.PaymentTypeID)
		if err != nil {
			// The webhook or a poll will converge the order later.
			logger.Error("[payment][dispatch] confirming approved card payment failed",
				zap.String("order_id", order.ID), zap.String("payment_id", gp.ID), zap.Error(err))
			return result, nil
		}
		metrics.Reconciliations.WithLabelValues("dispatch", "confirmed").Inc()
		result.Order = paid
	}
	return result, nil
}

// FetchArtifact re-reads the payment of order from the gateway.
func (d *PaymentDispatcher) FetchArtifact(ctx context.Context, order entities.Order) (entities.PaymentArtifact, error) {
	if d.gateway == nil {
		return entities.PaymentArtifact{}, entities.NewGatewayError("get payment", ErrPaymentGatewayNotConfigured)
	}
	if order.PaymentID == "" {
		return entities.PaymentArtifact{}, entities.NewNotFoundError("payment", order.ID)
	}
	gp, err := d.getPayment(ctx, order.PaymentID)
	if err != nil {
		return entities.PaymentArtifact{}, err
	}
	if gp.ID == "" {
		return entities.PaymentArtifact{}, entities.NewNotFoundError("payment", order.PaymentID)
	}
	return entities.ArtifactFromPayment(order.PaymentMethod, gp), nil
}

func (d *PaymentDispatcher) createPayment(ctx context.Context, req entities.PaymentRequest) (gp entities.GatewayPayment, err error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()
	defer func(start time.Time) { metrics.ObserveGateway("create_payment", start, err) }(time.Now())

	gp, err = d.gateway.CreatePayment(ctx, req)
	if err != nil {
		return entities.GatewayPayment{}, classifyGatewayError("create payment", err)
	}
	return gp, nil
}

func (d *PaymentDispatcher) getPayment(ctx context.Context, paymentID string) (gp entities.GatewayPayment, err error) {
	ctx, cancel := context.WithTimeout(ctx, d.cfg.Timeout)
	defer cancel()
	defer func(start time.Time) { metrics.ObserveGateway("get_payment", start, err) }(time.Now())

	gp, err = d.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return entities.GatewayPayment{}, classifyGatewayError("get payment", err)
	}
	return gp, nil
}

// tokenSuffix keeps the last eight characters of a card token. Tokens are
// single-use, so a new token means a new charge attempt.
func tokenSuffix(token string) string {
	token = strings.TrimSpace(token)
	if len(token) <= 8 {
		return token
	}
	return token[len(token)-8:]
}
