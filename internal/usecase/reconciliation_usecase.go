package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/infrastructure/metrics"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// ReconciliationOutcome says what a notification or poll did to the order.
type ReconciliationOutcome string

const (
	OutcomeIgnored     ReconciliationOutcome = "ignored"
	OutcomeDuplicate   ReconciliationOutcome = "duplicate"
	OutcomeUnresolved  ReconciliationOutcome = "unresolved"
	OutcomeNotApproved ReconciliationOutcome = "not_approved"
	OutcomeConfirmed   ReconciliationOutcome = "confirmed"
	OutcomeAnomaly     ReconciliationOutcome = "anomaly"
	OutcomeFailed      ReconciliationOutcome = "failed"
)

// IReconciliationUseCase converges order status with the gateway, either from
// a pushed notification or from a buyer-initiated poll.
type IReconciliationUseCase interface {
	HandleNotification(ctx context.Context, n entities.PaymentNotification) (ReconciliationOutcome, error)
	PollPaymentStatus(ctx context.Context, actor entities.Actor, orderID string) (entities.PaymentStatusView, error)
}

type ReconciliationUseCase struct {
	orders      interfaces.IOrderRepository
	gateway     interfaces.IPaymentGateway
	machine     *OrderStateMachine
	verifier    interfaces.INotificationVerifier
	deduper     interfaces.INotificationDeduper
	permissions interfaces.IPermissionChecker
	timeout     time.Duration
}

var _ IReconciliationUseCase = (*ReconciliationUseCase)(nil)

// NewReconciliationUseCase wires the listener. verifier and deduper are
// optional; without a verifier every notification is treated as advisory.
func NewReconciliationUseCase(
	orders interfaces.IOrderRepository,
	gateway interfaces.IPaymentGateway,
	machine *OrderStateMachine,
	verifier interfaces.INotificationVerifier,
	deduper interfaces.INotificationDeduper,
	permissions interfaces.IPermissionChecker,
	timeout time.Duration,
) *ReconciliationUseCase {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &ReconciliationUseCase{
		orders:      orders,
		gateway:     gateway,
		machine:     machine,
		verifier:    verifier,
		deduper:     deduper,
		permissions: permissions,
		timeout:     timeout,
	}
}

// HandleNotification processes one webhook delivery. Only a notification
// without a payment id is an error; gateway and store failures are logged and
// reported as OutcomeFailed so the provider is not asked to redeliver forever.
func (u *ReconciliationUseCase) HandleNotification(ctx context.Context, n entities.PaymentNotification) (outcome ReconciliationOutcome, err error) {
	ctx, span := startSpan(ctx, "ReconciliationUseCase.HandleNotification", attribute.String("payment.id", n.PaymentID))
	defer func() {
		span.SetAttributes(attribute.String("reconciliation.outcome", string(outcome)))
		endSpan(span, err)
		metrics.Reconciliations.WithLabelValues("webhook", string(outcome)).Inc()
	}()

	n.PaymentID = strings.TrimSpace(n.PaymentID)
	if n.PaymentID == "" {
		return OutcomeIgnored, entities.NewValidationError("notification has no payment id")
	}
	if n.Topic != "" && n.Topic != "payment" {
		logger.Debug("[payment][webhook] ignoring topic", zap.String("topic", n.Topic), zap.String("payment_id", n.PaymentID))
		return OutcomeIgnored, nil
	}

	if u.verifier != nil {
		if verr := u.verifier.Verify(n); verr != nil {
			logger.Warn("[payment][webhook] signature not verified, processing as advisory",
				zap.String("payment_id", n.PaymentID), zap.String("request_id", n.RequestID), zap.Error(verr))
		}
	}

	key := dedupeKey(n)
	if u.deduper != nil && key != "" {
		seen, derr := u.deduper.Seen(ctx, key)
		if derr != nil {
			logger.Warn("[payment][webhook] dedupe lookup failed", zap.String("key", key), zap.Error(derr))
		} else if seen {
			return OutcomeDuplicate, nil
		}
	}

	gp, gerr := u.getPayment(ctx, n.PaymentID)
	if gerr != nil {
		logger.Error("[payment][webhook] fetching payment failed", zap.String("payment_id", n.PaymentID), zap.Error(gerr))
		return OutcomeFailed, nil
	}

	outcome, _, cerr := u.reconcile(ctx, gp, "webhook")
	if cerr != nil {
		logger.Error("[payment][webhook] reconciliation failed", zap.String("payment_id", n.PaymentID), zap.Error(cerr))
		return OutcomeFailed, nil
	}

	if u.deduper != nil && key != "" {
		if rerr := u.deduper.Remember(ctx, key); rerr != nil {
			logger.Warn("[payment][webhook] dedupe write failed", zap.String("key", key), zap.Error(rerr))
		}
	}
	return outcome, nil
}

// PollPaymentStatus reports the payment state of an order, confirming it
// first when the gateway already approved the latest payment.
func (u *ReconciliationUseCase) PollPaymentStatus(ctx context.Context, actor entities.Actor, orderID string) (view entities.PaymentStatusView, err error) {
	ctx, span := startSpan(ctx, "ReconciliationUseCase.PollPaymentStatus", attribute.String("order.id", orderID))
	defer func() { endSpan(span, err) }()

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.PaymentStatusView{}, err
	}
	if order.ID == "" {
		return entities.PaymentStatusView{}, entities.NewNotFoundError("order", orderID)
	}
	if !order.IsOwnedBy(actor.UserID) &&
		!(actor.Authenticated() && u.permissions != nil && u.permissions.HasPermission(ctx, actor, entities.PermissionOrdersReadAll)) {
		return entities.PaymentStatusView{}, entities.NewForbiddenError("order", orderID)
	}

	view = statusView(order, entities.GatewayPayment{})
	if order.Status != entities.OrderStatusPending {
		return view, nil
	}

	payments, err := u.searchPayments(ctx, order.ID)
	if err != nil {
		// The order stays PENDING; the caller can poll again.
		logger.Warn("[payment][poll] gateway search failed", zap.String("order_id", order.ID), zap.Error(err))
		metrics.Reconciliations.WithLabelValues("poll", string(OutcomeFailed)).Inc()
		return view, nil
	}
	latest, ok := latestPayment(payments)
	if !ok {
		metrics.Reconciliations.WithLabelValues("poll", string(OutcomeUnresolved)).Inc()
		return view, nil
	}

	outcome, updated, err := u.reconcile(ctx, latest, "poll")
	metrics.Reconciliations.WithLabelValues("poll", string(outcome)).Inc()
	if err != nil {
		return entities.PaymentStatusView{}, err
	}
	if updated.ID != "" {
		order = updated
	}
	return statusView(order, latest), nil
}

// reconcile applies the approved-then-confirm rule to one gateway payment.
// The returned order is zero unless a confirmation happened.
func (u *ReconciliationUseCase) reconcile(ctx context.Context, gp entities.GatewayPayment, source string) (ReconciliationOutcome, entities.Order, error) {
	if gp.ID == "" || strings.TrimSpace(gp.ExternalReference) == "" {
		logger.Info("[payment][reconcile] payment not resolvable to an order",
			zap.String("source", source), zap.String("payment_id", gp.ID))
		return OutcomeUnresolved, entities.Order{}, nil
	}
	if !gp.Approved() {
		logger.Info("[payment][reconcile] payment not approved yet",
			zap.String("source", source), zap.String("payment_id", gp.ID),
			zap.String("order_id", gp.ExternalReference), zap.String("status", gp.Status))
		return OutcomeNotApproved, entities.Order{}, nil
	}

	order, err := u.machine.ConfirmPaid(ctx, gp.ExternalReference, gp.ID, gp.PaymentTypeID)
	switch {
	case err == nil:
		return OutcomeConfirmed, order, nil
	case errors.Is(err, entities.ErrLatePayment):
		logger.Error("[payment][reconcile] approved payment for lapsed order",
			zap.String("source", source), zap.String("order_id", gp.ExternalReference),
			zap.String("payment_id", gp.ID), zap.String("amount", gp.Amount.String()))
		u.machine.PublishAnomaly(ctx, entities.OrderEvent{
			OrderID:   gp.ExternalReference,
			PaymentID: gp.ID,
			Total:     gp.Amount,
			Detail:    "approved payment received for a canceled or expired order",
		})
		return OutcomeAnomaly, entities.Order{}, nil
	case errors.Is(err, entities.ErrNotFound):
		logger.Warn("[payment][reconcile] payment references unknown order",
			zap.String("source", source), zap.String("order_id", gp.ExternalReference), zap.String("payment_id", gp.ID))
		return OutcomeUnresolved, entities.Order{}, nil
	}
	return OutcomeFailed, entities.Order{}, err
}

func (u *ReconciliationUseCase) getPayment(ctx context.Context, paymentID string) (gp entities.GatewayPayment, err error) {
	if u.gateway == nil {
		return entities.GatewayPayment{}, entities.NewGatewayError("get payment", ErrPaymentGatewayNotConfigured)
	}
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	defer func(start time.Time) { metrics.ObserveGateway("get_payment", start, err) }(time.Now())

	gp, err = u.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return entities.GatewayPayment{}, classifyGatewayError("get payment", err)
	}
	return gp, nil
}

func (u *ReconciliationUseCase) searchPayments(ctx context.Context, orderID string) (ps []entities.GatewayPayment, err error) {
	if u.gateway == nil {
		return nil, entities.NewGatewayError("search payments", ErrPaymentGatewayNotConfigured)
	}
	ctx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()
	defer func(start time.Time) { metrics.ObserveGateway("search_payments", start, err) }(time.Now())

	ps, err = u.gateway.SearchPayments(ctx, orderID)
	if err != nil {
		return nil, classifyGatewayError("search payments", err)
	}
	return ps, nil
}

func latestPayment(ps []entities.GatewayPayment) (entities.GatewayPayment, bool) {
	if len(ps) == 0 {
		return entities.GatewayPayment{}, false
	}
	latest := ps[0]
	for _, p := range ps[1:] {
		if p.DateCreated.After(latest.DateCreated) {
			latest = p
		}
	}
	return latest, true
}

func statusView(order entities.Order, gp entities.GatewayPayment) entities.PaymentStatusView {
	view := entities.PaymentStatusView{
		OrderID:       order.ID,
		OrderStatus:   order.Status,
		PaymentID:     order.PaymentID,
		PaymentStatus: gp.Status,
		PaidAt:        order.PaidAt,
	}
	if view.PaymentID == "" {
		view.PaymentID = gp.ID
	}
	return view
}

func dedupeKey(n entities.PaymentNotification) string {
	if n.RequestID == "" {
		return ""
	}
	return "webhook:" + n.PaymentID + ":" + n.RequestID
}
