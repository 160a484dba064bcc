package usecase

import (
	"context"
	"errors"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/infrastructure/metrics"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"
	"storefront_orders/pkg/retry"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// OrderStateMachine owns every status change of an order.
//
// Each transition re-reads the order, applies the entity rule and commits the
// new status together with its side effects (stock, exchange rows) in one
// unit of work guarded by the status that was read. Losing that guard to a
// concurrent writer re-runs the whole transition against fresh state, so at
// most one of two racing transitions from the same status takes effect.
//
// Events, cache invalidation and metrics happen only after the unit commits.
type OrderStateMachine struct {
	orders     interfaces.IOrderRepository
	exchanges  interfaces.IExchangeRepository
	uow        interfaces.IUnitOfWork
	ledger     *InventoryLedger
	publisher  interfaces.IEventPublisher
	cache      interfaces.IOrderCache
	retry      retry.Config
	holdWindow time.Duration
	now        func() time.Time
}

type StateMachineOption func(*OrderStateMachine)

func WithEventPublisher(p interfaces.IEventPublisher) StateMachineOption {
	return func(m *OrderStateMachine) { m.publisher = p }
}

func WithOrderCache(c interfaces.IOrderCache) StateMachineOption {
	return func(m *OrderStateMachine) { m.cache = c }
}

func WithRetryConfig(cfg retry.Config) StateMachineOption {
	return func(m *OrderStateMachine) { m.retry = cfg }
}

func WithHoldWindow(d time.Duration) StateMachineOption {
	return func(m *OrderStateMachine) {
		if d > 0 {
			m.holdWindow = d
		}
	}
}

func WithClock(now func() time.Time) StateMachineOption {
	return func(m *OrderStateMachine) { m.now = now }
}

func NewOrderStateMachine(
	orders interfaces.IOrderRepository,
	exchanges interfaces.IExchangeRepository,
	uow interfaces.IUnitOfWork,
	ledger *InventoryLedger,
	opts ...StateMachineOption,
) *OrderStateMachine {
	m := &OrderStateMachine{
		orders:     orders,
		exchanges:  exchanges,
		uow:        uow,
		ledger:     ledger,
		retry:      retry.DefaultConfig,
		holdWindow: entities.DefaultHoldWindow,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.retry.RetryPredicate = func(err error) bool {
		return errors.Is(err, entities.ErrConcurrentModification)
	}
	return m
}

// Now returns the clock used for transitions.
func (m *OrderStateMachine) Now() time.Time {
	return m.now().UTC()
}

// Create stores a new PENDING order and reserves its stock in one unit.
func (m *OrderStateMachine) Create(ctx context.Context, order entities.Order) (created entities.Order, err error) {
	ctx, span := startSpan(ctx, "OrderStateMachine.Create", attribute.String("order.id", order.ID))
	defer func() { endSpan(span, err) }()

	now := m.Now()
	order.Status = entities.OrderStatusPending
	order.CreatedAt = now
	order.UpdatedAt = now
	order.ExpiresAt = now.Add(m.holdWindow)

	err = retry.ExecuteWithRetry(ctx, m.retry, func(ctx context.Context) error {
		return m.uow.Execute(ctx, func(tx interfaces.ITx) error {
			if err := m.ledger.Reserve(ctx, tx, order.Lines); err != nil {
				return err
			}
			return tx.InsertOrder(ctx, order)
		})
	})
	if err != nil {
		if errors.Is(err, entities.ErrInsufficientStock) {
			metrics.StockReservationFailures.Inc()
		}
		logger.Warn("[order][state] create failed",
			zap.String("order_id", order.ID), zap.String("user_id", order.UserID), zap.Error(err))
		return entities.Order{}, err
	}

	metrics.OrdersCreated.WithLabelValues(string(order.PaymentMethod)).Inc()
	logger.Info("[order][state] created",
		zap.String("order_id", order.ID), zap.String("user_id", order.UserID),
		zap.String("total", order.Total.String()), zap.Time("expires_at", order.ExpiresAt))
	m.publish(ctx, entities.OrderEvent{
		Type:       entities.EventOrderCreated,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		Total:      order.Total,
		OccurredAt: now,
	})
	return order, nil
}

// ConfirmPaid moves a PENDING order to PAID. Confirming an order that is
// already paid returns it unchanged; confirming a lapsed order fails with
// entities.ErrLatePayment and changes nothing.
func (m *OrderStateMachine) ConfirmPaid(ctx context.Context, orderID, paymentID, paymentType string) (entities.Order, error) {
	return m.apply(ctx, "ConfirmPaid", orderID, func(o *entities.Order, now time.Time) (bool, error) {
		return o.ConfirmPaid(paymentID, paymentType, now)
	}, nil)
}

// Cancel moves a PENDING order to CANCELED and returns its stock.
func (m *OrderStateMachine) Cancel(ctx context.Context, orderID string) (entities.Order, error) {
	return m.apply(ctx, "Cancel", orderID, func(o *entities.Order, now time.Time) (bool, error) {
		return true, o.Cancel(now)
	}, m.releaseStock)
}

// Expire moves a PENDING order past its hold window to EXPIRED and returns its stock.
func (m *OrderStateMachine) Expire(ctx context.Context, orderID string) (entities.Order, error) {
	return m.apply(ctx, "Expire", orderID, func(o *entities.Order, now time.Time) (bool, error) {
		return true, o.Expire(now)
	}, m.releaseStock)
}

// RequestExchange moves a PAID order to EXCHANGE_REQUESTED and stores the request.
func (m *OrderStateMachine) RequestExchange(ctx context.Context, orderID string, exchange entities.ExchangeRequest) (entities.Order, error) {
	return m.apply(ctx, "RequestExchange", orderID, func(o *entities.Order, now time.Time) (bool, error) {
		return true, o.RequestExchange(now)
	}, func(ctx context.Context, tx interfaces.ITx, _ entities.Order) error {
		return tx.InsertExchange(ctx, exchange)
	})
}

// ResolveExchange approves or rejects a PENDING exchange request, moving its
// order to EXCHANGED or back to PAID in the same unit.
func (m *OrderStateMachine) ResolveExchange(ctx context.Context, exchangeID string, approve bool, notes string) (entities.ExchangeRequest, entities.Order, error) {
	exchange, err := m.exchanges.GetByID(ctx, exchangeID)
	if err != nil {
		return entities.ExchangeRequest{}, entities.Order{}, err
	}
	if exchange.ID == "" {
		return entities.ExchangeRequest{}, entities.Order{}, entities.NewNotFoundError("exchange_request", exchangeID)
	}

	var resolved entities.ExchangeRequest
	order, err := m.apply(ctx, "ResolveExchange", exchange.OrderID, func(o *entities.Order, now time.Time) (bool, error) {
		resolved = exchange
		if err := resolved.Resolve(approve, notes, now); err != nil {
			return false, err
		}
		return true, o.ResolveExchange(approve, now)
	}, func(ctx context.Context, tx interfaces.ITx, _ entities.Order) error {
		return tx.UpdateExchange(ctx, resolved, entities.ExchangeStatusPending)
	})
	if err != nil {
		return entities.ExchangeRequest{}, entities.Order{}, err
	}
	return resolved, order, nil
}

type transitionStep func(o *entities.Order, now time.Time) (bool, error)

type transitionEffect func(ctx context.Context, tx interfaces.ITx, next entities.Order) error

func (m *OrderStateMachine) releaseStock(ctx context.Context, tx interfaces.ITx, next entities.Order) error {
	return m.ledger.Release(ctx, tx, next.Lines)
}

func (m *OrderStateMachine) apply(ctx context.Context, op, orderID string, step transitionStep, effect transitionEffect) (result entities.Order, err error) {
	ctx, span := startSpan(ctx, "OrderStateMachine."+op, attribute.String("order.id", orderID))
	defer func() { endSpan(span, err) }()

	var (
		from    entities.OrderStatus
		changed bool
	)
	err = retry.ExecuteWithRetry(ctx, m.retry, func(ctx context.Context) error {
		changed = false
		current, err := m.orders.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if current.ID == "" {
			return entities.NewNotFoundError("order", orderID)
		}
		result = current

		next := current
		ok, err := step(&next, m.Now())
		if err != nil || !ok {
			return err
		}

		err = m.uow.Execute(ctx, func(tx interfaces.ITx) error {
			if err := tx.UpdateOrder(ctx, next, current.Status); err != nil {
				return err
			}
			if effect != nil {
				return effect(ctx, tx, next)
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, entities.ErrConcurrentModification) {
				metrics.TransitionConflicts.Inc()
				logger.Debug("[order][state] lost transition race, retrying",
					zap.String("op", op), zap.String("order_id", orderID))
			}
			return err
		}

		from = current.Status
		result = next
		changed = true
		return nil
	})
	if err != nil {
		if !errors.Is(err, entities.ErrLatePayment) {
			logger.Warn("[order][state] transition failed",
				zap.String("op", op), zap.String("order_id", orderID), zap.Error(err))
		}
		return entities.Order{}, err
	}

	if changed {
		m.afterCommit(ctx, from, result)
	}
	return result, nil
}

func (m *OrderStateMachine) afterCommit(ctx context.Context, from entities.OrderStatus, order entities.Order) {
	metrics.OrderTransitions.WithLabelValues(string(from), string(order.Status)).Inc()
	logger.Info("[order][state] transition committed",
		zap.String("order_id", order.ID), zap.String("from", string(from)), zap.String("to", string(order.Status)))

	if m.cache != nil {
		if err := m.cache.Delete(ctx, order.ID); err != nil {
			logger.Warn("[order][state] cache invalidation failed", zap.String("order_id", order.ID), zap.Error(err))
		}
	}

	eventType, ok := entities.EventForTransition(from, order.Status)
	if !ok {
		return
	}
	m.publish(ctx, entities.OrderEvent{
		Type:       eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     order.Status,
		PaymentID:  order.PaymentID,
		Total:      order.Total,
		OccurredAt: order.UpdatedAt,
	})
}

// publish never fails the caller; the state change is already committed.
func (m *OrderStateMachine) publish(ctx context.Context, event entities.OrderEvent) {
	if m.publisher == nil {
		return
	}
	if err := m.publisher.Publish(ctx, event); err != nil {
		logger.Warn("[order][state] event publish failed",
			zap.String("type", string(event.Type)), zap.String("order_id", event.OrderID), zap.Error(err))
	}
}

// PublishAnomaly reports an event that does not correspond to a transition.
func (m *OrderStateMachine) PublishAnomaly(ctx context.Context, event entities.OrderEvent) {
	event.Type = entities.EventPaymentAnomaly
	if event.OccurredAt.IsZero() {
		event.OccurredAt = m.Now()
	}
	m.publish(ctx, event)
}
