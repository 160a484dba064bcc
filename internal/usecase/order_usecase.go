package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

const maxInstallments = 12

// OrderLineRequest asks for quantity units of one stock line.
type OrderLineRequest struct {
	StockLineID string
	Quantity    int
}

type CreateOrderCommand struct {
	Lines   []OrderLineRequest
	Address entities.Address
	Method  entities.PaymentMethod
	Payment CheckoutPayment
}

// OrderCreation is the result of checkout. Payment is nil when the charge
// could not be submitted; the order is still stored and PaymentError says why.
type OrderCreation struct {
	Order        entities.Order
	Payment      *entities.PaymentArtifact
	PaymentError error
}

// IOrderUseCase is the buyer and back-office surface over orders.
type IOrderUseCase interface {
	CreateOrder(ctx context.Context, actor entities.Actor, cmd CreateOrderCommand) (OrderCreation, error)
	GetOrder(ctx context.Context, actor entities.Actor, orderID string) (entities.Order, error)
	ListMyOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error)
	ListAllOrders(ctx context.Context, actor entities.Actor, status entities.OrderStatus) ([]entities.Order, error)
	CancelOrder(ctx context.Context, actor entities.Actor, orderID string) (entities.Order, error)
	GetPixCode(ctx context.Context, actor entities.Actor, orderID string) (entities.PaymentArtifact, error)
}

type OrderUseCaseConfig struct {
	MaxLines int
}

type OrderUseCase struct {
	orders      interfaces.IOrderRepository
	stock       interfaces.IStockLineRepository
	pricing     *PricingEngine
	machine     *OrderStateMachine
	dispatcher  *PaymentDispatcher
	permissions interfaces.IPermissionChecker
	cache       interfaces.IOrderCache
	cfg         OrderUseCaseConfig
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(
	orders interfaces.IOrderRepository,
	stock interfaces.IStockLineRepository,
	pricing *PricingEngine,
	machine *OrderStateMachine,
	dispatcher *PaymentDispatcher,
	permissions interfaces.IPermissionChecker,
	cache interfaces.IOrderCache,
	cfg OrderUseCaseConfig,
) *OrderUseCase {
	if cfg.MaxLines <= 0 {
		cfg.MaxLines = 50
	}
	return &OrderUseCase{
		orders:      orders,
		stock:       stock,
		pricing:     pricing,
		machine:     machine,
		dispatcher:  dispatcher,
		permissions: permissions,
		cache:       cache,
		cfg:         cfg,
	}
}

func (u *OrderUseCase) CreateOrder(ctx context.Context, actor entities.Actor, cmd CreateOrderCommand) (res OrderCreation, err error) {
	ctx, span := startSpan(ctx, "OrderUseCase.CreateOrder", attribute.String("user.id", actor.UserID))
	defer func() { endSpan(span, err) }()

	if !actor.Authenticated() {
		return OrderCreation{}, entities.NewForbiddenError("order", "")
	}
	requests, err := u.validateCreate(&cmd)
	if err != nil {
		logger.Info("[order][usecase] create rejected", zap.String("user_id", actor.UserID), zap.Error(err))
		return OrderCreation{}, err
	}

	lines := make([]entities.OrderLine, 0, len(requests))
	var weight, volume int64
	for _, r := range requests {
		sl, err := u.stock.GetByID(ctx, r.StockLineID)
		if err != nil {
			return OrderCreation{}, err
		}
		if sl.ID == "" {
			return OrderCreation{}, entities.NewNotFoundError("stock_line", r.StockLineID)
		}
		if sl.Quantity < r.Quantity {
			return OrderCreation{}, entities.NewInsufficientStockError(sl.ID, r.Quantity)
		}
		lines = append(lines, sl.Snapshot(r.Quantity))
		weight += int64(sl.WeightGrams) * int64(r.Quantity)
		volume += sl.VolumeCm3() * int64(r.Quantity)
	}

	quote := u.pricing.Quote(PricingInput{
		Lines:          lines,
		DestinationZip: cmd.Address.Zip,
		WeightGrams:    weight,
		VolumeCm3:      volume,
		Method:         cmd.Method,
	})

	order := entities.Order{
		ID:            uuid.NewString(),
		UserID:        actor.UserID,
		Address:       cmd.Address,
		Lines:         lines,
		Subtotal:      quote.Subtotal,
		Freight:       quote.Freight,
		Discount:      quote.Discount,
		Fee:           quote.Fee,
		Total:         quote.Total,
		PaymentMethod: cmd.Method,
	}
	if cmd.Method == entities.PaymentMethodCard {
		order.Installments = cmd.Payment.Card.Installments
	}

	created, err := u.machine.Create(ctx, order)
	if err != nil {
		return OrderCreation{}, err
	}
	res.Order = created

	dispatched, err := u.dispatcher.Dispatch(ctx, created, cmd.Payment)
	if err != nil {
		logger.Warn("[order][usecase] order stored without payment",
			zap.String("order_id", created.ID), zap.Error(err))
		res.Order = dispatched.Order
		res.PaymentError = err
		return res, nil
	}
	res.Order = dispatched.Order
	artifact := dispatched.Artifact
	res.Payment = &artifact
	return res, nil
}

// validateCreate normalizes cmd in place and merges lines that repeat a stock line.
func (u *OrderUseCase) validateCreate(cmd *CreateOrderCommand) ([]OrderLineRequest, error) {
	if len(cmd.Lines) == 0 {
		return nil, entities.NewValidationError("order must have at least one line")
	}
	if len(cmd.Lines) > u.cfg.MaxLines {
		return nil, entities.NewValidationError(fmt.Sprintf("order must have at most %d lines", u.cfg.MaxLines))
	}
	if !cmd.Method.Valid() {
		return nil, entities.NewValidationError(fmt.Sprintf("unsupported payment method %q", cmd.Method))
	}

	cmd.Address.Zip = entities.NormalizeZip(cmd.Address.Zip)
	if len(cmd.Address.Zip) != 8 {
		return nil, entities.NewValidationError("address.zip must have 8 digits")
	}
	for _, f := range []struct{ name, value string }{
		{"address.street", cmd.Address.Street},
		{"address.number", cmd.Address.Number},
		{"address.city", cmd.Address.City},
		{"address.state", cmd.Address.State},
	} {
		if strings.TrimSpace(f.value) == "" {
			return nil, entities.NewValidationError(f.name + " is required")
		}
	}

	cmd.Payment.Payer.Email = strings.TrimSpace(cmd.Payment.Payer.Email)
	if cmd.Payment.Payer.Email == "" {
		return nil, entities.NewValidationError("payer.email is required")
	}
	if cmd.Method == entities.PaymentMethodCard {
		card := &cmd.Payment.Card
		if strings.TrimSpace(card.Token) == "" {
			return nil, entities.NewValidationError("card.token is required")
		}
		if strings.TrimSpace(card.PaymentMethodID) == "" {
			return nil, entities.NewValidationError("card.payment_method_id is required")
		}
		if card.Installments == 0 {
			card.Installments = 1
		}
		if card.Installments < 1 || card.Installments > maxInstallments {
			return nil, entities.NewValidationError(fmt.Sprintf("card.installments must be between 1 and %d", maxInstallments))
		}
	}

	merged := make([]OrderLineRequest, 0, len(cmd.Lines))
	index := make(map[string]int, len(cmd.Lines))
	for _, l := range cmd.Lines {
		id := strings.TrimSpace(l.StockLineID)
		if id == "" {
			return nil, entities.NewValidationError("stock_line_id is required")
		}
		if l.Quantity <= 0 {
			return nil, entities.NewValidationError("quantity must be positive")
		}
		if i, ok := index[id]; ok {
			merged[i].Quantity += l.Quantity
			continue
		}
		index[id] = len(merged)
		merged = append(merged, OrderLineRequest{StockLineID: id, Quantity: l.Quantity})
	}
	return merged, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, actor entities.Actor, orderID string) (entities.Order, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.Order{}, entities.NewValidationError("order id is required")
	}

	order, err := u.cachedOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, entities.NewNotFoundError("order", orderID)
	}
	if !order.IsOwnedBy(actor.UserID) && !u.can(ctx, actor, entities.PermissionOrdersReadAll) {
		return entities.Order{}, entities.NewForbiddenError("order", orderID)
	}
	return order, nil
}

// cachedOrder reads through the cache. PENDING orders are never cached
// because payment attachment writes them outside the state machine.
func (u *OrderUseCase) cachedOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if u.cache != nil {
		cached, err := u.cache.Get(ctx, orderID)
		if err != nil {
			logger.Warn("[order][usecase] cache read failed", zap.String("order_id", orderID), zap.Error(err))
		} else if cached.ID != "" {
			return cached, nil
		}
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if u.cache != nil && order.ID != "" && order.Status != entities.OrderStatusPending {
		if err := u.cache.Set(ctx, order); err != nil {
			logger.Warn("[order][usecase] cache write failed", zap.String("order_id", orderID), zap.Error(err))
		}
	}
	return order, nil
}

func (u *OrderUseCase) ListMyOrders(ctx context.Context, actor entities.Actor) ([]entities.Order, error) {
	if !actor.Authenticated() {
		return nil, entities.NewForbiddenError("order", "")
	}
	orders, err := u.orders.ListByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

// ListAllOrders lists every order, optionally filtered by status.
func (u *OrderUseCase) ListAllOrders(ctx context.Context, actor entities.Actor, status entities.OrderStatus) ([]entities.Order, error) {
	if !u.can(ctx, actor, entities.PermissionOrdersReadAll) {
		return nil, entities.NewForbiddenError("order", "")
	}
	var (
		orders []entities.Order
		err    error
	)
	if status == "" {
		orders, err = u.orders.ListAll(ctx)
	} else {
		if !status.Valid() {
			return nil, entities.NewValidationError(fmt.Sprintf("unknown status %q", status))
		}
		orders, err = u.orders.ListByStatus(ctx, status)
	}
	if err != nil {
		return nil, err
	}
	sortNewestFirst(orders)
	return orders, nil
}

func (u *OrderUseCase) CancelOrder(ctx context.Context, actor entities.Actor, orderID string) (entities.Order, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, entities.NewNotFoundError("order", orderID)
	}
	if !order.IsOwnedBy(actor.UserID) && !u.can(ctx, actor, entities.PermissionOrdersCancelAny) {
		return entities.Order{}, entities.NewForbiddenError("order", orderID)
	}

	canceled, err := u.machine.Cancel(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	logger.Info("[order][usecase] order canceled", zap.String("order_id", orderID), zap.String("actor", actor.UserID))
	return canceled, nil
}

// GetPixCode returns the scannable code of a PENDING pix order.
func (u *OrderUseCase) GetPixCode(ctx context.Context, actor entities.Actor, orderID string) (entities.PaymentArtifact, error) {
	order, err := u.GetOrder(ctx, actor, orderID)
	if err != nil {
		return entities.PaymentArtifact{}, err
	}
	if order.PaymentMethod != entities.PaymentMethodPix {
		return entities.PaymentArtifact{}, entities.NewValidationError("order was not placed with pix")
	}
	if order.Status != entities.OrderStatusPending {
		return entities.PaymentArtifact{}, &entities.DomainError{
			Kind:   entities.ErrInvalidTransition,
			Entity: "order",
			ID:     order.ID,
			Reason: "order is no longer awaiting payment",
		}
	}
	return u.dispatcher.FetchArtifact(ctx, order)
}

func (u *OrderUseCase) can(ctx context.Context, actor entities.Actor, permission string) bool {
	return actor.Authenticated() && u.permissions != nil && u.permissions.HasPermission(ctx, actor, permission)
}

func sortNewestFirst(orders []entities.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
