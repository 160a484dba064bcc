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
	"go.uber.org/zap"
)

const (
	maxExchangeReasonLen = 1000
	maxExchangeEvidence  = 10
)

type RequestExchangeCommand struct {
	Kind     entities.ExchangeKind
	Reason   string
	Evidence []string
}

// IExchangeUseCase drives the exchange/return sub-workflow of paid orders.
type IExchangeUseCase interface {
	RequestExchange(ctx context.Context, actor entities.Actor, orderID string, cmd RequestExchangeCommand) (entities.ExchangeRequest, error)
	ListExchanges(ctx context.Context, actor entities.Actor, status entities.ExchangeStatus) ([]entities.ExchangeRequest, error)
	ResolveExchange(ctx context.Context, actor entities.Actor, exchangeID string, approve bool, notes string) (entities.ExchangeRequest, error)
}

type ExchangeUseCase struct {
	orders      interfaces.IOrderRepository
	exchanges   interfaces.IExchangeRepository
	machine     *OrderStateMachine
	permissions interfaces.IPermissionChecker
}

var _ IExchangeUseCase = (*ExchangeUseCase)(nil)

func NewExchangeUseCase(
	orders interfaces.IOrderRepository,
	exchanges interfaces.IExchangeRepository,
	machine *OrderStateMachine,
	permissions interfaces.IPermissionChecker,
) *ExchangeUseCase {
	return &ExchangeUseCase{orders: orders, exchanges: exchanges, machine: machine, permissions: permissions}
}

// RequestExchange opens an exchange or return for a PAID order owned by actor.
func (u *ExchangeUseCase) RequestExchange(ctx context.Context, actor entities.Actor, orderID string, cmd RequestExchangeCommand) (entities.ExchangeRequest, error) {
	if cmd.Kind == "" {
		cmd.Kind = entities.ExchangeKindExchange
	}
	if !cmd.Kind.Valid() {
		return entities.ExchangeRequest{}, entities.NewValidationError(fmt.Sprintf("unknown kind %q", cmd.Kind))
	}
	cmd.Reason = strings.TrimSpace(cmd.Reason)
	if cmd.Reason == "" {
		return entities.ExchangeRequest{}, entities.NewValidationError("reason is required")
	}
	if len(cmd.Reason) > maxExchangeReasonLen {
		return entities.ExchangeRequest{}, entities.NewValidationError(fmt.Sprintf("reason must have at most %d characters", maxExchangeReasonLen))
	}
	if len(cmd.Evidence) > maxExchangeEvidence {
		return entities.ExchangeRequest{}, entities.NewValidationError(fmt.Sprintf("at most %d evidence items are accepted", maxExchangeEvidence))
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	if order.ID == "" {
		return entities.ExchangeRequest{}, entities.NewNotFoundError("order", orderID)
	}
	if !order.IsOwnedBy(actor.UserID) {
		return entities.ExchangeRequest{}, entities.NewForbiddenError("order", orderID)
	}

	exchange := entities.ExchangeRequest{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		UserID:    order.UserID,
		Kind:      cmd.Kind,
		Reason:    cmd.Reason,
		Evidence:  cmd.Evidence,
		Status:    entities.ExchangeStatusPending,
		CreatedAt: u.machine.Now(),
	}
	if _, err := u.machine.RequestExchange(ctx, order.ID, exchange); err != nil {
		return entities.ExchangeRequest{}, err
	}
	logger.Info("[exchange][usecase] exchange requested",
		zap.String("exchange_id", exchange.ID), zap.String("order_id", order.ID), zap.String("kind", string(exchange.Kind)))
	return exchange, nil
}

// ListExchanges returns every request for staff and the caller's own otherwise.
func (u *ExchangeUseCase) ListExchanges(ctx context.Context, actor entities.Actor, status entities.ExchangeStatus) ([]entities.ExchangeRequest, error) {
	if !actor.Authenticated() {
		return nil, entities.NewForbiddenError("exchange_request", "")
	}
	if status != "" && !status.Valid() {
		return nil, entities.NewValidationError(fmt.Sprintf("unknown status %q", status))
	}

	var (
		list []entities.ExchangeRequest
		err  error
	)
	if u.permissions != nil && u.permissions.HasPermission(ctx, actor, entities.PermissionExchangesManage) {
		list, err = u.exchanges.ListAll(ctx)
	} else {
		list, err = u.exchanges.ListByUserID(ctx, actor.UserID)
	}
	if err != nil {
		return nil, err
	}

	out := list[:0]
	for _, e := range list {
		if status == "" || e.Status == status {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// ResolveExchange approves or rejects a PENDING request. Staff only.
func (u *ExchangeUseCase) ResolveExchange(ctx context.Context, actor entities.Actor, exchangeID string, approve bool, notes string) (entities.ExchangeRequest, error) {
	if !actor.Authenticated() || u.permissions == nil || !u.permissions.HasPermission(ctx, actor, entities.PermissionExchangesManage) {
		return entities.ExchangeRequest{}, entities.NewForbiddenError("exchange_request", exchangeID)
	}
	resolved, order, err := u.machine.ResolveExchange(ctx, exchangeID, approve, strings.TrimSpace(notes))
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	logger.Info("[exchange][usecase] exchange resolved",
		zap.String("exchange_id", resolved.ID), zap.String("status", string(resolved.Status)),
		zap.String("order_id", order.ID), zap.String("order_status", string(order.Status)),
		zap.String("actor", actor.UserID))
	return resolved, nil
}
