package usecase

import (
	"context"
	"testing"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"
	mock_interfaces "storefront_orders/internal/usecase/interfaces/mocks"
	"storefront_orders/pkg/retry"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

var (
	buyer = entities.Actor{UserID: "user-1"}
	staff = entities.Actor{UserID: "staff-1", Permissions: []string{"*"}}
)

// machineMocks are the collaborators of an OrderStateMachine under test.
type machineMocks struct {
	orders    *mock_interfaces.MockIOrderRepository
	exchanges *mock_interfaces.MockIExchangeRepository
	uow       *mock_interfaces.MockIUnitOfWork
	tx        *mock_interfaces.MockITx
	publisher *mock_interfaces.MockIEventPublisher
}

// newTestMachine builds a state machine whose unit of work runs fn against a
// single mock tx. Publish is allowed any number of times unless a test sets
// its own expectations first.
func newTestMachine(t *testing.T, ctrl *gomock.Controller, opts ...StateMachineOption) (*OrderStateMachine, machineMocks) {
	t.Helper()
	m := machineMocks{
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		exchanges: mock_interfaces.NewMockIExchangeRepository(ctrl),
		uow:       mock_interfaces.NewMockIUnitOfWork(ctrl),
		tx:        mock_interfaces.NewMockITx(ctrl),
		publisher: mock_interfaces.NewMockIEventPublisher(ctrl),
	}
	m.uow.EXPECT().Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(interfaces.ITx) error) error {
			return fn(m.tx)
		}).AnyTimes()

	base := []StateMachineOption{
		WithEventPublisher(m.publisher),
		WithClock(func() time.Time { return fixedNow }),
		WithRetryConfig(retry.Config{Enabled: true, MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: time.Millisecond, BackoffFactor: 1}),
	}
	machine := NewOrderStateMachine(m.orders, m.exchanges, m.uow, NewInventoryLedger(), append(base, opts...)...)
	return machine, m
}

func pendingOrder(id string) entities.Order {
	return entities.Order{
		ID:     id,
		UserID: buyer.UserID,
		Status: entities.OrderStatusPending,
		Lines: []entities.OrderLine{
			{StockLineID: "sl-b", ProductID: "p-1", ProductName: "Dress", UnitPrice: 6500, Quantity: 2},
			{StockLineID: "sl-a", ProductID: "p-2", ProductName: "Scarf", UnitPrice: 3000, Quantity: 1},
		},
		Subtotal:      16000,
		Freight:       800,
		Total:         16800,
		PaymentMethod: entities.PaymentMethodPix,
		CreatedAt:     fixedNow.Add(-10 * time.Minute),
		UpdatedAt:     fixedNow.Add(-10 * time.Minute),
		ExpiresAt:     fixedNow.Add(20 * time.Minute),
	}
}

func withStatus(o entities.Order, s entities.OrderStatus) entities.Order {
	o.Status = s
	return o
}

// grantAll is a permission checker that honors the "*" slug and exact matches.
type grantAll struct{}

func (grantAll) HasPermission(_ context.Context, actor entities.Actor, permission string) bool {
	for _, p := range actor.Permissions {
		if p == "*" || p == permission {
			return true
		}
	}
	return false
}
