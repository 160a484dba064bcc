package interfaces

import (
	"context"
	"time"

	"storefront_orders/internal/domain/entities"
)

// IOrderRepository reads orders.
//
// GetByID returns a zero Order (empty ID) when the order does not exist and
// always reads the latest committed state.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	ListAll(ctx context.Context) ([]entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]entities.Order, error)
	// AttachPayment stores the gateway payment id on a PENDING order without
	// touching its status. It is a no-op for orders that left PENDING.
	AttachPayment(ctx context.Context, orderID, paymentID, paymentType string) error
}
