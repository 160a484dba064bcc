package interfaces

import (
	"context"

	"storefront_orders/internal/domain/entities"
)

// IUnitOfWork runs fn as one all-or-nothing write against the store.
//
// Nothing written through tx is visible to other callers until fn returns nil;
// any error from fn or from the commit discards every write.
type IUnitOfWork interface {
	Execute(ctx context.Context, fn func(tx ITx) error) error
}

// ITx is the set of writes that may be combined inside a unit of work.
//
// Engines that buffer writes (DynamoDB transactions) report condition failures
// when the unit commits, so callers must not rely on an individual call
// returning the error.
type ITx interface {
	// ReserveStock decrements a stock line only when quantity >= requested,
	// failing with entities.ErrInsufficientStock otherwise.
	ReserveStock(ctx context.Context, stockLineID string, quantity int) error
	// ReleaseStock increments a stock line unconditionally.
	ReleaseStock(ctx context.Context, stockLineID string, quantity int) error
	InsertOrder(ctx context.Context, order entities.Order) error
	// UpdateOrder writes order only when the stored status still equals expected,
	// failing with entities.ErrConcurrentModification otherwise.
	UpdateOrder(ctx context.Context, order entities.Order, expected entities.OrderStatus) error
	InsertExchange(ctx context.Context, exchange entities.ExchangeRequest) error
	UpdateExchange(ctx context.Context, exchange entities.ExchangeRequest, expected entities.ExchangeStatus) error
}
