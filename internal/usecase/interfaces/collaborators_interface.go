package interfaces

import (
	"context"

	"storefront_orders/internal/domain/entities"
)

// IEventPublisher publishes committed lifecycle events.
type IEventPublisher interface {
	Publish(ctx context.Context, event entities.OrderEvent) error
}

// IOrderCache is a read-through cache for single orders. Get returns a zero
// Order on a miss.
type IOrderCache interface {
	Get(ctx context.Context, id string) (entities.Order, error)
	Set(ctx context.Context, order entities.Order) error
	Delete(ctx context.Context, id string) error
}

// INotificationDeduper remembers webhook deliveries that were fully processed.
type INotificationDeduper interface {
	Seen(ctx context.Context, key string) (bool, error)
	Remember(ctx context.Context, key string) error
}

// IPermissionChecker answers whether actor may perform a permission-guarded action.
type IPermissionChecker interface {
	HasPermission(ctx context.Context, actor entities.Actor, permission string) bool
}

// INotificationVerifier authenticates an inbound gateway notification.
// A nil error means the signature matched.
type INotificationVerifier interface {
	Verify(n entities.PaymentNotification) error
}
