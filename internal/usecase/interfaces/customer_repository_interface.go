package interfaces

import (
	"context"

	"storefront_orders/internal/domain/entities"
)

// ICustomerRepository caches the gateway customer id per user.

type ICustomerRepository interface {
	GetByUserID(ctx context.Context, userID string) (entities.Customer, error)
	// SaveIfAbsent stores c unless the user already has a customer, and returns
	// whichever record is stored afterwards.
	SaveIfAbsent(ctx context.Context, c entities.Customer) (entities.Customer, error)
}
