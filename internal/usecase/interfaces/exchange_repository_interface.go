package interfaces

import (
	"context"

	"storefront_orders/internal/domain/entities"
)

type IExchangeRepository interface {
	GetByID(ctx context.Context, id string) (entities.ExchangeRequest, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.ExchangeRequest, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.ExchangeRequest, error)
	ListAll(ctx context.Context) ([]entities.ExchangeRequest, error)
}
