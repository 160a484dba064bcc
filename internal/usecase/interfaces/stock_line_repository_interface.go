package interfaces

import (
	"context"

	"storefront_orders/internal/domain/entities"
)

// IStockLineRepository exposes the catalog snapshot and quantity of stock lines.

type IStockLineRepository interface {
	GetByID(ctx context.Context, id string) (entities.StockLine, error)
	List(ctx context.Context) ([]entities.StockLine, error)
	Upsert(ctx context.Context, line entities.StockLine) error
}
