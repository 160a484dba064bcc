package usecase

import (
	"context"
	"sort"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"
)

// InventoryLedger reserves and releases stock inside a caller's unit of work.
//
// Lines that point at the same stock line are merged, and stock lines are
// touched in id order so concurrent units acquire row locks consistently.
type InventoryLedger struct{}

func NewInventoryLedger() *InventoryLedger {
	return &InventoryLedger{}
}

func (l *InventoryLedger) Reserve(ctx context.Context, tx interfaces.ITx, lines []entities.OrderLine) error {
	merged, ids, err := mergeLines(lines)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := tx.ReserveStock(ctx, id, merged[id]); err != nil {
			return err
		}
	}
	return nil
}

func (l *InventoryLedger) Release(ctx context.Context, tx interfaces.ITx, lines []entities.OrderLine) error {
	merged, ids, err := mergeLines(lines)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := tx.ReleaseStock(ctx, id, merged[id]); err != nil {
			return err
		}
	}
	return nil
}

func mergeLines(lines []entities.OrderLine) (map[string]int, []string, error) {
	merged := make(map[string]int, len(lines))
	for _, l := range lines {
		if l.StockLineID == "" {
			return nil, nil, entities.NewValidationError("stock line id is required")
		}
		if l.Quantity <= 0 {
			return nil, nil, entities.NewValidationError("quantity must be positive")
		}
		merged[l.StockLineID] += l.Quantity
	}
	ids := make([]string, 0, len(merged))
	for id := range merged {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return merged, ids, nil
}
