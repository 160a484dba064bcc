package sqlstore

import (
	"context"
	"errors"
	"fmt"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"

	"gorm.io/gorm"
)

// UnitOfWork runs a unit inside one database transaction.
type UnitOfWork struct {
	db *gorm.DB
}

var _ interfaces.IUnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(db *gorm.DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) Execute(ctx context.Context, fn func(tx interfaces.ITx) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTx{db: tx})
	})
}

// gormTx applies writes immediately inside the open transaction, so guard
// failures surface from the call that caused them.
type gormTx struct {
	db *gorm.DB
}

var _ interfaces.ITx = (*gormTx)(nil)

func (t *gormTx) ReserveStock(ctx context.Context, stockLineID string, quantity int) error {
	res := t.db.WithContext(ctx).
		Model(&StockLineModel{}).
		Where("id = ? AND quantity >= ?", stockLineID, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("reserve stock %s: %w", stockLineID, res.Error)
	}
	if res.RowsAffected == 1 {
		return nil
	}
	if exists, err := t.stockLineExists(ctx, stockLineID); err != nil {
		return err
	} else if !exists {
		return entities.NewNotFoundError("stock_line", stockLineID)
	}
	return entities.NewInsufficientStockError(stockLineID, quantity)
}

func (t *gormTx) ReleaseStock(ctx context.Context, stockLineID string, quantity int) error {
	res := t.db.WithContext(ctx).
		Model(&StockLineModel{}).
		Where("id = ?", stockLineID).
		UpdateColumn("quantity", gorm.Expr("quantity + ?", quantity))
	if res.Error != nil {
		return fmt.Errorf("release stock %s: %w", stockLineID, res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.NewNotFoundError("stock_line", stockLineID)
	}
	return nil
}

func (t *gormTx) stockLineExists(ctx context.Context, id string) (bool, error) {
	var count int64
	if err := t.db.WithContext(ctx).Model(&StockLineModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (t *gormTx) InsertOrder(ctx context.Context, order entities.Order) error {
	m, lines := orderToModel(order)
	if err := t.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &entities.DomainError{Kind: entities.ErrValidation, Entity: "order", ID: order.ID, Reason: "already exists"}
		}
		return fmt.Errorf("insert order %s: %w", order.ID, err)
	}
	if len(lines) > 0 {
		if err := t.db.WithContext(ctx).Create(&lines).Error; err != nil {
			return fmt.Errorf("insert order lines %s: %w", order.ID, err)
		}
	}
	return nil
}

func (t *gormTx) UpdateOrder(ctx context.Context, order entities.Order, expected entities.OrderStatus) error {
	m, _ := orderToModel(order)
	fields := map[string]any{
		"status":     m.Status,
		"updated_at": m.UpdatedAt,
	}
	// A payment attached after the order was read must survive the transition.
	if order.PaymentID != "" {
		fields["payment_id"] = m.PaymentID
	}
	if order.PaymentType != "" {
		fields["payment_type"] = m.PaymentType
	}
	if order.PaidAt != nil {
		fields["paid_at"] = m.PaidAt
	}
	res := t.db.WithContext(ctx).
		Model(&OrderModel{}).
		Where("id = ? AND status = ?", order.ID, string(expected)).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update order %s: %w", order.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.NewConcurrentModificationError("order", order.ID)
	}
	return nil
}

func (t *gormTx) InsertExchange(ctx context.Context, exchange entities.ExchangeRequest) error {
	m := exchangeToModel(exchange)
	if err := t.db.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert exchange %s: %w", exchange.ID, err)
	}
	return nil
}

func (t *gormTx) UpdateExchange(ctx context.Context, exchange entities.ExchangeRequest, expected entities.ExchangeStatus) error {
	m := exchangeToModel(exchange)
	res := t.db.WithContext(ctx).
		Model(&ExchangeModel{}).
		Where("id = ? AND status = ?", exchange.ID, string(expected)).
		Updates(map[string]any{
			"status":      m.Status,
			"admin_notes": m.AdminNotes,
			"resolved_at": m.ResolvedAt,
		})
	if res.Error != nil {
		return fmt.Errorf("update exchange %s: %w", exchange.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.NewConcurrentModificationError("exchange_request", exchange.ID)
	}
	return nil
}
