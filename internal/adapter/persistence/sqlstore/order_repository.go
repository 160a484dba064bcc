package sqlstore

import (
	"context"
	"errors"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type OrderRepository struct {
	db *gorm.DB
}

var _ interfaces.IOrderRepository = (*OrderRepository)(nil)

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (entities.Order, error) {
	var m OrderModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Order{}, nil
	}
	if err != nil {
		return entities.Order{}, err
	}
	orders, err := r.withLines(ctx, []OrderModel{m})
	if err != nil {
		return entities.Order{}, err
	}
	return orders[0], nil
}

func (r *OrderRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]entities.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx))
}

func (r *OrderRepository) ListByStatus(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error) {
	return r.list(ctx, r.db.WithContext(ctx).Where("status = ?", string(status)))
}

// ListExpiredPending returns PENDING orders whose hold window ended at or
// before now, oldest deadline first.
func (r *OrderRepository) ListExpiredPending(ctx context.Context, now time.Time, limit int) ([]entities.Order, error) {
	q := r.db.WithContext(ctx).
		Where("status = ? AND expires_at_epoch <= ?", string(entities.OrderStatusPending), now.UTC().UnixMilli()).
		Order("expires_at_epoch ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return r.list(ctx, q)
}

func (r *OrderRepository) AttachPayment(ctx context.Context, orderID, paymentID, paymentType string) error {
	return r.db.WithContext(ctx).
		Model(&OrderModel{}).
		Where("id = ? AND status = ?", orderID, string(entities.OrderStatusPending)).
		Updates(map[string]any{"payment_id": paymentID, "payment_type": paymentType}).Error
}

func (r *OrderRepository) list(ctx context.Context, q *gorm.DB) ([]entities.Order, error) {
	var models []OrderModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	return r.withLines(ctx, models)
}

func (r *OrderRepository) withLines(ctx context.Context, models []OrderModel) ([]entities.Order, error) {
	out := make([]entities.Order, 0, len(models))
	if len(models) == 0 {
		return out, nil
	}
	ids := make([]string, 0, len(models))
	for _, m := range models {
		ids = append(ids, m.ID)
	}
	var lines []OrderLineModel
	if err := r.db.WithContext(ctx).
		Where("order_id IN ?", ids).
		Order("order_id, position").
		Find(&lines).Error; err != nil {
		return nil, err
	}
	byOrder := make(map[string][]OrderLineModel, len(models))
	for _, l := range lines {
		byOrder[l.OrderID] = append(byOrder[l.OrderID], l)
	}
	for _, m := range models {
		out = append(out, orderFromModel(m, byOrder[m.ID]))
	}
	return out, nil
}
