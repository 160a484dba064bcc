package sqlstore

import (
	"context"
	"errors"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"

	"gorm.io/gorm"
)

type ExchangeRepository struct {
	db *gorm.DB
}

var _ interfaces.IExchangeRepository = (*ExchangeRepository)(nil)

func NewExchangeRepository(db *gorm.DB) *ExchangeRepository {
	return &ExchangeRepository{db: db}
}

func (r *ExchangeRepository) GetByID(ctx context.Context, id string) (entities.ExchangeRequest, error) {
	var m ExchangeModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ExchangeRequest{}, nil
	}
	if err != nil {
		return entities.ExchangeRequest{}, err
	}
	return exchangeFromModel(m), nil
}

func (r *ExchangeRepository) ListByOrderID(ctx context.Context, orderID string) ([]entities.ExchangeRequest, error) {
	return r.list(r.db.WithContext(ctx).Where("order_id = ?", orderID))
}

func (r *ExchangeRepository) ListByUserID(ctx context.Context, userID string) ([]entities.ExchangeRequest, error) {
	return r.list(r.db.WithContext(ctx).Where("user_id = ?", userID))
}

func (r *ExchangeRepository) ListAll(ctx context.Context) ([]entities.ExchangeRequest, error) {
	return r.list(r.db.WithContext(ctx))
}

func (r *ExchangeRepository) list(q *gorm.DB) ([]entities.ExchangeRequest, error) {
	var models []ExchangeModel
	if err := q.Order("created_at DESC").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.ExchangeRequest, 0, len(models))
	for _, m := range models {
		out = append(out, exchangeFromModel(m))
	}
	return out, nil
}
