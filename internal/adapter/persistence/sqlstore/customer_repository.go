package sqlstore

import (
	"context"
	"errors"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CustomerRepository struct {
	db *gorm.DB
}

var _ interfaces.ICustomerRepository = (*CustomerRepository)(nil)

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetByUserID(ctx context.Context, userID string) (entities.Customer, error) {
	var m CustomerModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Customer{}, nil
	}
	if err != nil {
		return entities.Customer{}, err
	}
	return entities.Customer{
		UserID:            m.UserID,
		GatewayCustomerID: m.GatewayCustomerID,
		Email:             m.Email,
		CreatedAt:         m.CreatedAt.UTC(),
	}, nil
}

func (r *CustomerRepository) SaveIfAbsent(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	m := CustomerModel{
		UserID:            c.UserID,
		GatewayCustomerID: c.GatewayCustomerID,
		Email:             c.Email,
		CreatedAt:         c.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&m).Error; err != nil {
		return entities.Customer{}, err
	}
	return r.GetByUserID(ctx, c.UserID)
}
