package sqlstore

import (
	"context"
	"errors"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StockLineRepository struct {
	db *gorm.DB
}

var _ interfaces.IStockLineRepository = (*StockLineRepository)(nil)

func NewStockLineRepository(db *gorm.DB) *StockLineRepository {
	return &StockLineRepository{db: db}
}

func (r *StockLineRepository) GetByID(ctx context.Context, id string) (entities.StockLine, error) {
	var m StockLineModel
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.StockLine{}, nil
	}
	if err != nil {
		return entities.StockLine{}, err
	}
	return stockLineFromModel(m), nil
}

func (r *StockLineRepository) List(ctx context.Context) ([]entities.StockLine, error) {
	var models []StockLineModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]entities.StockLine, 0, len(models))
	for _, m := range models {
		out = append(out, stockLineFromModel(m))
	}
	return out, nil
}

// Upsert inserts the line or overwrites its catalog fields and quantity.
func (r *StockLineRepository) Upsert(ctx context.Context, line entities.StockLine) error {
	if line.ID == "" {
		return entities.NewValidationError("stock line id is required")
	}
	if line.Quantity < 0 {
		return entities.NewValidationError("stock line quantity cannot be negative")
	}
	m := stockLineToModel(line)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"product_id", "product_name", "unit_price", "size", "color",
			"weight_grams", "length_cm", "width_cm", "height_cm", "quantity",
		}),
	}).Create(&m).Error
}
