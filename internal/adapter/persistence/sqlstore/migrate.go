package sqlstore

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates every table used by the store.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
