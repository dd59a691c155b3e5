package db

import (
	"github.com/kinwise-app/kinwise/internal/models"
	"gorm.io/gorm"
)

type OrderRepository struct {
	database *gorm.DB
}

func NewOrderRepository(database *gorm.DB) *OrderRepository {
	return &OrderRepository{database: database}
}

// ListRecentActive returns the most recently created orders in the
// active/fulfilled status set, items preloaded, newest first.
func (repo *OrderRepository) ListRecentActive(memberID uint, limit int) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	if err := repo.database.
		Preload("Items").
		Where("member_id = ? AND status IN ?", memberID, models.ActiveOrderStatuses()).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
