package models

import "time"

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusPreparing = "preparing"
	OrderStatusReady     = "ready"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// ActiveOrderStatuses are the statuses whose items count as on-hand stock
// for meal suggestions.
func ActiveOrderStatuses() []string {
	return []string{OrderStatusConfirmed, OrderStatusPreparing, OrderStatusReady, OrderStatusDelivered}
}

type Order struct {
	ID        uint        `gorm:"primaryKey"`
	MemberID  uint        `gorm:"not null;index"`
	Status    string      `gorm:"not null;default:pending"`
	Items     []OrderItem `gorm:"foreignKey:OrderID"`
	CreatedAt time.Time   `gorm:"not null"`
	UpdatedAt time.Time
}

type OrderItem struct {
	ID       uint   `gorm:"primaryKey"`
	OrderID  uint   `gorm:"not null;index"`
	Name     string `gorm:"not null"`
	Calories float64
	Protein  float64
	Quantity int `gorm:"not null;default:1"`
}
