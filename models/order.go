package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	// Placed orders start here; nothing moves them further yet.
	OrderStatusPending OrderStatus = "PENDING"
)

type Order struct {
	ID          uint            `gorm:"primaryKey"`
	OrderRef    string          `gorm:"uniqueIndex;size:64"`
	OrderDate   time.Time       `gorm:"not null"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Status      OrderStatus     `gorm:"type:VARCHAR(20);default:'PENDING'"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

type OrderItem struct {
	ID       uint `gorm:"primaryKey"`
	OrderID  uint `gorm:"index"`
	ItemID   uint `gorm:"index"`
	ItemName string
	Quantity int
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// LineTotal is Price × Quantity.
func (oi OrderItem) LineTotal() decimal.Decimal {
	return oi.Price.Mul(decimal.NewFromInt(int64(oi.Quantity)))
}
