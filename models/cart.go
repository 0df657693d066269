package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Cart struct {
	ID          uint            `gorm:"primaryKey"`
	Version     uint            `gorm:"not null;default:0"` // bumped on every write, checked in the WHERE clause
	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Items       []CartItem      `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CartItem struct {
	ID         uint            `gorm:"primaryKey"`
	CartID     uint            `gorm:"uniqueIndex:idx_cart_item;not null"` // one line per item in a cart
	ItemID     uint            `gorm:"uniqueIndex:idx_cart_item;not null"`
	Item       Item            `gorm:"constraint:OnDelete:RESTRICT"`
	Quantity   int             `gorm:"not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"` // snapshot of Item.Price
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	AddedAt    time.Time
}

// Recalculate sets TotalPrice from UnitPrice and Quantity.
func (ci *CartItem) Recalculate() {
	ci.TotalPrice = ci.UnitPrice.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
