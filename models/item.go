package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Item struct {
	ID          uint                `gorm:"primaryKey;autoIncrement"`
	Name        string              `gorm:"index;not null"`
	Price       decimal.NullDecimal `gorm:"type:decimal(12,2)"` // Valid=false means the item cannot be sold yet
	Inventory   int
	Description string
	CategoryID  *uint     `gorm:"index"`
	Category    *Category `gorm:"constraint:OnDelete:SET NULL"` // items outlive their category
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
