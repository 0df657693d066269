package services

import (
	"testing"

	"github.com/junaidrashid-git/shop-api/database"
	"github.com/junaidrashid-git/shop-api/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return setupNamedDB(t, t.Name())
}

func setupNamedDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := database.OpenMemory(name)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedItem(t *testing.T, db *gorm.DB, name, price string, inventory int) models.Item {
	t.Helper()
	item := models.Item{Name: name, Inventory: inventory}
	if price != "" {
		item.Price = decimal.NewNullDecimal(decimal.RequireFromString(price))
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

type fixture struct {
	db     *gorm.DB
	carts  *CartService
	lines  *CartItemService
	orders *OrderService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := setupTestDB(t)
	carts := NewCartService(db, RetryPolicy{MaxAttempts: 3})
	return fixture{
		db:     db,
		carts:  carts,
		lines:  NewCartItemService(db, carts),
		orders: NewOrderService(db, false),
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func reloadItem(t *testing.T, db *gorm.DB, id uint) models.Item {
	t.Helper()
	var item models.Item
	require.NoError(t, db.First(&item, id).Error)
	return item
}
