package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/shop-api/apperr"
	"github.com/junaidrashid-git/shop-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type OrderService struct {
	db             *gorm.DB
	allowBackorder bool
	now            func() time.Time
}

func NewOrderService(db *gorm.DB, allowBackorder bool) *OrderService {
	return &OrderService{db: db, allowBackorder: allowBackorder, now: time.Now}
}

// Generate unique order reference, e.g. 20250908130500-<uuid4>
func generateOrderRef(at time.Time) string {
	return at.Format("20060102150405") + "-" + uuid.NewString()
}

// lockForUpdate adds SELECT ... FOR UPDATE on dialects that support it.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

// PlaceOrder turns the cart into a PENDING order in one transaction:
// inventory is decremented per line, the order total is the sum of the line
// totals and the cart is left empty.
func (s *OrderService) PlaceOrder(ctx context.Context, cartID uint) (*models.Order, error) {
	const op = "order.Place"
	var order models.Order

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := loadCart(tx, op, cartID)
		if err != nil {
			return err
		}

		var lines []models.CartItem
		if err := tx.Where("cart_id = ?", cart.ID).Order("id").Find(&lines).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		if len(lines) == 0 {
			return apperr.E(op, apperr.InvalidState, "Cart is empty")
		}

		// lock and check every item before touching any of them
		items := make(map[uint]models.Item, len(lines))
		for _, line := range lines {
			var item models.Item
			if err := lockForUpdate(tx).First(&item, line.ItemID).Error; err != nil {
				return apperr.FromDB(op, "Item not found", err)
			}
			if !s.allowBackorder && item.Inventory < line.Quantity {
				return apperr.E(op, apperr.InvalidState, fmt.Sprintf(
					"insufficient stock for item: %s (requested %d, available %d)",
					item.Name, line.Quantity, item.Inventory))
			}
			items[line.ItemID] = item
		}

		now := s.now()
		order = models.Order{
			OrderRef:  generateOrderRef(now),
			OrderDate: now,
			Status:    models.OrderStatusPending,
		}
		total := decimal.Zero
		for _, line := range lines {
			item := items[line.ItemID]
			if err := tx.Model(&models.Item{}).Where("id = ?", item.ID).
				UpdateColumn("inventory", gorm.Expr("inventory - ?", line.Quantity)).Error; err != nil {
				return apperr.FromDB(op, "", err)
			}

			oi := models.OrderItem{
				ItemID:   item.ID,
				ItemName: item.Name,
				Quantity: line.Quantity,
				Price:    line.UnitPrice,
			}
			total = total.Add(oi.LineTotal())
			order.Items = append(order.Items, oi)
		}
		order.TotalAmount = total

		if err := tx.Create(&order).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		return emptyCart(tx, op, cart)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*models.Order, error) {
	var order models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&order, orderID).Error
	if err != nil {
		return nil, apperr.FromDB("order.Get", "Order not found", err)
	}
	return &order, nil
}

func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, apperr.FromDB("order.GetAll", "", err)
	}
	return orders, nil
}
