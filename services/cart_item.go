package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/junaidrashid-git/shop-api/apperr"
	"github.com/junaidrashid-git/shop-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ItemRef points at an item by id or, when ID is zero, by name.
type ItemRef struct {
	ID   uint
	Name string
}

func (r ItemRef) validate(op string) error {
	if r.ID == 0 && strings.TrimSpace(r.Name) == "" {
		return apperr.E(op, apperr.InvalidArgument, "item_id or item_name is required")
	}
	return nil
}

// MaxLineQuantity caps a single cart line.
const MaxLineQuantity = 10000

func validateQuantity(op string, qty int) error {
	if qty <= 0 {
		return apperr.E(op, apperr.InvalidArgument, "Quantity must be a positive integer")
	}
	if qty > MaxLineQuantity {
		return apperr.E(op, apperr.InvalidArgument, fmt.Sprintf("Quantity must not exceed %d", MaxLineQuantity))
	}
	return nil
}

type CartItemService struct {
	db    *gorm.DB
	carts *CartService
}

func NewCartItemService(db *gorm.DB, carts *CartService) *CartItemService {
	return &CartItemService{db: db, carts: carts}
}

// AddItemToCart merges qty into the cart's line for the item, or creates a
// line with the item's current price. Returns the updated cart.
func (s *CartItemService) AddItemToCart(ctx context.Context, cartID uint, ref ItemRef, qty int) (*models.Cart, error) {
	const op = "cartItem.Add"
	if err := validateQuantity(op, qty); err != nil {
		return nil, err
	}
	if err := ref.validate(op); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := loadCart(tx, op, cartID)
		if err != nil {
			return err
		}
		item, err := resolveItem(tx, op, ref)
		if err != nil {
			return err
		}
		if !item.Price.Valid {
			return apperr.E(op, apperr.InvalidState, "Item has no price: "+item.Name)
		}

		var line models.CartItem
		err = tx.Where("cart_id = ? AND item_id = ?", cart.ID, item.ID).First(&line).Error
		switch {
		case err == nil:
			if qty > MaxLineQuantity-line.Quantity {
				return apperr.E(op, apperr.InvalidArgument, fmt.Sprintf("Quantity must not exceed %d", MaxLineQuantity))
			}
			line.Quantity += qty
			line.Recalculate()
			if err := tx.Model(&line).Omit(clause.Associations).Updates(map[string]interface{}{
				"quantity":    line.Quantity,
				"total_price": line.TotalPrice,
			}).Error; err != nil {
				return apperr.FromDB(op, "", err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = models.CartItem{
				CartID:    cart.ID,
				ItemID:    item.ID,
				Quantity:  qty,
				UnitPrice: item.Price.Decimal,
				AddedAt:   time.Now(),
			}
			line.Recalculate()
			if err := tx.Omit(clause.Associations).Create(&line).Error; err != nil {
				return apperr.FromDB(op, "", err)
			}
		default:
			return apperr.FromDB(op, "", err)
		}

		return saveCartTotal(tx, op, cart)
	})
	if err != nil {
		return nil, err
	}
	return s.carts.GetCart(ctx, cartID)
}

// AddItemAndInitialize adds to cartID, creating a cart first when cartID is
// nil. A cart created here is removed again if the add fails.
func (s *CartItemService) AddItemAndInitialize(ctx context.Context, cartID *uint, ref ItemRef, qty int) (*models.Cart, error) {
	const op = "cartItem.AddAndInitialize"
	if cartID != nil {
		return s.AddItemToCart(ctx, *cartID, ref, qty)
	}
	if err := validateQuantity(op, qty); err != nil {
		return nil, err
	}
	if err := ref.validate(op); err != nil {
		return nil, err
	}

	cart, err := s.carts.InitializeNewCart(ctx)
	if err != nil {
		return nil, err
	}
	updated, err := s.AddItemToCart(ctx, cart.ID, ref, qty)
	if err != nil {
		if cerr := s.carts.ClearCart(ctx, cart.ID); cerr != nil {
			log.Printf("❌ Failed to discard cart %d: %v", cart.ID, cerr)
		}
		return nil, err
	}
	return updated, nil
}

// RemoveItemFromCart deletes the cart's line for the item.
func (s *CartItemService) RemoveItemFromCart(ctx context.Context, cartID uint, ref ItemRef) (*models.Cart, error) {
	const op = "cartItem.Remove"
	if err := ref.validate(op); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := loadCart(tx, op, cartID)
		if err != nil {
			return err
		}
		line, err := findLine(tx, op, cart.ID, ref)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.CartItem{}, line.ID).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		return saveCartTotal(tx, op, cart)
	})
	if err != nil {
		return nil, err
	}
	return s.carts.GetCart(ctx, cartID)
}

// UpdateItemQuantity sets the line's quantity and re-reads the unit price
// from the item. A missing line is NotFound.
func (s *CartItemService) UpdateItemQuantity(ctx context.Context, cartID uint, ref ItemRef, qty int) (*models.Cart, error) {
	const op = "cartItem.UpdateQuantity"
	if err := validateQuantity(op, qty); err != nil {
		return nil, err
	}
	if err := ref.validate(op); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cart, err := loadCart(tx, op, cartID)
		if err != nil {
			return err
		}
		line, err := findLine(tx, op, cart.ID, ref)
		if err != nil {
			return err
		}
		var item models.Item
		if err := tx.First(&item, line.ItemID).Error; err != nil {
			return apperr.FromDB(op, "Item not found", err)
		}
		if !item.Price.Valid {
			return apperr.E(op, apperr.InvalidState, "Item has no price: "+item.Name)
		}

		line.Quantity = qty
		line.UnitPrice = item.Price.Decimal
		line.Recalculate()
		if err := tx.Model(line).Omit(clause.Associations).Updates(map[string]interface{}{
			"quantity":    line.Quantity,
			"unit_price":  line.UnitPrice,
			"total_price": line.TotalPrice,
		}).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		return saveCartTotal(tx, op, cart)
	})
	if err != nil {
		return nil, err
	}
	return s.carts.GetCart(ctx, cartID)
}

// resolveItem looks an item up by id, or by name picking the lowest id.
func resolveItem(tx *gorm.DB, op string, ref ItemRef) (*models.Item, error) {
	var item models.Item
	var err error
	if ref.ID != 0 {
		err = tx.First(&item, ref.ID).Error
	} else {
		err = tx.Where("name = ?", strings.TrimSpace(ref.Name)).Order("id").First(&item).Error
	}
	if err != nil {
		return nil, apperr.FromDB(op, "Item not found", err)
	}
	return &item, nil
}

// findLine finds the cart's line for ref. Names are matched among the
// items already in the cart.
func findLine(tx *gorm.DB, op string, cartID uint, ref ItemRef) (*models.CartItem, error) {
	q := tx.Where("cart_id = ?", cartID)
	if ref.ID != 0 {
		q = q.Where("item_id = ?", ref.ID)
	} else {
		q = q.Where("item_id IN (?)",
			tx.Session(&gorm.Session{NewDB: true}).Model(&models.Item{}).Select("id").Where("name = ?", strings.TrimSpace(ref.Name)))
	}

	var line models.CartItem
	if err := q.Order("item_id").First(&line).Error; err != nil {
		return nil, apperr.FromDB(op, "Item not found in cart", err)
	}
	return &line, nil
}
