package services

import (
	"context"

	"github.com/junaidrashid-git/shop-api/apperr"
	"github.com/junaidrashid-git/shop-api/dto"
	"github.com/junaidrashid-git/shop-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CartCreator persists a new empty cart. Swappable so the retry policy can
// be exercised against a store that reports conflicts.
type CartCreator interface {
	CreateCart(ctx context.Context) (*models.Cart, error)
}

type gormCartCreator struct {
	db *gorm.DB
}

func (g gormCartCreator) CreateCart(ctx context.Context) (*models.Cart, error) {
	cart := models.Cart{TotalAmount: decimal.Zero}
	if err := g.db.WithContext(ctx).Create(&cart).Error; err != nil {
		return nil, apperr.FromDB("cart.Create", "Failed to create cart", err)
	}
	return &cart, nil
}

type CartService struct {
	db      *gorm.DB
	creator CartCreator
	retry   RetryPolicy
}

func NewCartService(db *gorm.DB, retry RetryPolicy) *CartService {
	return &CartService{db: db, creator: gormCartCreator{db: db}, retry: retry}
}

// WithCreator replaces the cart creator.
func (s *CartService) WithCreator(c CartCreator) *CartService {
	s.creator = c
	return s
}

// InitializeNewCart creates an empty cart, retrying on optimistic-lock
// conflicts up to the policy's attempt limit.
func (s *CartService) InitializeNewCart(ctx context.Context) (*models.Cart, error) {
	return Retry(ctx, s.retry, "cart.Initialize", s.creator.CreateCart)
}

func (s *CartService) GetCart(ctx context.Context, cartID uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Items.Item").
		First(&cart, cartID).Error
	if err != nil {
		return nil, apperr.FromDB("cart.Get", "Cart not found", err)
	}
	return &cart, nil
}

func (s *CartService) GetCartDto(ctx context.Context, cartID uint) (dto.CartDto, error) {
	cart, err := s.GetCart(ctx, cartID)
	if err != nil {
		return dto.CartDto{}, err
	}
	return dto.FromCart(*cart), nil
}

func (s *CartService) GetTotalPrice(ctx context.Context, cartID uint) (decimal.Decimal, error) {
	var cart models.Cart
	if err := s.db.WithContext(ctx).First(&cart, cartID).Error; err != nil {
		return decimal.Zero, apperr.FromDB("cart.TotalPrice", "Cart not found", err)
	}
	return cart.TotalAmount, nil
}

// ClearCart removes every line and then the cart itself.
func (s *CartService) ClearCart(ctx context.Context, cartID uint) error {
	const op = "cart.Clear"
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := loadCart(tx, op, cartID); err != nil {
			return err
		}
		if err := tx.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		if err := tx.Delete(&models.Cart{}, cartID).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		return nil
	})
}

func loadCart(tx *gorm.DB, op string, cartID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := tx.First(&cart, cartID).Error; err != nil {
		return nil, apperr.FromDB(op, "Cart not found", err)
	}
	return &cart, nil
}

// saveCartTotal recomputes the cart total from its lines and writes it back.
func saveCartTotal(tx *gorm.DB, op string, cart *models.Cart) error {
	var lines []models.CartItem
	if err := tx.Where("cart_id = ?", cart.ID).Find(&lines).Error; err != nil {
		return apperr.FromDB(op, "", err)
	}
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.TotalPrice)
	}
	return writeCart(tx, op, cart, total)
}

// emptyCart drops all lines but keeps the cart row, with a zero total.
func emptyCart(tx *gorm.DB, op string, cart *models.Cart) error {
	if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
		return apperr.FromDB(op, "", err)
	}
	return writeCart(tx, op, cart, decimal.Zero)
}

// writeCart stores total and bumps the version, failing with Conflict if
// another writer got there first.
func writeCart(tx *gorm.DB, op string, cart *models.Cart, total decimal.Decimal) error {
	res := tx.Model(&models.Cart{}).
		Where("id = ? AND version = ?", cart.ID, cart.Version).
		Updates(map[string]interface{}{
			"total_amount": total,
			"version":      cart.Version + 1,
		})
	if res.Error != nil {
		return apperr.FromDB(op, "", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.E(op, apperr.Conflict, "Cart was modified concurrently, please retry")
	}
	cart.Version++
	cart.TotalAmount = total
	return nil
}
