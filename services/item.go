package services

import (
	"context"
	"strings"

	"github.com/junaidrashid-git/shop-api/apperr"
	"github.com/junaidrashid-git/shop-api/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemInput is the writable part of an item. A nil Price leaves the item
// without a price; an empty CategoryName leaves it uncategorised.
type ItemInput struct {
	Name         string
	Price        *decimal.Decimal
	Inventory    int
	Description  string
	CategoryName string
}

func (in ItemInput) validate(op string) error {
	if strings.TrimSpace(in.Name) == "" {
		return apperr.E(op, apperr.InvalidArgument, "Item name is required")
	}
	if in.Price != nil && in.Price.IsNegative() {
		return apperr.E(op, apperr.InvalidArgument, "Price must not be negative")
	}
	if in.Inventory < 0 {
		return apperr.E(op, apperr.InvalidArgument, "Inventory must not be negative")
	}
	return nil
}

// apply copies the input onto item, resolving the category inside tx.
func (in ItemInput) apply(tx *gorm.DB, op string, item *models.Item) error {
	item.Name = strings.TrimSpace(in.Name)
	item.Description = in.Description
	item.Inventory = in.Inventory
	item.Price = decimal.NullDecimal{}
	if in.Price != nil {
		item.Price = decimal.NewNullDecimal(in.Price.Round(2))
	}

	item.CategoryID, item.Category = nil, nil
	if name := strings.TrimSpace(in.CategoryName); name != "" {
		cat, err := findOrCreateCategory(tx, op, name)
		if err != nil {
			return err
		}
		item.CategoryID, item.Category = &cat.ID, cat
	}
	return nil
}

type ItemService struct {
	db *gorm.DB
}

func NewItemService(db *gorm.DB) *ItemService {
	return &ItemService{db: db}
}

func (s *ItemService) AddItem(ctx context.Context, in ItemInput) (*models.Item, error) {
	const op = "item.Add"
	if err := in.validate(op); err != nil {
		return nil, err
	}

	var item models.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := in.apply(tx, op, &item); err != nil {
			return err
		}
		if err := tx.Omit("Category").Create(&item).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *ItemService) UpdateItem(ctx context.Context, id uint, in ItemInput) (*models.Item, error) {
	const op = "item.Update"
	if err := in.validate(op); err != nil {
		return nil, err
	}

	var item models.Item
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, id).Error; err != nil {
			return apperr.FromDB(op, "Item not found", err)
		}
		if err := in.apply(tx, op, &item); err != nil {
			return err
		}
		if err := tx.Omit("Category").Save(&item).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem refuses to delete items that carts or orders still point at.
func (s *ItemService) DeleteItem(ctx context.Context, id uint) error {
	const op = "item.Delete"
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var item models.Item
		if err := tx.First(&item, id).Error; err != nil {
			return apperr.FromDB(op, "Item not found", err)
		}

		var inCarts, inOrders int64
		if err := tx.Model(&models.CartItem{}).Where("item_id = ?", id).Count(&inCarts).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		if err := tx.Model(&models.OrderItem{}).Where("item_id = ?", id).Count(&inOrders).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		if inCarts+inOrders > 0 {
			return apperr.E(op, apperr.Conflict, "Item is referenced by carts or orders and cannot be deleted")
		}

		if err := tx.Delete(&item).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		return nil
	})
}

func (s *ItemService) GetAllItems(ctx context.Context) ([]models.Item, error) {
	var items []models.Item
	if err := s.db.WithContext(ctx).Preload("Category").Order("id").Find(&items).Error; err != nil {
		return nil, apperr.FromDB("item.GetAll", "", err)
	}
	return items, nil
}

func (s *ItemService) GetItemByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := s.db.WithContext(ctx).Preload("Category").First(&item, id).Error; err != nil {
		return nil, apperr.FromDB("item.GetByID", "Item not found", err)
	}
	return &item, nil
}

func (s *ItemService) GetItemsByName(ctx context.Context, name string) ([]models.Item, error) {
	var items []models.Item
	err := s.db.WithContext(ctx).Preload("Category").
		Where("name = ?", strings.TrimSpace(name)).Order("id").Find(&items).Error
	if err != nil {
		return nil, apperr.FromDB("item.GetByName", "", err)
	}
	if len(items) == 0 {
		return nil, apperr.E("item.GetByName", apperr.NotFound, "No items found with name: "+name)
	}
	return items, nil
}

func (s *ItemService) GetItemsByCategory(ctx context.Context, category string) ([]models.Item, error) {
	var items []models.Item
	err := s.db.WithContext(ctx).Preload("Category").
		Select("items.*").
		Joins("JOIN categories ON categories.id = items.category_id").
		Where("categories.name = ?", strings.TrimSpace(category)).
		Order("items.id").
		Find(&items).Error
	if err != nil {
		return nil, apperr.FromDB("item.GetByCategory", "", err)
	}
	if len(items) == 0 {
		return nil, apperr.E("item.GetByCategory", apperr.NotFound, "No items found in category: "+category)
	}
	return items, nil
}

func (s *ItemService) CountItemsByName(ctx context.Context, name string) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&models.Item{}).
		Where("name = ?", strings.TrimSpace(name)).Count(&count).Error
	if err != nil {
		return 0, apperr.FromDB("item.CountByName", "", err)
	}
	return count, nil
}
