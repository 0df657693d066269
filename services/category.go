package services

import (
	"context"
	"errors"
	"strings"

	"github.com/junaidrashid-git/shop-api/apperr"
	"github.com/junaidrashid-git/shop-api/models"
	"gorm.io/gorm"
)

type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) AddCategory(ctx context.Context, name string) (*models.Category, error) {
	const op = "category.Add"
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.E(op, apperr.InvalidArgument, "Category name is required")
	}

	var cat models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureNameFree(tx, op, name, 0); err != nil {
			return err
		}
		cat = models.Category{Name: name}
		if err := tx.Create(&cat).Error; err != nil {
			return categoryDBError(op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *CategoryService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := s.db.WithContext(ctx).Order("id").Find(&cats).Error; err != nil {
		return nil, apperr.FromDB("category.GetAll", "", err)
	}
	return cats, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uint) (*models.Category, error) {
	var cat models.Category
	if err := s.db.WithContext(ctx).First(&cat, id).Error; err != nil {
		return nil, apperr.FromDB("category.GetByID", "Category not found", err)
	}
	return &cat, nil
}

func (s *CategoryService) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	var cat models.Category
	if err := s.db.WithContext(ctx).Where("name = ?", strings.TrimSpace(name)).First(&cat).Error; err != nil {
		return nil, apperr.FromDB("category.GetByName", "Category not found", err)
	}
	return &cat, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uint, name string) (*models.Category, error) {
	const op = "category.Update"
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.E(op, apperr.InvalidArgument, "Category name is required")
	}

	var cat models.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&cat, id).Error; err != nil {
			return apperr.FromDB(op, "Category not found", err)
		}
		if err := ensureNameFree(tx, op, name, id); err != nil {
			return err
		}
		cat.Name = name
		if err := tx.Save(&cat).Error; err != nil {
			return categoryDBError(op, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

// DeleteCategory removes the category and unlinks its items; the items stay.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	const op = "category.Delete"
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cat models.Category
		if err := tx.First(&cat, id).Error; err != nil {
			return apperr.FromDB(op, "Category not found", err)
		}
		if err := tx.Model(&models.Item{}).Where("category_id = ?", id).
			Update("category_id", nil).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		if err := tx.Delete(&cat).Error; err != nil {
			return apperr.FromDB(op, "", err)
		}
		return nil
	})
}

// findOrCreateCategory returns the category called name, creating it when absent.
func findOrCreateCategory(tx *gorm.DB, op, name string) (*models.Category, error) {
	var cat models.Category
	err := tx.Where("name = ?", name).First(&cat).Error
	if err == nil {
		return &cat, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.FromDB(op, "", err)
	}
	cat = models.Category{Name: name}
	if err := tx.Create(&cat).Error; err != nil {
		return nil, categoryDBError(op, err)
	}
	return &cat, nil
}

func ensureNameFree(tx *gorm.DB, op, name string, exceptID uint) error {
	var count int64
	if err := tx.Model(&models.Category{}).Where("name = ? AND id <> ?", name, exceptID).
		Count(&count).Error; err != nil {
		return apperr.FromDB(op, "", err)
	}
	if count > 0 {
		return apperr.E(op, apperr.AlreadyExists, "Category already exists: "+name)
	}
	return nil
}

func categoryDBError(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Wrap(op, apperr.AlreadyExists, "Category already exists", err)
	}
	return apperr.FromDB(op, "", err)
}
