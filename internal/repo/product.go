package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
)

func (r *GormRepo) CreateProduct(ctx context.Context, p *models.Product) error {
	if err := r.DB.WithContext(ctx).Create(p).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrSKUTaken
		}
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

func (r *GormRepo) FindOwnProducts(ctx context.Context, sellerID uuid.UUID) ([]models.Product, error) {
	items := []models.Product{}
	if err := r.DB.WithContext(ctx).
		Preload("Seller").
		Where("seller_id = ?", sellerID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find own products: %w", err)
	}
	return items, nil
}

// FindAllProducts is the unrestricted listing used by the admin views; the
// caller is responsible for the role check.
func (r *GormRepo) FindAllProducts(ctx context.Context, sellerFilter *uuid.UUID) ([]models.Product, error) {
	tx := r.DB.WithContext(ctx).Preload("Seller")
	if sellerFilter != nil {
		tx = tx.Where("seller_id = ?", *sellerFilter)
	}

	items := []models.Product{}
	if err := tx.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("find all products: %w", err)
	}
	return items, nil
}

func (r *GormRepo) FindProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var product models.Product
	if err := r.DB.WithContext(ctx).Preload("Seller").Where("id = ?", id).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}
