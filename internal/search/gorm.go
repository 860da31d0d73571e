package search

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"marketplace/internal/models"
)

// GormSearcher is the primary adapter: criteria become LIKE / BETWEEN clauses
// executed by the relational store.
type GormSearcher struct {
	DB *gorm.DB
}

func (s *GormSearcher) Search(ctx context.Context, spec FilterSpec) ([]models.Product, error) {
	tx := s.DB.WithContext(ctx).Model(&models.Product{}).Preload("Seller")

	if name := spec.Name; name != "" {
		tx = tx.Where("name LIKE ?", "%"+name+"%")
	}
	if sku := spec.SKU; sku != "" {
		tx = tx.Where("sku LIKE ?", "%"+sku+"%")
	}
	if min, max, ok := spec.PriceRange(); ok {
		tx = tx.Where("price BETWEEN ? AND ?", min, max)
	}

	items := []models.Product{}
	if err := tx.Order("created_at DESC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	return items, nil
}
