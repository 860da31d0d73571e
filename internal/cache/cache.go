package cache

import (
	"context"
	"errors"

	"marketplace/internal/models"
)

type ProductCache interface {
	Get(ctx context.Context, id string) (*models.Product, error)
	Set(ctx context.Context, id string, product *models.Product) error
}

var ErrCacheMiss = errors.New("cache miss")
