package service

import (
	"context"
	"errors"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/google/uuid"

	"marketplace/internal/apperr"
	"marketplace/internal/cache"
	"marketplace/internal/events"
	"marketplace/internal/logging"
	"marketplace/internal/models"
	"marketplace/internal/repo"
	"marketplace/internal/search"
)

type CatalogService struct {
	Repo     *repo.GormRepo
	Searcher search.ProductSearcher
	Producer *events.Producer

	// Cache and ES are optional; nil disables them.
	Cache   cache.ProductCache
	ES      *elasticsearch.Client
	ESIndex string
}

type CreateProductInput struct {
	Name     string
	SKU      string
	Quantity int
	Price    float64
}

func (s *CatalogService) Create(ctx context.Context, input CreateProductInput, ownerID uuid.UUID) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.create")

	product := models.Product{
		Name:     input.Name,
		SKU:      input.SKU,
		Quantity: input.Quantity,
		Price:    input.Price,
		SellerID: ownerID,
	}
	if err := s.Repo.CreateProduct(ctx, &product); err != nil {
		if errors.Is(err, apperr.ErrSKUTaken) {
			l.Warn("create_product_error", "status", 409, "reason", "sku already exists", "sku", input.SKU)
			return nil, err
		}
		l.Error("create_product_error", "status", 500, "reason", "cannot add product to db", "error", err)
		return nil, apperr.Internal(err)
	}

	if s.ES != nil {
		if err := search.IndexProduct(ctx, s.ES, s.ESIndex, &product); err != nil {
			l.Error("es_index_error", "productID", product.ID, "error", err)
		}
	}

	event := map[string]any{
		"type":      "product_created",
		"productID": product.ID,
		"sellerID":  ownerID,
		"sku":       product.SKU,
	}
	if err := s.Producer.PublishEvent(ctx, events.TopicProductEvents, ownerID.String(), event); err != nil {
		l.Error("kafka_publish_error", "topic", events.TopicProductEvents, "error", err)
	}

	l.Info("create_product_success", "productID", product.ID)
	return &product, nil
}

func (s *CatalogService) FindOwn(ctx context.Context, sellerID uuid.UUID) ([]models.Product, error) {
	items, err := s.Repo.FindOwnProducts(ctx, sellerID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *CatalogService) FindAll(ctx context.Context, sellerFilter *uuid.UUID) ([]models.Product, error) {
	items, err := s.Repo.FindAllProducts(ctx, sellerFilter)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return items, nil
}

func (s *CatalogService) FindOne(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	l := logging.FromContext(ctx).With("svc", "catalog.find_one")

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, id.String())
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			l.Warn("cache_get_error", "productID", id, "error", err)
		}
	}

	product, err := s.Repo.FindProduct(ctx, id)
	if err != nil {
		if errors.Is(err, apperr.ErrProductNotFound) {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}

	if s.Cache != nil {
		if err := s.Cache.Set(ctx, id.String(), product); err != nil {
			l.Warn("cache_set_error", "productID", id, "error", err)
		}
	}
	return product, nil
}

func (s *CatalogService) Search(ctx context.Context, spec search.FilterSpec) ([]models.Product, error) {
	items, err := s.Searcher.Search(ctx, spec)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if items == nil {
		items = []models.Product{}
	}
	return items, nil
}
