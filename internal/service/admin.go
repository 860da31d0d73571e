package service

import (
	"context"

	"github.com/google/uuid"

	"marketplace/internal/apperr"
	"marketplace/internal/models"
	"marketplace/internal/repo"
	"marketplace/internal/transport"
)

// AdminService composes read-only cross-entity views for operators.
type AdminService struct {
	Repo    *repo.GormRepo
	Catalog *CatalogService
}

func (s *AdminService) GetAllProducts(ctx context.Context, sellerFilter *uuid.UUID) ([]models.Product, error) {
	return s.Catalog.FindAll(ctx, sellerFilter)
}

// GetAllSellers strips every field except id and email before anything leaves
// the directory.
func (s *AdminService) GetAllSellers(ctx context.Context) ([]transport.SellerResponse, error) {
	users, err := s.Repo.FindUsersByRole(ctx, models.RoleSeller)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	sellers := make([]transport.SellerResponse, len(users))
	for i, u := range users {
		sellers[i] = transport.SellerResponse{ID: u.ID, Email: u.Email}
	}
	return sellers, nil
}
