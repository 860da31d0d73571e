// Package search translates optional catalog filter criteria into a bounded
// store query. The translation sits behind ProductSearcher so the backing
// engine (Postgres LIKE/BETWEEN or Elasticsearch) stays swappable.
package search

import (
	"context"
	"strings"

	"marketplace/internal/models"
)

// MaxPriceSentinel caps an open-ended price range. It only ever appears in
// query predicates, never in stored rows.
const MaxPriceSentinel = 1e12

type FilterSpec struct {
	Name     string
	SKU      string
	MinPrice *float64
	MaxPrice *float64
}

type ProductSearcher interface {
	Search(ctx context.Context, spec FilterSpec) ([]models.Product, error)
}

func (s FilterSpec) Empty() bool {
	return strings.TrimSpace(s.Name) == "" &&
		strings.TrimSpace(s.SKU) == "" &&
		s.MinPrice == nil && s.MaxPrice == nil
}

// PriceRange resolves the closed [min, max] filter, defaulting missing bounds
// to 0 and MaxPriceSentinel. ok is false when neither bound was given.
func (s FilterSpec) PriceRange() (min, max float64, ok bool) {
	if s.MinPrice == nil && s.MaxPrice == nil {
		return 0, 0, false
	}
	min, max = 0, MaxPriceSentinel
	if s.MinPrice != nil {
		min = *s.MinPrice
	}
	if s.MaxPrice != nil {
		max = *s.MaxPrice
	}
	return min, max, true
}
