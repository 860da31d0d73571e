// Package cart implements the client-side shopping basket: an ephemeral,
// quantity-bounded list of product snapshots. State is only changed through
// the reducer functions, which return a new State and leave the receiver
// untouched. Nothing here reserves stock server-side; quantities are clamped
// against the snapshot captured at fetch time.
package cart

import (
	"encoding/json"

	"github.com/google/uuid"

	"marketplace/internal/models"
)

type Item struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

type State struct {
	Items []Item `json:"items"`
}

func New() State {
	return State{Items: []Item{}}
}

// Add inserts the product with quantity 1, or increments an existing line up
// to the product's stock. Adding past stock is a no-op.
func (s State) Add(p models.Product) State {
	next := s.clone()
	for i, item := range next.Items {
		if item.Product.ID == p.ID {
			if item.Quantity < item.Product.Quantity {
				next.Items[i].Quantity++
			}
			return next
		}
	}
	if p.Quantity < 1 {
		return next
	}
	next.Items = append(next.Items, Item{Product: p, Quantity: 1})
	return next
}

// UpdateQuantity clamps quantity to [0, stock] and drops the line when the
// clamped value is zero or less.
func (s State) UpdateQuantity(productID uuid.UUID, quantity int) State {
	next := s.clone()
	for i, item := range next.Items {
		if item.Product.ID != productID {
			continue
		}
		if quantity > item.Product.Quantity {
			quantity = item.Product.Quantity
		}
		if quantity <= 0 {
			next.Items = append(next.Items[:i], next.Items[i+1:]...)
			return next
		}
		next.Items[i].Quantity = quantity
		return next
	}
	return next
}

func (s State) Remove(productID uuid.UUID) State {
	next := State{Items: make([]Item, 0, len(s.Items))}
	for _, item := range s.Items {
		if item.Product.ID != productID {
			next.Items = append(next.Items, item)
		}
	}
	return next
}

func (s State) Clear() State {
	return New()
}

// Total is computed on demand, never stored.
func (s State) Total() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

func (s State) Count() int {
	var n int
	for _, item := range s.Items {
		n += item.Quantity
	}
	return n
}

// Snapshot and Restore mirror the browser's local-storage persistence.
func (s State) Snapshot() ([]byte, error) {
	return json.Marshal(s)
}

func Restore(data []byte) (State, error) {
	var s State
	if err := json.Unmarshal(data, &s); err != nil {
		return New(), err
	}
	if s.Items == nil {
		s.Items = []Item{}
	}
	return s, nil
}

func (s State) clone() State {
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return State{Items: items}
}
