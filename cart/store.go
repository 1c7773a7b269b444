// Package cart holds the per-session shopping cart: an ordered list of line
// items keyed by product id, with the total derived from item state on every
// read.
package cart

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidQuantity rejects add/update calls with a quantity below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrUnknownProduct rejects quantity updates for products not in the cart.
	ErrUnknownProduct = errors.New("product not in cart")
)

// IsInvalidOperation reports whether err is a rejected cart mutation. Rejected
// calls never partially apply.
func IsInvalidOperation(err error) bool {
	return errors.Is(err, ErrInvalidQuantity) || errors.Is(err, ErrUnknownProduct)
}

type Item struct {
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	AddedAt     time.Time
}

// Store is the authoritative mutable cart for one identity. It is not safe
// for concurrent use; a cart belongs to a single interactive session.
type Store struct {
	items []Item
	now   func() time.Time
}

func NewStore() *Store {
	return &Store{now: time.Now}
}

// Load builds a store from persisted items, keeping their order.
func Load(items []Item) *Store {
	s := NewStore()
	s.items = append(s.items, items...)
	return s
}

// AddItem appends a line item with the product's price snapshotted at call
// time. Re-adding a product increments the existing quantity instead of
// duplicating the line.
func (s *Store) AddItem(productID, name string, unitPrice decimal.Decimal, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("add %q: %w", productID, ErrInvalidQuantity)
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity += quantity
			s.items[i].AddedAt = s.now()
			return nil
		}
	}
	s.items = append(s.items, Item{
		ProductID:   productID,
		ProductName: name,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
		AddedAt:     s.now(),
	})
	return nil
}

// UpdateQuantity sets the quantity for a product already in the cart. The
// store enforces a floor of 1; removal is explicit via RemoveItem.
func (s *Store) UpdateQuantity(productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("update %q: %w", productID, ErrInvalidQuantity)
	}
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items[i].Quantity = quantity
			return nil
		}
	}
	return fmt.Errorf("update %q: %w", productID, ErrUnknownProduct)
}

// RemoveItem deletes the entry for productID. Absent entries are a no-op.
func (s *Store) RemoveItem(productID string) {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Used after a confirmed checkout.
func (s *Store) Clear() {
	s.items = nil
}

// Items returns a snapshot copy; later cart mutations do not affect it.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}

// Total recomputes the cart total from current item state. It is never
// cached.
func (s *Store) Total() decimal.Decimal {
	return Total(s.items)
}
