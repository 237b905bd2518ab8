package cart

import (
	"context"

	"soyhub-be/internal/logger"
	"soyhub-be/internal/product"

	"go.uber.org/zap"
)

// Service defines the business logic for carts.
type Service interface {
	Add(ctx context.Context, userID int, productID string) (*Item, error)
	Remove(ctx context.Context, userID int, productID string) error
	SetQuantity(ctx context.Context, userID int, productID string, qty int) error
	Items(userID int) []Item
	Count(userID int) int
	Total(userID int, perUnitFee float64) float64
	Clear(userID int)
}

type service struct {
	store       *Store
	productRepo product.Repository
}

// NewService creates a new cart service
func NewService(store *Store, productRepo product.Repository) Service {
	return &service{store: store, productRepo: productRepo}
}

// Add puts one unit of the product in the user's cart. Adding a product that
// is already in the cart bumps the quantity instead of appending a second
// line. Unavailable products are rejected and the cart is left untouched.
func (s *service) Add(ctx context.Context, userID int, productID string) (*Item, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AddToCart"),
		zap.Int("user_id", userID),
		zap.String("product_id", productID),
	)

	// 1. Look up the product and gate on its availability flag
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		log.Error("failed to get product for cart", zap.Error(err))
		return nil, err
	}
	if !p.Available {
		log.Warn("add to cart rejected: product unavailable")
		return nil, ErrProductUnavailable
	}

	// 2. Merge with an existing line when present
	items := s.store.Get(userID)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity++
			s.store.Save(userID, items)
			line := items[i]
			return &line, nil
		}
	}

	// 3. New line, quantity 1, unit price snapshotted now
	line := Item{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
	}
	items = append(items, line)
	s.store.Save(userID, items)

	log.Debug("cart line added", zap.Float64("unit_price", line.UnitPrice))

	return &line, nil
}

// Remove deletes a line from the user's cart
func (s *service) Remove(ctx context.Context, userID int, productID string) error {
	items := s.store.Get(userID)
	for i := range items {
		if items[i].ProductID == productID {
			s.store.Save(userID, append(items[:i], items[i+1:]...))
			return nil
		}
	}
	return ErrItemNotFound
}

// SetQuantity overwrites a line's quantity, clamping anything below 1 up to 1.
func (s *service) SetQuantity(ctx context.Context, userID int, productID string, qty int) error {
	if qty < 1 {
		qty = 1
	}

	items := s.store.Get(userID)
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity = qty
			s.store.Save(userID, items)
			return nil
		}
	}
	return ErrItemNotFound
}

func (s *service) Items(userID int) []Item {
	return s.store.Get(userID)
}

// Count is the number of units across all lines (what the cart badge shows).
func (s *service) Count(userID int) int {
	var n int
	for _, it := range s.store.Get(userID) {
		n += it.Quantity
	}
	return n
}

// Total sums quantity x (unit price + per-unit fee). The fee is zero for
// pickup; the caller passes the delivery surcharge at checkout time.
func (s *service) Total(userID int, perUnitFee float64) float64 {
	var total float64
	for _, it := range s.store.Get(userID) {
		total += float64(it.Quantity) * (it.UnitPrice + perUnitFee)
	}
	return total
}

func (s *service) Clear(userID int) {
	s.store.Clear(userID)
}
