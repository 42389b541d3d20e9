// internal/application/cart_service.go
package application

import (
	"context"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/ports"
)

// CartKey is the store key holding the cart line items.
const CartKey = "medicineCart"

// DefaultShipping is the flat shipping fee applied to the displayed total.
var DefaultShipping = decimal.NewFromFloat(5.00)

// CartService owns the cart ledger. Every mutation funnels through it and
// is persisted whole under CartKey. Invariants after any operation: no two
// items share an id and no item has quantity below 1.
type CartService struct {
	kv       ports.KeyValuePort
	shipping decimal.Decimal
}

func NewCartService(kv ports.KeyValuePort) *CartService {
	return &CartService{kv: kv, shipping: DefaultShipping}
}

// Add puts medicine into the cart with quantity 1, or bumps the quantity
// of the existing line when the id is already present.
func (s *CartService) Add(ctx context.Context, medicine domain.Medicine) error {
	items, err := s.Items(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID == medicine.ID {
			items[i].Quantity++
			return s.save(ctx, items)
		}
	}
	items = append(items, domain.CartItem{
		ID:       medicine.ID,
		Name:     medicine.Name,
		Price:    medicine.Price,
		Image:    medicine.Image,
		Quantity: 1,
	})
	return s.save(ctx, items)
}

// Remove drops the line with the given id. Removing an absent id is a
// no-op.
func (s *CartService) Remove(ctx context.Context, id string) error {
	items, err := s.Items(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.save(ctx, kept)
}

// AdjustQuantity adds delta to the line's quantity. A resulting quantity
// of zero or less removes the line instead. Absent ids are a no-op.
func (s *CartService) AdjustQuantity(ctx context.Context, id string, delta int) error {
	items, err := s.Items(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Quantity += delta
		if items[i].Quantity <= 0 {
			return s.Remove(ctx, id)
		}
		return s.save(ctx, items)
	}
	return nil
}

// SetQuantity sets the line's quantity to an absolute value; zero or less
// removes the line. Absent ids are a no-op.
func (s *CartService) SetQuantity(ctx context.Context, id string, quantity int) error {
	items, err := s.Items(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if quantity <= 0 {
			return s.Remove(ctx, id)
		}
		items[i].Quantity = quantity
		return s.save(ctx, items)
	}
	return nil
}

// Items returns the current cart lines in insertion order. A missing key
// or corrupt stored JSON reads as an empty cart.
func (s *CartService) Items(ctx context.Context) ([]domain.CartItem, error) {
	raw, err := s.kv.Get(ctx, CartKey)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var items []domain.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// Subtotal is the sum of price*quantity over all lines, rounded to two
// decimals for display.
func (s *CartService) Subtotal(ctx context.Context) (decimal.Decimal, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	subtotal := decimal.Zero
	for _, item := range items {
		price := decimal.NewFromFloat(item.Price)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal.Round(2), nil
}

// Total is subtotal plus flat shipping. Shipping is charged even on an
// empty cart: the page shows "$5.00" next to a disabled checkout button,
// and that displayed value is preserved as observed.
func (s *CartService) Total(ctx context.Context) (decimal.Decimal, error) {
	subtotal, err := s.Subtotal(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return subtotal.Add(s.shipping).Round(2), nil
}

// ItemCount is the sum of quantities, used for the cart badge.
func (s *CartService) ItemCount(ctx context.Context) (int, error) {
	items, err := s.Items(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count, nil
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context) error {
	return s.kv.Remove(ctx, CartKey)
}

func (s *CartService) save(ctx context.Context, items []domain.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, CartKey, string(raw))
}
