// internal/adapters/repository/local_orders.go
package repository

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/ports"
)

// LocalOrderRepository is the fallback path: it appends orders to the
// "orders" key of the local store directly and synthesizes its own ids.
// Writes here are not modeled as fallible beyond the store itself.
type LocalOrderRepository struct {
	kv ports.KeyValuePort
}

func NewLocalOrderRepository(kv ports.KeyValuePort) ports.OrderRepositoryPort {
	return &LocalOrderRepository{kv: kv}
}

func (r *LocalOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (string, error) {
	order.ID = "ORD-" + strings.ToUpper(randomAlphanumeric(9))

	orders, err := r.load(ctx)
	if err != nil {
		return "", err
	}
	orders = append(orders, order)

	raw, err := json.Marshal(orders)
	if err != nil {
		return "", err
	}
	if err := r.kv.Set(ctx, OrdersCollection, string(raw)); err != nil {
		return "", err
	}
	return order.ID, nil
}

func (r *LocalOrderRepository) ListOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	orders, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return orders, nil
	}
	var filtered []*domain.Order
	for _, order := range orders {
		if order.UserID == userID {
			filtered = append(filtered, order)
		}
	}
	return filtered, nil
}

// load reads the stored list, defaulting to empty on a missing key or
// corrupt JSON.
func (r *LocalOrderRepository) load(ctx context.Context) ([]*domain.Order, error) {
	raw, err := r.kv.Get(ctx, OrdersCollection)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, nil
	}
	var orders []*domain.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		return nil, nil
	}
	return orders, nil
}

const alphanumeric = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomAlphanumeric(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphanumeric[rand.Intn(len(alphanumeric))]
	}
	return string(b)
}
