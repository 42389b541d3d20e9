// internal/adapters/repository/remote_orders.go
package repository

import (
	"context"
	"encoding/json"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/ports"
)

// OrdersCollection is the single collection name shared by both repository
// implementations so the remote and fallback paths never split state.
const OrdersCollection = "orders"

// RemoteOrderRepository persists orders through the mocked remote document
// API. The document store generates the order id.
type RemoteOrderRepository struct {
	docs ports.DocumentPort
}

func NewRemoteOrderRepository(docs ports.DocumentPort) ports.OrderRepositoryPort {
	return &RemoteOrderRepository{docs: docs}
}

func (r *RemoteOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) (string, error) {
	data, err := orderToMap(order)
	if err != nil {
		return "", err
	}
	id, err := r.docs.AddDocument(ctx, OrdersCollection, data)
	if err != nil {
		return "", err
	}
	order.ID = id
	return id, nil
}

func (r *RemoteOrderRepository) ListOrders(ctx context.Context, userID string) ([]*domain.Order, error) {
	docs, err := r.docs.GetCollection(ctx, OrdersCollection)
	if err != nil {
		return nil, err
	}
	var orders []*domain.Order
	for _, doc := range docs {
		order, err := mapToOrder(doc)
		if err != nil {
			continue
		}
		if userID == "" || order.UserID == userID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func orderToMap(order *domain.Order) (map[string]any, error) {
	raw, err := json.Marshal(order)
	if err != nil {
		return nil, err
	}
	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	// the document store owns the id
	delete(data, "id")
	return data, nil
}

func mapToOrder(doc map[string]any) (*domain.Order, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var order domain.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
