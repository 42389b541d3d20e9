// internal/ports/ports.go
package ports

import (
	"context"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=ports

// KeyValuePort is the durable string-keyed store shared by every component
// (the browser localStorage stand-in). Get returns "" for a missing key; a
// missing key is never an error. Writes are whole-value replace-on-write, so
// concurrent read-modify-write sequences against the same key are
// last-writer-wins.
type KeyValuePort interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

// AuthPort is the mocked authentication provider. SignIn never rejects
// non-empty credentials; unknown ones synthesize a fresh user.
type AuthPort interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	SignIn(ctx context.Context, email, password string) (*domain.User, error)
	SignOut(ctx context.Context) error
}

// DocumentPort is the mocked remote document API. Collections are ordered
// lists persisted as one unit; the store stamps id, createdAt and updatedAt.
type DocumentPort interface {
	AddDocument(ctx context.Context, collection string, data map[string]any) (string, error)
	GetCollection(ctx context.Context, collection string) ([]map[string]any, error)
	GetDocument(ctx context.Context, collection, id string) (map[string]any, error)
	UpdateDocument(ctx context.Context, collection, id string, partial map[string]any) error
	DeleteDocument(ctx context.Context, collection, id string) error
}

// OrderRepositoryPort persists orders. Two interchangeable implementations
// exist: one backed by the mocked remote document API and one writing the
// local store directly (the fallback path). CreateOrder returns the
// generated order id.
type OrderRepositoryPort interface {
	CreateOrder(ctx context.Context, order *domain.Order) (string, error)
	ListOrders(ctx context.Context, userID string) ([]*domain.Order, error)
}

// SessionPort exposes the current signed-in user, or nil when no session
// exists.
type SessionPort interface {
	CurrentUser(ctx context.Context) (*domain.User, error)
}
