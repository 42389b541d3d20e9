// internal/application/order_service.go
package application

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/ports"
)

var (
	ErrEmptyCart       = errors.New("your cart is empty")
	ErrMissingCustomer = errors.New("please fill in all required fields")
)

// OrderService runs checkout. A submission tries the remote repository
// first and falls back to the local one on any remote failure; the
// degradation is logged, never surfaced, so the demo always "works".
// Exactly one id-generation path executes per submission and the cart is
// cleared exactly once, only after an id has been obtained.
type OrderService struct {
	cart    *CartService
	remote  ports.OrderRepositoryPort // may be nil when no remote is configured
	local   ports.OrderRepositoryPort
	session ports.SessionPort
	logger  zerolog.Logger
	now     func() time.Time
}

func NewOrderService(cart *CartService, remoteRepo, localRepo ports.OrderRepositoryPort, session ports.SessionPort, logger zerolog.Logger) *OrderService {
	return &OrderService{
		cart:    cart,
		remote:  remoteRepo,
		local:   localRepo,
		session: session,
		logger:  logger,
		now:     time.Now,
	}
}

// PlaceOrder assembles an order from the current cart and the checkout
// form and persists it, returning the order id.
func (s *OrderService) PlaceOrder(ctx context.Context, customer domain.Customer, paymentMethod, notes string) (string, error) {
	if customer.Name == "" || customer.Email == "" || customer.Phone == "" || customer.Address == "" {
		return "", ErrMissingCustomer
	}

	items, err := s.cart.Items(ctx)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", ErrEmptyCart
	}
	total, err := s.cart.Total(ctx)
	if err != nil {
		return "", err
	}

	order := &domain.Order{
		Customer:      customer,
		PaymentMethod: paymentMethod,
		Notes:         notes,
		Items:         items,
		Total:         total.InexactFloat64(),
		Date:          s.now().UTC(),
		Status:        domain.OrderStatusPending,
	}
	if user, err := s.session.CurrentUser(ctx); err == nil && user != nil {
		order.UserID = user.UID
	}

	orderID, err := s.submit(ctx, order)
	if err != nil {
		return "", err
	}
	if err := s.cart.Clear(ctx); err != nil {
		return "", err
	}
	return orderID, nil
}

func (s *OrderService) submit(ctx context.Context, order *domain.Order) (string, error) {
	if s.remote != nil {
		orderID, err := s.remote.CreateOrder(ctx, order)
		if err == nil {
			return orderID, nil
		}
		s.logger.Warn().Err(err).Msg("remote order save failed, falling back to local store")
	}
	return s.local.CreateOrder(ctx, order)
}

// Orders lists the current user's orders for the account view. Without a
// session it lists everything, which the demo uses for the admin page.
func (s *OrderService) Orders(ctx context.Context) ([]*domain.Order, error) {
	userID := ""
	if user, err := s.session.CurrentUser(ctx); err == nil && user != nil && !user.IsAdmin {
		userID = user.UID
	}
	repo := s.remote
	if repo == nil {
		repo = s.local
	}
	orders, err := repo.ListOrders(ctx, userID)
	if err != nil {
		s.logger.Warn().Err(err).Msg("remote order list failed, falling back to local store")
		return s.local.ListOrders(ctx, userID)
	}
	return orders, nil
}
