// internal/application/order_service_test.go
package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"

	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/adapters/localstore"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/adapters/repository"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/domain"
	"github.com/mahabubulhasibshawon/medico-pharmacy.git/internal/ports"
)

var testCustomer = domain.Customer{
	Name:    "John Doe",
	Email:   "john@example.com",
	Phone:   "0123456789",
	Address: "12 High Street",
}

func seedCart(t *testing.T, cart *CartService) {
	t.Helper()
	ctx := context.Background()
	if err := cart.Add(ctx, paracetamol); err != nil {
		t.Fatal(err)
	}
	if err := cart.Add(ctx, paracetamol); err != nil {
		t.Fatal(err)
	}
	if err := cart.Add(ctx, ibuprofen); err != nil {
		t.Fatal(err)
	}
}

func TestOrderService_PlaceOrder(t *testing.T) {
	tests := []struct {
		name      string
		customer  domain.Customer
		seed      bool
		mockSetup func(remote, local *ports.MockOrderRepositoryPort, session *ports.MockSessionPort)
		wantID    string
		wantErr   error
	}{
		{
			name:     "Remote path succeeds",
			customer: testCustomer,
			seed:     true,
			mockSetup: func(remote, local *ports.MockOrderRepositoryPort, session *ports.MockSessionPort) {
				session.EXPECT().CurrentUser(gomock.Any()).Return(&domain.User{UID: "user-uid"}, nil)
				remote.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, order *domain.Order) (string, error) {
						if order.UserID != "user-uid" {
							t.Errorf("order.UserID = %v, want session uid attached", order.UserID)
						}
						if order.Status != domain.OrderStatusPending {
							t.Errorf("order.Status = %v, want Pending", order.Status)
						}
						if order.Total != 23.47 {
							t.Errorf("order.Total = %v, want 23.47", order.Total)
						}
						return "doc-abc123xyz", nil
					})
			},
			wantID: "doc-abc123xyz",
		},
		{
			name:     "Remote failure falls back to local silently",
			customer: testCustomer,
			seed:     true,
			mockSetup: func(remote, local *ports.MockOrderRepositoryPort, session *ports.MockSessionPort) {
				session.EXPECT().CurrentUser(gomock.Any()).Return(nil, nil)
				remote.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("", errors.New("simulated remote outage"))
				local.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("ORD-ABC123XYZ", nil)
			},
			wantID: "ORD-ABC123XYZ",
		},
		{
			name:      "Empty cart rejected",
			customer:  testCustomer,
			mockSetup: func(remote, local *ports.MockOrderRepositoryPort, session *ports.MockSessionPort) {},
			wantErr:   ErrEmptyCart,
		},
		{
			name:      "Missing customer fields rejected",
			customer:  domain.Customer{Name: "John Doe"},
			seed:      true,
			mockSetup: func(remote, local *ports.MockOrderRepositoryPort, session *ports.MockSessionPort) {},
			wantErr:   ErrMissingCustomer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			cart := NewCartService(localstore.NewStore(""))
			if tt.seed {
				seedCart(t, cart)
			}
			mockRemote := ports.NewMockOrderRepositoryPort(ctrl)
			mockLocal := ports.NewMockOrderRepositoryPort(ctrl)
			mockSession := ports.NewMockSessionPort(ctrl)
			tt.mockSetup(mockRemote, mockLocal, mockSession)

			svc := NewOrderService(cart, mockRemote, mockLocal, mockSession, zerolog.Nop())
			id, err := svc.PlaceOrder(context.Background(), tt.customer, "credit-card", "leave at door")

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("PlaceOrder() err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("PlaceOrder() unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Errorf("PlaceOrder() id = %v, want %v", id, tt.wantID)
			}

			items, _ := cart.Items(context.Background())
			if len(items) != 0 {
				t.Errorf("cart = %+v after successful order, want cleared", items)
			}
		})
	}
}

func TestOrderService_ValidationLeavesCartIntact(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cart := NewCartService(localstore.NewStore(""))
	seedCart(t, cart)
	svc := NewOrderService(cart, ports.NewMockOrderRepositoryPort(ctrl), ports.NewMockOrderRepositoryPort(ctrl), ports.NewMockSessionPort(ctrl), zerolog.Nop())

	_, err := svc.PlaceOrder(context.Background(), domain.Customer{}, "cash", "")
	if !errors.Is(err, ErrMissingCustomer) {
		t.Fatalf("PlaceOrder() err = %v, want ErrMissingCustomer", err)
	}
	count, _ := cart.ItemCount(context.Background())
	if count != 3 {
		t.Errorf("ItemCount() = %d after rejected order, want untouched cart", count)
	}
}

func TestOrderService_NoRemoteGoesStraightToFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := localstore.NewStore("")
	cart := NewCartService(kv)
	seedCart(t, cart)
	mockSession := ports.NewMockSessionPort(ctrl)
	mockSession.EXPECT().CurrentUser(gomock.Any()).Return(nil, nil)

	svc := NewOrderService(cart, nil, repository.NewLocalOrderRepository(kv), mockSession, zerolog.Nop())
	id, err := svc.PlaceOrder(context.Background(), testCustomer, "cash-on-delivery", "")
	if err != nil {
		t.Fatalf("PlaceOrder() unexpected error: %v", err)
	}
	if !strings.HasPrefix(id, "ORD-") {
		t.Errorf("PlaceOrder() id = %v, want local ORD- format", id)
	}

	items, _ := cart.Items(context.Background())
	if len(items) != 0 {
		t.Errorf("cart = %+v after fallback order, want cleared", items)
	}
}

func TestOrderService_Orders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	kv := localstore.NewStore("")
	cart := NewCartService(kv)
	mockSession := ports.NewMockSessionPort(ctrl)
	mockSession.EXPECT().CurrentUser(gomock.Any()).Return(&domain.User{UID: "user-uid"}, nil).AnyTimes()

	local := repository.NewLocalOrderRepository(kv)
	if _, err := local.CreateOrder(context.Background(), &domain.Order{UserID: "user-uid", Status: domain.OrderStatusPending}); err != nil {
		t.Fatal(err)
	}
	if _, err := local.CreateOrder(context.Background(), &domain.Order{UserID: "someone-else", Status: domain.OrderStatusPending}); err != nil {
		t.Fatal(err)
	}

	svc := NewOrderService(cart, nil, local, mockSession, zerolog.Nop())
	orders, err := svc.Orders(context.Background())
	if err != nil {
		t.Fatalf("Orders() unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].UserID != "user-uid" {
		t.Errorf("Orders() = %+v, want only the session user's orders", orders)
	}
}
