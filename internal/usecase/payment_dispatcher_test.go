package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront_orders/internal/domain/entities"
	mock_interfaces "storefront_orders/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaymentDispatcher_Dispatch(t *testing.T) {
	payer := entities.Payer{Email: "ana@example.com"}

	t.Run("pix carries the order expiry and a stable key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machine, m := newTestMachine(t, ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		d := NewPaymentDispatcher(gateway, m.orders, nil, machine, DispatcherConfig{NotificationURL: "https://shop.example/hook"})

		order := pendingOrder("ord-1")
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PaymentRequest) (entities.GatewayPayment, error) {
			if req.IdempotencyKey != "ord-1-pix" {
				t.Fatalf("unexpected idempotency key %q", req.IdempotencyKey)
			}
			if !req.ExpiresAt.Equal(order.ExpiresAt) || req.Amount != order.Total {
				t.Fatalf("unexpected request %+v", req)
			}
			if req.NotificationURL != "https://shop.example/hook" {
				t.Fatalf("notification url not forwarded")
			}
			return entities.GatewayPayment{ID: "pay-1", Status: entities.GatewayStatusPending, PaymentTypeID: "bank_transfer", QRCode: "000201"}, nil
		})
		m.orders.EXPECT().AttachPayment(gomock.Any(), "ord-1", "pay-1", "bank_transfer").Return(nil)

		res, err := d.Dispatch(context.Background(), order, CheckoutPayment{Payer: payer})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Artifact.QRCode != "000201" || res.Order.PaymentID != "pay-1" {
			t.Fatalf("unexpected result %+v", res)
		}
		if res.Order.Status != entities.OrderStatusPending {
			t.Fatalf("pix order must stay PENDING, got %s", res.Order.Status)
		}
	})

	t.Run("boleto forwards the address", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machine, m := newTestMachine(t, ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		d := NewPaymentDispatcher(gateway, m.orders, nil, machine, DispatcherConfig{})

		order := pendingOrder("ord-1")
		order.PaymentMethod = entities.PaymentMethodBoleto
		order.Address = entities.Address{Zip: "01001000", Street: "Praça da Sé", Number: "1", City: "São Paulo", State: "SP"}
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PaymentRequest) (entities.GatewayPayment, error) {
			if req.IdempotencyKey != "ord-1-boleto" || req.Address.Zip != "01001000" {
				t.Fatalf("unexpected request %+v", req)
			}
			return entities.GatewayPayment{ID: "pay-2", Status: entities.GatewayStatusPending, TicketURL: "https://mp.example/ticket"}, nil
		})
		m.orders.EXPECT().AttachPayment(gomock.Any(), "ord-1", "pay-2", "").Return(errors.New("db"))

		res, err := d.Dispatch(context.Background(), order, CheckoutPayment{Payer: payer})
		if err != nil {
			t.Fatalf("attach failure must not fail dispatch, got %v", err)
		}
		if res.Artifact.TicketURL == "" {
			t.Fatalf("expected ticket url, got %+v", res.Artifact)
		}
	})

	t.Run("approved card confirms the order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machine, m := newTestMachine(t, ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		resolver := NewCustomerResolver(customers, gateway, 0)
		d := NewPaymentDispatcher(gateway, m.orders, resolver, machine, DispatcherConfig{})

		order := pendingOrder("ord-1")
		order.PaymentMethod = entities.PaymentMethodCard
		card := entities.CardDetails{Token: "tok-abcdef1234567890", PaymentMethodID: "visa"}

		customers.EXPECT().GetByUserID(gomock.Any(), buyer.UserID).Return(entities.Customer{UserID: buyer.UserID, GatewayCustomerID: "cus-1"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.PaymentRequest) (entities.GatewayPayment, error) {
			if req.IdempotencyKey != "ord-1-34567890" {
				t.Fatalf("unexpected idempotency key %q", req.IdempotencyKey)
			}
			if req.CustomerID != "cus-1" || req.Card.Installments != 1 {
				t.Fatalf("unexpected request %+v", req)
			}
			return entities.GatewayPayment{ID: "pay-3", Status: entities.GatewayStatusApproved, PaymentTypeID: "credit_card"}, nil
		})
		m.orders.EXPECT().AttachPayment(gomock.Any(), "ord-1", "pay-3", "credit_card").Return(nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(order, nil)
		m.tx.EXPECT().UpdateOrder(gomock.Any(), gomock.Any(), entities.OrderStatusPending).Return(nil)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		res, err := d.Dispatch(context.Background(), order, CheckoutPayment{Payer: payer, Card: card})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.OrderStatusPaid {
			t.Fatalf("expected PAID, got %s", res.Order.Status)
		}
	})

	t.Run("rejected card leaves the order pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machine, m := newTestMachine(t, ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		d := NewPaymentDispatcher(gateway, m.orders, NewCustomerResolver(customers, gateway, 0), machine, DispatcherConfig{})

		order := pendingOrder("ord-1")
		order.PaymentMethod = entities.PaymentMethodCard

		customers.EXPECT().GetByUserID(gomock.Any(), gomock.Any()).Return(entities.Customer{GatewayCustomerID: "cus-1"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return(entities.GatewayPayment{ID: "pay-4", Status: entities.GatewayStatusRejected, StatusDetail: "cc_rejected_insufficient_amount"}, nil)
		m.orders.EXPECT().AttachPayment(gomock.Any(), "ord-1", "pay-4", "").Return(nil)

		res, err := d.Dispatch(context.Background(), order, CheckoutPayment{Payer: payer, Card: entities.CardDetails{Token: "tok"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.Status != entities.OrderStatusPending || res.Artifact.StatusDetail == "" {
			t.Fatalf("unexpected result %+v", res)
		}
	})

	t.Run("card without token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machine, m := newTestMachine(t, ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		d := NewPaymentDispatcher(gateway, m.orders, nil, machine, DispatcherConfig{})

		order := pendingOrder("ord-1")
		order.PaymentMethod = entities.PaymentMethodCard

		_, err := d.Dispatch(context.Background(), order, CheckoutPayment{Payer: payer})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("gateway failure is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machine, m := newTestMachine(t, ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		d := NewPaymentDispatcher(gateway, m.orders, nil, machine, DispatcherConfig{})

		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return(entities.GatewayPayment{}, errors.New(`{"status":401,"error":"unauthorized"}`))

		res, err := d.Dispatch(context.Background(), pendingOrder("ord-1"), CheckoutPayment{Payer: payer})
		if !errors.Is(err, entities.ErrGateway) || !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected unauthorized gateway error, got %v", err)
		}
		if res.Order.ID != "ord-1" {
			t.Fatalf("the stored order must be returned with the error, got %+v", res.Order)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machine, m := newTestMachine(t, ctrl)
		d := NewPaymentDispatcher(nil, m.orders, nil, machine, DispatcherConfig{})

		_, err := d.Dispatch(context.Background(), pendingOrder("ord-1"), CheckoutPayment{Payer: payer})
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestPaymentDispatcher_FetchArtifact(t *testing.T) {
	tests := []struct {
		name      string
		paymentID string
		setup     func(g *mock_interfaces.MockIPaymentGateway)
		wantErr   error
		wantQR    string
	}{
		{
			name:      "no payment attached",
			paymentID: "",
			setup:     func(*mock_interfaces.MockIPaymentGateway) {},
			wantErr:   entities.ErrNotFound,
		},
		{
			name:      "payment missing at the gateway",
			paymentID: "pay-1",
			setup: func(g *mock_interfaces.MockIPaymentGateway) {
				g.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(entities.GatewayPayment{}, nil)
			},
			wantErr: entities.ErrNotFound,
		},
		{
			name:      "gateway error",
			paymentID: "pay-1",
			setup: func(g *mock_interfaces.MockIPaymentGateway) {
				g.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(entities.GatewayPayment{}, errors.New("timeout"))
			},
			wantErr: entities.ErrGateway,
		},
		{
			name:      "qr code",
			paymentID: "pay-1",
			setup: func(g *mock_interfaces.MockIPaymentGateway) {
				g.EXPECT().GetPayment(gomock.Any(), "pay-1").Return(entities.GatewayPayment{ID: "pay-1", QRCode: "000201"}, nil)
			},
			wantQR: "000201",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			tt.setup(gateway)
			d := NewPaymentDispatcher(gateway, nil, nil, nil, DispatcherConfig{})

			order := pendingOrder("ord-1")
			order.PaymentID = tt.paymentID
			got, err := d.FetchArtifact(context.Background(), order)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.QRCode != tt.wantQR || got.Method != entities.PaymentMethodPix {
				t.Fatalf("unexpected artifact %+v", got)
			}
		})
	}
}
