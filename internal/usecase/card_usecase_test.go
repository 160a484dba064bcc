package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront_orders/internal/domain/entities"
	mock_interfaces "storefront_orders/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerResolver_Resolve(t *testing.T) {
	payer := entities.Payer{Email: " ana@example.com ", FirstName: "Ana"}

	t.Run("stored customer short-circuits the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		customers.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Customer{GatewayCustomerID: "cus-1"}, nil)

		id, err := NewCustomerResolver(customers, gateway, 0).Resolve(context.Background(), "user-1", payer)
		if err != nil || id != "cus-1" {
			t.Fatalf("expected cus-1, got %q, %v", id, err)
		}
	})

	t.Run("existing gateway customer is adopted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		customers.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Customer{}, nil)
		gateway.EXPECT().SearchCustomer(gomock.Any(), "ana@example.com").Return(entities.GatewayCustomer{ID: "cus-2"}, nil)
		customers.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, c entities.Customer) (entities.Customer, error) {
			if c.GatewayCustomerID != "cus-2" || c.Email != "ana@example.com" {
				t.Fatalf("unexpected customer %+v", c)
			}
			return c, nil
		})

		id, err := NewCustomerResolver(customers, gateway, 0).Resolve(context.Background(), "user-1", payer)
		if err != nil || id != "cus-2" {
			t.Fatalf("expected cus-2, got %q, %v", id, err)
		}
	})

	t.Run("missing customer is created and a concurrent winner kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		customers.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Customer{}, nil)
		gateway.EXPECT().SearchCustomer(gomock.Any(), "ana@example.com").Return(entities.GatewayCustomer{}, nil)
		gateway.EXPECT().CreateCustomer(gomock.Any(), gomock.Any()).Return(entities.GatewayCustomer{ID: "cus-new"}, nil)
		customers.EXPECT().SaveIfAbsent(gomock.Any(), gomock.Any()).Return(entities.Customer{GatewayCustomerID: "cus-first"}, nil)

		id, err := NewCustomerResolver(customers, gateway, 0).Resolve(context.Background(), "user-1", payer)
		if err != nil || id != "cus-first" {
			t.Fatalf("expected cus-first, got %q, %v", id, err)
		}
	})

	t.Run("customer not found at creation is classified", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		customers.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Customer{}, nil)
		gateway.EXPECT().SearchCustomer(gomock.Any(), gomock.Any()).Return(entities.GatewayCustomer{}, errors.New(`{"message":"Customer not found","code":2002}`))

		_, err := NewCustomerResolver(customers, gateway, 0).Resolve(context.Background(), "user-1", payer)
		if !errors.Is(err, ErrPaymentGatewayCustomerNotFound) {
			t.Fatalf("expected ErrPaymentGatewayCustomerNotFound, got %v", err)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)

		customers.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Customer{}, nil)

		_, err := NewCustomerResolver(customers, gateway, 0).Resolve(context.Background(), "user-1", entities.Payer{})
		if !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestCardUseCase(t *testing.T) {
	t.Run("list without customer is empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCardUseCase(gateway, NewCustomerResolver(customers, gateway, 0), 0)

		customers.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Customer{}, nil)

		cards, err := uc.ListCards(context.Background(), buyer)
		if err != nil || cards == nil || len(cards) != 0 {
			t.Fatalf("expected empty list, got %v, %v", cards, err)
		}
	})

	t.Run("list delegates to the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCardUseCase(gateway, NewCustomerResolver(customers, gateway, 0), 0)

		customers.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Customer{GatewayCustomerID: "cus-1"}, nil)
		gateway.EXPECT().ListCards(gomock.Any(), "cus-1").Return([]entities.SavedCard{{ID: "card-1", LastFourDigits: "4242"}}, nil)

		cards, err := uc.ListCards(context.Background(), buyer)
		if err != nil || len(cards) != 1 {
			t.Fatalf("expected one card, got %v, %v", cards, err)
		}
	})

	t.Run("save resolves the customer", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCardUseCase(gateway, NewCustomerResolver(customers, gateway, 0), 0)

		customers.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Customer{GatewayCustomerID: "cus-1"}, nil)
		gateway.EXPECT().SaveCard(gomock.Any(), "cus-1", "tok-1").Return(entities.SavedCard{ID: "card-1"}, nil)

		card, err := uc.SaveCard(context.Background(), buyer, " tok-1 ", entities.Payer{Email: "ana@example.com"})
		if err != nil || card.ID != "card-1" {
			t.Fatalf("expected card-1, got %+v, %v", card, err)
		}
	})

	t.Run("delete without customer is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCardUseCase(gateway, NewCustomerResolver(customers, gateway, 0), 0)

		customers.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Customer{}, nil)

		err := uc.DeleteCard(context.Background(), buyer, "card-1")
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("delete delegates to the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewCardUseCase(gateway, NewCustomerResolver(customers, gateway, 0), 0)

		customers.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entities.Customer{GatewayCustomerID: "cus-1"}, nil)
		gateway.EXPECT().DeleteCard(gomock.Any(), "cus-1", "card-1").Return(nil)

		if err := uc.DeleteCard(context.Background(), buyer, "card-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("validation and auth", func(t *testing.T) {
		uc := NewCardUseCase(nil, nil, 0)

		if _, err := uc.ListCards(context.Background(), entities.Actor{}); !errors.Is(err, entities.ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
		if _, err := uc.SaveCard(context.Background(), buyer, "  ", entities.Payer{}); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
		if _, err := uc.SaveCard(context.Background(), buyer, "tok", entities.Payer{}); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
		if err := uc.DeleteCard(context.Background(), buyer, ""); !errors.Is(err, entities.ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}
