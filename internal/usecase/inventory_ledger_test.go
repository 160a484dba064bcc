package usecase

import (
	"context"
	"errors"
	"testing"

	"storefront_orders/internal/domain/entities"
	mock_interfaces "storefront_orders/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInventoryLedger_Reserve(t *testing.T) {
	t.Run("merges lines and reserves in id order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockITx(ctrl)

		gomock.InOrder(
			tx.EXPECT().ReserveStock(gomock.Any(), "sl-a", 1).Return(nil),
			tx.EXPECT().ReserveStock(gomock.Any(), "sl-b", 5).Return(nil),
		)

		err := NewInventoryLedger().Reserve(context.Background(), tx, []entities.OrderLine{
			{StockLineID: "sl-b", Quantity: 2},
			{StockLineID: "sl-a", Quantity: 1},
			{StockLineID: "sl-b", Quantity: 3},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("stops at the first shortage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		tx := mock_interfaces.NewMockITx(ctrl)

		tx.EXPECT().ReserveStock(gomock.Any(), "sl-a", 1).Return(entities.NewInsufficientStockError("sl-a", 1))

		err := NewInventoryLedger().Reserve(context.Background(), tx, []entities.OrderLine{
			{StockLineID: "sl-a", Quantity: 1},
			{StockLineID: "sl-b", Quantity: 1},
		})
		if !errors.Is(err, entities.ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
	})

	tests := []struct {
		name string
		line entities.OrderLine
	}{
		{name: "missing stock line", line: entities.OrderLine{Quantity: 1}},
		{name: "zero quantity", line: entities.OrderLine{StockLineID: "sl-a"}},
		{name: "negative quantity", line: entities.OrderLine{StockLineID: "sl-a", Quantity: -2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			tx := mock_interfaces.NewMockITx(ctrl)

			err := NewInventoryLedger().Reserve(context.Background(), tx, []entities.OrderLine{tt.line})
			if !errors.Is(err, entities.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestInventoryLedger_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	tx := mock_interfaces.NewMockITx(ctrl)

	gomock.InOrder(
		tx.EXPECT().ReleaseStock(gomock.Any(), "sl-a", 4).Return(nil),
		tx.EXPECT().ReleaseStock(gomock.Any(), "sl-c", 1).Return(nil),
	)

	err := NewInventoryLedger().Release(context.Background(), tx, []entities.OrderLine{
		{StockLineID: "sl-c", Quantity: 1},
		{StockLineID: "sl-a", Quantity: 4},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
