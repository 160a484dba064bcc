package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront_orders/internal/domain/entities"
	mock_interfaces "storefront_orders/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func soldOrder(createdAt time.Time, lines ...entities.OrderLine) entities.Order {
	return entities.Order{ID: "ord", Status: entities.OrderStatusPaid, Lines: lines, CreatedAt: createdAt}
}

func TestTopSellersRefresher_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)

	r := NewTopSellersRefresher(orders, time.Hour, 24*time.Hour, 2)
	r.now = func() time.Time { return fixedNow }

	if cur := r.Current(); cur.Items == nil || len(cur.Items) != 0 || !cur.ComputedAt.IsZero() {
		t.Fatalf("expected empty snapshot before the first refresh, got %+v", cur)
	}

	orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusPaid).Return([]entities.Order{
		soldOrder(fixedNow.Add(-time.Hour),
			entities.OrderLine{ProductID: "p-dress", ProductName: "Dress", Quantity: 2},
			entities.OrderLine{ProductID: "p-scarf", ProductName: "Scarf", Quantity: 1}),
		// Outside the window.
		soldOrder(fixedNow.Add(-48*time.Hour), entities.OrderLine{ProductID: "p-hat", ProductName: "Hat", Quantity: 50}),
	}, nil)
	orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusExchangeRequested).Return([]entities.Order{
		soldOrder(fixedNow, entities.OrderLine{ProductID: "p-scarf", ProductName: "Scarf", Quantity: 1}),
	}, nil)
	orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusExchanged).Return([]entities.Order{
		soldOrder(fixedNow, entities.OrderLine{ProductID: "p-belt", ProductName: "Belt", Quantity: 2}),
	}, nil)

	snap, err := r.Refresh(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Dress, Scarf and Belt all sold 2; ties break by product id and the limit keeps two.
	if len(snap.Items) != 2 || snap.Items[0].ProductID != "p-belt" || snap.Items[1].ProductID != "p-dress" {
		t.Fatalf("unexpected ranking %+v", snap.Items)
	}
	if !snap.StaleAfter.Equal(fixedNow.Add(2 * time.Hour)) {
		t.Fatalf("unexpected stale_after %v", snap.StaleAfter)
	}
	if got := r.Current(); len(got.Items) != 2 {
		t.Fatalf("snapshot not published, got %+v", got)
	}
}

func TestTopSellersRefresher_RefreshErrorKeepsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)

	r := NewTopSellersRefresher(orders, time.Hour, 0, 10)
	r.now = func() time.Time { return fixedNow }

	orders.EXPECT().ListByStatus(gomock.Any(), gomock.Any()).Return([]entities.Order{
		soldOrder(fixedNow.AddDate(-1, 0, 0), entities.OrderLine{ProductID: "p-1", Quantity: 1}),
	}, nil).Times(3)
	if _, err := r.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders.EXPECT().ListByStatus(gomock.Any(), entities.OrderStatusPaid).Return(nil, errors.New("db"))
	if _, err := r.Refresh(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
	if got := r.Current(); len(got.Items) != 1 || got.Items[0].Quantity != 3 {
		t.Fatalf("previous snapshot must survive a failed refresh, got %+v", got)
	}
}
