package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront_orders/internal/domain/entities"

	"go.uber.org/mock/gomock"
)

func dueOrder(id string) entities.Order {
	o := pendingOrder(id)
	o.ExpiresAt = fixedNow.Add(-time.Minute)
	return o
}

func TestExpirationSweeper_SweepOnce(t *testing.T) {
	t.Run("expires due orders and skips settled ones", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machine, m := newTestMachine(t, ctrl)
		sweeper := NewExpirationSweeper(m.orders, machine, time.Minute, 10)

		m.orders.EXPECT().ListExpiredPending(gomock.Any(), fixedNow, 10).
			Return([]entities.Order{dueOrder("ord-1"), dueOrder("ord-2"), dueOrder("ord-3")}, nil)

		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(dueOrder("ord-1"), nil)
		// Paid between listing and expiring.
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-2").Return(withStatus(dueOrder("ord-2"), entities.OrderStatusPaid), nil)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-3").Return(entities.Order{}, errors.New("db"))

		m.tx.EXPECT().UpdateOrder(gomock.Any(), gomock.Any(), entities.OrderStatusPending).Return(nil)
		m.tx.EXPECT().ReleaseStock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		res, err := sweeper.SweepOnce(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := SweepResult{Candidates: 3, Expired: 1, Skipped: 1, Failed: 1}
		if res != want {
			t.Fatalf("expected %+v, got %+v", want, res)
		}
	})

	t.Run("pages while full batches make progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machine, m := newTestMachine(t, ctrl)
		sweeper := NewExpirationSweeper(m.orders, machine, time.Minute, 1)

		gomock.InOrder(
			m.orders.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), 1).Return([]entities.Order{dueOrder("ord-1")}, nil),
			m.orders.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), 1).Return(nil, nil),
		)
		m.orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(dueOrder("ord-1"), nil)
		m.tx.EXPECT().UpdateOrder(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		m.tx.EXPECT().ReleaseStock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
		m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		res, err := sweeper.SweepOnce(context.Background())
		if err != nil || res.Expired != 1 || res.Candidates != 1 {
			t.Fatalf("unexpected result %+v, %v", res, err)
		}
	})

	t.Run("listing failure is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machine, m := newTestMachine(t, ctrl)
		sweeper := NewExpirationSweeper(m.orders, machine, 0, 0)

		m.orders.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), 100).Return(nil, errors.New("db"))

		if _, err := sweeper.SweepOnce(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestExpirationSweeper_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	machine, m := newTestMachine(t, ctrl)
	sweeper := NewExpirationSweeper(m.orders, machine, time.Millisecond, 10)

	m.orders.EXPECT().ListExpiredPending(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sweeper.Run(ctx)
		close(done)
	}()
	time.Sleep(5 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}
