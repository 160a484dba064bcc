package sqlstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/infrastructure/database"
	"storefront_orders/internal/usecase/interfaces"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQL(database.SQLOptions{
		Driver:   "sqlite",
		DSN:      database.SQLiteDSN(filepath.Join(t.TempDir(), "orders.db")),
		LogLevel: "silent",
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func seedStock(t *testing.T, db *gorm.DB, lines ...entities.StockLine) {
	t.Helper()
	repo := NewStockLineRepository(db)
	for _, l := range lines {
		if err := repo.Upsert(context.Background(), l); err != nil {
			t.Fatalf("seed stock %s: %v", l.ID, err)
		}
	}
}

func stockQty(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	sl, err := NewStockLineRepository(db).GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get stock %s: %v", id, err)
	}
	return sl.Quantity
}

func sampleOrder(id string, now time.Time) entities.Order {
	return entities.Order{
		ID:            id,
		UserID:        "user-1",
		Address:       entities.Address{Zip: "01310100", Street: "Av. Paulista", Number: "1000", City: "Sao Paulo", State: "SP"},
		Status:        entities.OrderStatusPending,
		Lines:         []entities.OrderLine{{StockLineID: "sl-1", ProductID: "p-1", ProductName: "Tee", UnitPrice: 5000, Quantity: 2}},
		Subtotal:      10000,
		Freight:       800,
		Total:         10800,
		PaymentMethod: entities.PaymentMethodBoleto,
		CreatedAt:     now,
		UpdatedAt:     now,
		ExpiresAt:     now.Add(30 * time.Minute),
	}
}

func TestUnitOfWork_ReserveAndInsert(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("commits reservation and order together", func(t *testing.T) {
		db := newTestDB(t)
		seedStock(t, db, entities.StockLine{ID: "sl-1", ProductID: "p-1", ProductName: "Tee", UnitPrice: 5000, Quantity: 5})
		uow := NewUnitOfWork(db)

		order := sampleOrder("o-1", now)
		err := uow.Execute(ctx, func(tx interfaces.ITx) error {
			if err := tx.ReserveStock(ctx, "sl-1", 2); err != nil {
				return err
			}
			return tx.InsertOrder(ctx, order)
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := stockQty(t, db, "sl-1"); got != 3 {
			t.Fatalf("expected 3 left, got %d", got)
		}
		stored, err := NewOrderRepository(db).GetByID(ctx, "o-1")
		if err != nil || stored.ID != "o-1" {
			t.Fatalf("order not stored: %+v err=%v", stored, err)
		}
		if len(stored.Lines) != 1 || stored.Lines[0].Quantity != 2 || stored.Lines[0].UnitPrice != 5000 {
			t.Fatalf("unexpected lines: %+v", stored.Lines)
		}
		if !stored.ExpiresAt.Equal(order.ExpiresAt) || stored.Total != 10800 {
			t.Fatalf("unexpected order fields: %+v", stored)
		}
	})

	t.Run("insufficient stock rolls back every line", func(t *testing.T) {
		db := newTestDB(t)
		seedStock(t, db,
			entities.StockLine{ID: "sl-1", ProductID: "p-1", ProductName: "Tee", UnitPrice: 5000, Quantity: 5},
			entities.StockLine{ID: "sl-2", ProductID: "p-2", ProductName: "Cap", UnitPrice: 3000, Quantity: 1},
		)
		uow := NewUnitOfWork(db)

		err := uow.Execute(ctx, func(tx interfaces.ITx) error {
			if err := tx.ReserveStock(ctx, "sl-1", 2); err != nil {
				return err
			}
			return tx.ReserveStock(ctx, "sl-2", 2)
		})
		if !errors.Is(err, entities.ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		if got := stockQty(t, db, "sl-1"); got != 5 {
			t.Fatalf("first line must be untouched, got %d", got)
		}
		if got := stockQty(t, db, "sl-2"); got != 1 {
			t.Fatalf("second line must be untouched, got %d", got)
		}
	})

	t.Run("unknown stock line", func(t *testing.T) {
		db := newTestDB(t)
		err := NewUnitOfWork(db).Execute(ctx, func(tx interfaces.ITx) error {
			return tx.ReserveStock(ctx, "missing", 1)
		})
		if !errors.Is(err, entities.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func TestUnitOfWork_GuardedUpdates(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	db := newTestDB(t)
	seedStock(t, db, entities.StockLine{ID: "sl-1", ProductID: "p-1", ProductName: "Tee", UnitPrice: 5000, Quantity: 5})
	uow := NewUnitOfWork(db)
	repo := NewOrderRepository(db)

	order := sampleOrder("o-1", now)
	if err := uow.Execute(ctx, func(tx interfaces.ITx) error { return tx.InsertOrder(ctx, order) }); err != nil {
		t.Fatal(err)
	}

	paid := order
	if _, err := paid.ConfirmPaid("pay-1", "bank_transfer", now.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := uow.Execute(ctx, func(tx interfaces.ITx) error {
		return tx.UpdateOrder(ctx, paid, entities.OrderStatusPending)
	}); err != nil {
		t.Fatalf("first update failed: %v", err)
	}

	canceled := order
	_ = canceled.Cancel(now.Add(2 * time.Minute))
	err := uow.Execute(ctx, func(tx interfaces.ITx) error {
		if err := tx.ReleaseStock(ctx, "sl-1", 2); err != nil {
			return err
		}
		return tx.UpdateOrder(ctx, canceled, entities.OrderStatusPending)
	})
	if !errors.Is(err, entities.ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
	if got := stockQty(t, db, "sl-1"); got != 5 {
		t.Fatalf("release must roll back with the failed guard, got %d", got)
	}

	stored, _ := repo.GetByID(ctx, "o-1")
	if stored.Status != entities.OrderStatusPaid || stored.PaymentID != "pay-1" || stored.PaidAt == nil {
		t.Fatalf("unexpected stored order: %+v", stored)
	}
}

func TestUnitOfWork_TransitionKeepsLateAttachedPayment(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	db := newTestDB(t)
	uow := NewUnitOfWork(db)
	repo := NewOrderRepository(db)

	order := sampleOrder("o-1", now)
	if err := uow.Execute(ctx, func(tx interfaces.ITx) error { return tx.InsertOrder(ctx, order) }); err != nil {
		t.Fatal(err)
	}

	// The transition was computed from a read taken before the payment was attached.
	stale, err := repo.GetByID(ctx, "o-1")
	if err != nil {
		t.Fatal(err)
	}
	if err := repo.AttachPayment(ctx, "o-1", "pay-9", "bank_transfer"); err != nil {
		t.Fatal(err)
	}
	if err := stale.Cancel(now.Add(time.Minute)); err != nil {
		t.Fatal(err)
	}
	if err := uow.Execute(ctx, func(tx interfaces.ITx) error {
		return tx.UpdateOrder(ctx, stale, entities.OrderStatusPending)
	}); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	stored, _ := repo.GetByID(ctx, "o-1")
	if stored.Status != entities.OrderStatusCanceled || stored.PaymentID != "pay-9" || stored.PaymentType != "bank_transfer" {
		t.Fatalf("attached payment was lost: %+v", stored)
	}
}

func TestOrderRepository_Queries(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	db := newTestDB(t)
	uow := NewUnitOfWork(db)
	repo := NewOrderRepository(db)

	due := sampleOrder("o-due", now.Add(-time.Hour))
	fresh := sampleOrder("o-fresh", now)
	other := sampleOrder("o-other", now.Add(-2*time.Hour))
	other.UserID = "user-2"
	other.Status = entities.OrderStatusCanceled
	for _, o := range []entities.Order{due, fresh, other} {
		o := o
		if err := uow.Execute(ctx, func(tx interfaces.ITx) error { return tx.InsertOrder(ctx, o) }); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("expired pending", func(t *testing.T) {
		got, err := repo.ListExpiredPending(ctx, now, 10)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 1 || got[0].ID != "o-due" {
			t.Fatalf("expected only o-due, got %+v", got)
		}
	})

	t.Run("by user", func(t *testing.T) {
		got, err := repo.ListByUserID(ctx, "user-1")
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 orders, got %d", len(got))
		}
	})

	t.Run("by status", func(t *testing.T) {
		got, err := repo.ListByStatus(ctx, entities.OrderStatusCanceled)
		if err != nil || len(got) != 1 || got[0].ID != "o-other" {
			t.Fatalf("unexpected result: %+v err=%v", got, err)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero order, got %+v err=%v", got, err)
		}
	})

	t.Run("attach payment only while pending", func(t *testing.T) {
		if err := repo.AttachPayment(ctx, "o-fresh", "pay-9", "bank_transfer"); err != nil {
			t.Fatal(err)
		}
		if err := repo.AttachPayment(ctx, "o-other", "pay-10", "ticket"); err != nil {
			t.Fatal(err)
		}
		fresh, _ := repo.GetByID(ctx, "o-fresh")
		other, _ := repo.GetByID(ctx, "o-other")
		if fresh.PaymentID != "pay-9" {
			t.Fatalf("payment not attached: %+v", fresh)
		}
		if other.PaymentID != "" {
			t.Fatalf("canceled order must not change: %+v", other)
		}
	})
}

func TestExchangeAndCustomerRepositories(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	db := newTestDB(t)
	uow := NewUnitOfWork(db)

	ex := entities.ExchangeRequest{
		ID: "ex-1", OrderID: "o-1", UserID: "user-1", Kind: entities.ExchangeKindReturn,
		Reason: "too small", Evidence: []string{"https://img/1.jpg"}, Status: entities.ExchangeStatusPending, CreatedAt: now,
	}
	if err := uow.Execute(ctx, func(tx interfaces.ITx) error { return tx.InsertExchange(ctx, ex) }); err != nil {
		t.Fatal(err)
	}

	resolved := ex
	if err := resolved.Resolve(true, "ok", now); err != nil {
		t.Fatal(err)
	}
	if err := uow.Execute(ctx, func(tx interfaces.ITx) error {
		return tx.UpdateExchange(ctx, resolved, entities.ExchangeStatusPending)
	}); err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	err := uow.Execute(ctx, func(tx interfaces.ITx) error {
		return tx.UpdateExchange(ctx, resolved, entities.ExchangeStatusPending)
	})
	if !errors.Is(err, entities.ErrConcurrentModification) {
		t.Fatalf("second resolve must lose the guard, got %v", err)
	}

	exchanges := NewExchangeRepository(db)
	got, err := exchanges.GetByID(ctx, "ex-1")
	if err != nil || got.Status != entities.ExchangeStatusApproved || len(got.Evidence) != 1 || got.ResolvedAt == nil {
		t.Fatalf("unexpected exchange: %+v err=%v", got, err)
	}
	byOrder, err := exchanges.ListByOrderID(ctx, "o-1")
	if err != nil || len(byOrder) != 1 {
		t.Fatalf("unexpected list: %+v err=%v", byOrder, err)
	}

	customers := NewCustomerRepository(db)
	first, err := customers.SaveIfAbsent(ctx, entities.Customer{UserID: "user-1", GatewayCustomerID: "cus-1", CreatedAt: now})
	if err != nil || first.GatewayCustomerID != "cus-1" {
		t.Fatalf("unexpected first save: %+v err=%v", first, err)
	}
	second, err := customers.SaveIfAbsent(ctx, entities.Customer{UserID: "user-1", GatewayCustomerID: "cus-2", CreatedAt: now})
	if err != nil || second.GatewayCustomerID != "cus-1" {
		t.Fatalf("first stored customer must win: %+v err=%v", second, err)
	}
}
