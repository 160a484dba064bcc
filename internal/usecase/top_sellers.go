package usecase

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"

	"go.uber.org/zap"
)

// ITopSellersProvider serves the latest best-seller ranking.
type ITopSellersProvider interface {
	Current() entities.TopSellersSnapshot
}

// TopSellersRefresher recomputes the best-seller ranking from paid orders and
// publishes it as an immutable snapshot. Readers never block the refresh.
type TopSellersRefresher struct {
	orders   interfaces.IOrderRepository
	interval time.Duration
	window   time.Duration
	limit    int
	now      func() time.Time
	snapshot atomic.Pointer[entities.TopSellersSnapshot]
}

var _ ITopSellersProvider = (*TopSellersRefresher)(nil)

func NewTopSellersRefresher(orders interfaces.IOrderRepository, interval, window time.Duration, limit int) *TopSellersRefresher {
	if interval <= 0 {
		interval = time.Hour
	}
	if limit <= 0 {
		limit = 10
	}
	return &TopSellersRefresher{orders: orders, interval: interval, window: window, limit: limit, now: time.Now}
}

// Current returns the latest snapshot, or an empty one before the first refresh.
func (r *TopSellersRefresher) Current() entities.TopSellersSnapshot {
	if s := r.snapshot.Load(); s != nil {
		return *s
	}
	return entities.TopSellersSnapshot{Items: []entities.TopSeller{}}
}

// Refresh computes and publishes a new snapshot.
func (r *TopSellersRefresher) Refresh(ctx context.Context) (entities.TopSellersSnapshot, error) {
	now := r.now().UTC()
	var since time.Time
	if r.window > 0 {
		since = now.Add(-r.window)
	}

	counts := map[string]*entities.TopSeller{}
	for _, status := range []entities.OrderStatus{
		entities.OrderStatusPaid,
		entities.OrderStatusExchangeRequested,
		entities.OrderStatusExchanged,
	} {
		orders, err := r.orders.ListByStatus(ctx, status)
		if err != nil {
			return entities.TopSellersSnapshot{}, err
		}
		for _, o := range orders {
			if !since.IsZero() && o.CreatedAt.Before(since) {
				continue
			}
			for _, l := range o.Lines {
				ts, ok := counts[l.ProductID]
				if !ok {
					ts = &entities.TopSeller{ProductID: l.ProductID, ProductName: l.ProductName}
					counts[l.ProductID] = ts
				}
				ts.Quantity += l.Quantity
			}
		}
	}

	items := make([]entities.TopSeller, 0, len(counts))
	for _, ts := range counts {
		items = append(items, *ts)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Quantity != items[j].Quantity {
			return items[i].Quantity > items[j].Quantity
		}
		return items[i].ProductID < items[j].ProductID
	})
	if len(items) > r.limit {
		items = items[:r.limit]
	}

	snap := &entities.TopSellersSnapshot{Items: items, ComputedAt: now, StaleAfter: now.Add(2 * r.interval)}
	r.snapshot.Store(snap)
	logger.Info("[top-sellers] snapshot refreshed", zap.Int("items", len(items)))
	return *snap, nil
}

// Run refreshes immediately and then every interval until ctx is done.
func (r *TopSellersRefresher) Run(ctx context.Context) {
	if _, err := r.Refresh(ctx); err != nil {
		logger.Error("[top-sellers] refresh failed", zap.Error(err))
	}
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := r.Refresh(ctx); err != nil {
				logger.Error("[top-sellers] refresh failed", zap.Error(err))
			}
		}
	}
}
