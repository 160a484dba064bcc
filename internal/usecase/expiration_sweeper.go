package usecase

import (
	"context"
	"errors"
	"time"

	"storefront_orders/internal/domain/entities"
	"storefront_orders/internal/infrastructure/metrics"
	"storefront_orders/internal/usecase/interfaces"
	"storefront_orders/pkg/logger"

	"go.uber.org/zap"
)

type SweepResult struct {
	Candidates int
	Expired    int
	Skipped    int
	Failed     int
}

// ExpirationSweeper lapses PENDING orders whose hold window is over.
//
// It goes through the state machine like any other caller, so an order that
// was paid or canceled between listing and expiring is skipped, not expired.
type ExpirationSweeper struct {
	orders   interfaces.IOrderRepository
	machine  *OrderStateMachine
	interval time.Duration
	batch    int
}

func NewExpirationSweeper(orders interfaces.IOrderRepository, machine *OrderStateMachine, interval time.Duration, batch int) *ExpirationSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if batch <= 0 {
		batch = 100
	}
	return &ExpirationSweeper{orders: orders, machine: machine, interval: interval, batch: batch}
}

// Run sweeps every interval until ctx is done.
func (s *ExpirationSweeper) Run(ctx context.Context) {
	logger.Info("[sweeper] started", zap.Duration("interval", s.interval), zap.Int("batch", s.batch))
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logger.Info("[sweeper] stopped")
			return
		case <-ticker.C:
			if _, err := s.SweepOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("[sweeper] sweep failed", zap.Error(err))
			}
		}
	}
}

// SweepOnce expires everything due now. A failing order is logged and left
// for the next run; it never stops the batch.
func (s *ExpirationSweeper) SweepOnce(ctx context.Context) (SweepResult, error) {
	var total SweepResult
	for {
		now := s.machine.Now()
		due, err := s.orders.ListExpiredPending(ctx, now, s.batch)
		if err != nil {
			return total, err
		}
		round := s.expireAll(ctx, due)
		total.Candidates += round.Candidates
		total.Expired += round.Expired
		total.Skipped += round.Skipped
		total.Failed += round.Failed

		// Keep paging only while a full batch made progress.
		if len(due) < s.batch || round.Expired == 0 || ctx.Err() != nil {
			break
		}
	}
	if total.Candidates > 0 {
		logger.Info("[sweeper] sweep finished",
			zap.Int("candidates", total.Candidates), zap.Int("expired", total.Expired),
			zap.Int("skipped", total.Skipped), zap.Int("failed", total.Failed))
	}
	return total, nil
}

func (s *ExpirationSweeper) expireAll(ctx context.Context, due []entities.Order) SweepResult {
	res := SweepResult{Candidates: len(due)}
	for _, o := range due {
		if ctx.Err() != nil {
			break
		}
		_, err := s.machine.Expire(ctx, o.ID)
		switch {
		case err == nil:
			res.Expired++
			metrics.SweeperExpired.Inc()
		case errors.Is(err, entities.ErrInvalidTransition):
			res.Skipped++
			logger.Debug("[sweeper] order left PENDING before expiry", zap.String("order_id", o.ID))
		default:
			res.Failed++
			metrics.SweeperFailures.Inc()
			logger.Error("[sweeper] expiring order failed", zap.String("order_id", o.ID), zap.Error(err))
		}
	}
	return res
}
