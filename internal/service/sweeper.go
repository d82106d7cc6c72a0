package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var staleUnpaidOrders = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "checkout_service",
	Subsystem: "sweeper",
	Name:      "stale_unpaid_orders",
	Help:      "Number of unpaid orders older than the configured max age.",
})

type UnpaidCounter interface {
	CountUnpaidBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// Sweeper periodically reports unpaid orders that never completed payment,
// e.g. because the provider call failed after the order was persisted.
// It only reports; cleanup is an operator decision.
type Sweeper struct {
	logger   *slog.Logger
	orders   UnpaidCounter
	interval time.Duration
	maxAge   time.Duration
}

func NewSweeper(logger *slog.Logger, orders UnpaidCounter, interval, maxAge time.Duration) *Sweeper {
	return &Sweeper{
		logger:   logger.With(slog.String("service", "sweeper")),
		orders:   orders,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (s *Sweeper) Start(ctx context.Context) error {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				s.sweep(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
	return nil
}

func (s *Sweeper) sweep(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.maxAge)

	count, err := s.orders.CountUnpaidBefore(ctx, cutoff)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to count stale unpaid orders", slog.Any("error", err))
		return
	}

	staleUnpaidOrders.Set(float64(count))
	if count > 0 {
		s.logger.WarnContext(ctx, "stale unpaid orders found",
			slog.Int("count", count), slog.Time("cutoff", cutoff))
	}
}
