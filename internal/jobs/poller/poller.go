package poller

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"smm-fulfillment/internal/core/domain"
	"smm-fulfillment/internal/core/port"
)

const defaultInterval = time.Minute

// Poller periodically re-evaluates every non-terminal order so lifecycle
// transitions happen without an external caller driving /evaluate. Orders
// locked by a concurrent writer are skipped and picked up on the next
// tick.
type Poller struct {
	repo     port.FulfillmentRepository
	svc      port.FulfillmentUseCase
	interval time.Duration
	logger   *slog.Logger
}

func New(repo port.FulfillmentRepository, svc port.FulfillmentUseCase, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{repo: repo, svc: svc, interval: interval, logger: logger}
}

// Run blocks until ctx is cancelled, evaluating all live orders once per
// interval.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info("order poller started", slog.Duration("interval", p.interval))
	for {
		select {
		case <-ctx.Done():
			p.logger.Info("order poller stopped")
			return
		case <-ticker.C:
			p.Tick(ctx)
		}
	}
}

// Tick evaluates every order currently in a live status. One pass; errors
// are logged per order and do not stop the sweep.
func (p *Poller) Tick(ctx context.Context) {
	ids, err := p.repo.ListOrderIDsByStatus(ctx,
		domain.OrderProcessing, domain.OrderActive, domain.OrderHolding)
	if err != nil {
		p.logger.Error("list live orders failed", slog.Any("error", err))
		return
	}

	for _, id := range ids {
		status, err := p.svc.EvaluateOrder(ctx, id)
		switch {
		case errors.Is(err, port.ErrOrderLocked):
			p.logger.Debug("order busy, skipping", slog.Int64("order_id", id))
		case err != nil:
			p.logger.Error("order evaluation failed",
				slog.Int64("order_id", id), slog.Any("error", err))
		default:
			p.logger.Debug("order evaluated",
				slog.Int64("order_id", id), slog.String("status", string(status)))
		}
	}
}
