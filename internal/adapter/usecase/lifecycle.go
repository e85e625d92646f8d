package usecase

import (
	"context"
	"log/slog"
	"time"

	"smm-fulfillment/internal/core/domain"
	"smm-fulfillment/internal/core/port"
)

// EvaluateOrder aggregates the order's delivery stats and advances its
// lifecycle. It is pull-based: callers (the poller, a handler) decide the
// cadence. Lifecycle writes hold the per-order lock so a racing trigger
// cannot double-transition.
func (e *Engine) EvaluateOrder(ctx context.Context, orderID int64) (domain.OrderStatus, error) {
	release, err := e.locker.Acquire(ctx, orderID)
	if err != nil {
		return "", err
	}
	defer release()

	order, err := e.repo.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", port.ErrOrderNotFound
	}
	if order.Status.Terminal() {
		return order.Status, nil
	}

	agg, err := e.aggregate(ctx, orderID)
	if err != nil {
		return "", err
	}

	now := e.now()
	progressed := agg.Conversions > order.LastConversions
	baseline := order.LastProgressAt
	// a zero or epoch timestamp means progress was never recorded; the
	// first evaluation establishes the stall baseline instead of counting
	// the grace period from 1970
	if progressed || !baseline.After(time.Unix(0, 0)) {
		if err := e.repo.RecordOrderProgress(ctx, orderID, agg.Conversions, now); err != nil {
			return "", err
		}
		baseline = now
	}

	next := order.Status
	if next == domain.OrderProcessing && (agg.Clicks > 0 || agg.Conversions > 0) {
		next = domain.OrderActive
	}
	if next == domain.OrderHolding && progressed {
		next = domain.OrderActive
	}
	if next == domain.OrderActive && agg.Conversions >= order.TargetQuantity {
		next = domain.OrderCompleted
	}
	if next == order.Status && next == domain.OrderActive &&
		!progressed && now.Sub(baseline) > e.holdingGrace {
		next = domain.OrderHolding
	}

	if next == order.Status {
		return next, nil
	}
	if err := e.repo.UpdateOrderStatus(ctx, orderID, next); err != nil {
		return "", err
	}
	e.logger.Info("order status changed",
		slog.Int64("order_id", orderID),
		slog.String("from", string(order.Status)),
		slog.String("to", string(next)),
		slog.Int64("conversions", agg.Conversions),
		slog.Int64("target", order.TargetQuantity))
	if next == domain.OrderCompleted {
		if err := e.repo.StopAllBindings(ctx, orderID); err != nil {
			return "", err
		}
	}
	return next, nil
}

// StopAll marks every active binding of the order STOPPED and inactive.
// The fixed campaigns in the tracker are shared and stay untouched.
// Idempotent.
func (e *Engine) StopAll(ctx context.Context, orderID int64) error {
	release, err := e.locker.Acquire(ctx, orderID)
	if err != nil {
		return err
	}
	defer release()
	return e.repo.StopAllBindings(ctx, orderID)
}

// ResumeAll flips the order's stopped bindings back to ACTIVE. Idempotent.
func (e *Engine) ResumeAll(ctx context.Context, orderID int64) error {
	release, err := e.locker.Acquire(ctx, orderID)
	if err != nil {
		return err
	}
	defer release()
	return e.repo.ResumeAllBindings(ctx, orderID)
}

// CurrentStatus returns the order's lifecycle status.
func (e *Engine) CurrentStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error) {
	order, err := e.repo.GetOrder(ctx, orderID)
	if err != nil {
		return "", err
	}
	if order == nil {
		return "", port.ErrOrderNotFound
	}
	return order.Status, nil
}

// applyDistributionOutcome lets the state machine consume a distribution
// result: SUCCESS or PARTIAL_SUCCESS moves the order to PROCESSING, a
// FAILURE parks it in HOLDING for a caller-driven retry. Orders the engine
// cannot see (targeting passed explicitly, row not yet created) are left
// alone.
func (e *Engine) applyDistributionOutcome(ctx context.Context, orderID int64, res *port.DistributionResult) {
	order, err := e.repo.GetOrder(ctx, orderID)
	if err != nil || order == nil {
		return
	}
	next := domain.OrderProcessing
	if res.Status == port.DistributionFailure {
		next = domain.OrderHolding
	}
	if next == order.Status || !order.Status.CanTransition(next) {
		return
	}
	if err := e.repo.UpdateOrderStatus(ctx, orderID, next); err != nil {
		e.logger.Warn("order status update failed",
			slog.Int64("order_id", orderID),
			slog.String("to", string(next)),
			slog.Any("error", err))
	}
}
