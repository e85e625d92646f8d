package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"smm-fulfillment/internal/core/domain"
	"smm-fulfillment/internal/core/port"
)

// Aggregate fetches live tracker stats for every active binding of the
// order and reduces them into one composite view. Fetches run in parallel
// with bounded concurrency; a per-binding failure degrades to that
// binding's stored counters and never aborts the run. Fresh counters are
// written back to the binding rows as a side effect. Unknown order ids
// yield ErrOrderNotFound.
func (e *Engine) Aggregate(ctx context.Context, orderID int64) (*port.AggregatedStats, error) {
	order, err := e.repo.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, port.ErrOrderNotFound
	}
	return e.aggregate(ctx, orderID)
}

// aggregate is Aggregate without the order existence check, for callers
// that already hold the order row.
func (e *Engine) aggregate(ctx context.Context, orderID int64) (*port.AggregatedStats, error) {
	bindings, err := e.repo.ListActiveBindings(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(bindings) == 0 {
		return &port.AggregatedStats{Status: domain.StatusUnknown}, nil
	}

	results := make([]port.CampaignStats, len(bindings))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.statsConcurrency)
	for i, b := range bindings {
		i, b := i, b
		g.Go(func() error {
			stats, err := e.gateway.GetCampaignStats(gctx, b.ExternalCampaignID)
			if err != nil {
				e.logger.Warn("stats fetch failed, falling back to stored counters",
					slog.Int64("order_id", orderID),
					slog.Int64("campaign_id", b.ExternalCampaignID),
					slog.Any("error", err))
				results[i] = port.CampaignStats{
					Clicks:      b.Clicks,
					Conversions: b.Conversions,
					Cost:        b.Cost,
					Revenue:     b.Revenue,
					Status:      string(b.Status),
				}
				return nil
			}
			results[i] = stats
			if err := e.repo.UpdateBindingCounters(gctx, b.ID, stats); err != nil {
				e.logger.Warn("binding counter refresh failed",
					slog.Int64("binding_id", b.ID),
					slog.Any("error", err))
			}
			return nil
		})
	}
	// per-binding failures are absorbed above, so Wait never returns one
	_ = g.Wait()

	agg := &port.AggregatedStats{}
	ids := make([]string, len(bindings))
	statuses := make([]domain.BindingStatus, len(bindings))
	for i, b := range bindings {
		ids[i] = strconv.FormatInt(b.ExternalCampaignID, 10)
		agg.Clicks += results[i].Clicks
		agg.Conversions += results[i].Conversions
		agg.Cost += results[i].Cost
		agg.Revenue += results[i].Revenue
		statuses[i] = domain.BindingStatus(results[i].Status)
	}
	agg.CampaignIDs = strings.Join(ids, ",")
	agg.Status = reduceStatus(statuses)
	return agg, nil
}

// reduceStatus derives the order-level status from per-binding statuses:
// any ACTIVE wins; otherwise the majority status, with ties broken by
// first encounter. The all-equal case falls out of the majority rule.
func reduceStatus(statuses []domain.BindingStatus) domain.BindingStatus {
	if len(statuses) == 0 {
		return domain.StatusUnknown
	}
	counts := make(map[domain.BindingStatus]int, len(statuses))
	var order []domain.BindingStatus
	for _, s := range statuses {
		if s == domain.BindingActive {
			return domain.BindingActive
		}
		if _, seen := counts[s]; !seen {
			order = append(order, s)
		}
		counts[s]++
	}
	best := order[0]
	for _, s := range order[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return best
}
