package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"smm-fulfillment/internal/core/domain"
	"smm-fulfillment/internal/core/port"
)

// Distribute converts the order target into a required click volume,
// ensures a tracker offer exists for the target URL and assigns it to
// every eligible fixed campaign, persisting one binding per successful
// assignment. Assignments fail independently; only the offer stage and the
// campaign pool are batch-fatal. The whole run holds the per-order lock.
func (e *Engine) Distribute(ctx context.Context, req port.DistributionRequest) (*port.DistributionResult, error) {
	release, err := e.locker.Acquire(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	defer release()

	coefficient := e.coeffs.Resolve(ctx, req.ServiceCategory, req.ClipCreated)
	totalClicks := domain.RequiredClicks(req.TargetQuantity, coefficient)

	pool, err := e.repo.ListActiveFixedCampaigns(ctx, req.GeoKey)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		res := e.failure(fmt.Sprintf("no campaigns available for geo %q", req.GeoKey))
		e.applyDistributionOutcome(ctx, req.OrderID, res)
		return res, nil
	}

	// Retry guard: campaigns already bound to this order keep their quota
	// and are excluded from this run.
	existing, err := e.repo.ListBindings(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}
	bound := make(map[int64]bool, len(existing))
	var boundClicks int64
	offerID := ""
	for _, b := range existing {
		bound[b.ExternalCampaignID] = true
		boundClicks += b.RequiredClicks
		offerID = b.OfferID
	}
	candidates := pool[:0:0]
	for _, c := range pool {
		if !bound[c.ExternalID] {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		res := &port.DistributionResult{
			Status:  port.DistributionSuccess,
			OfferID: offerID,
			Message: fmt.Sprintf("all %d campaigns already assigned", len(pool)),
		}
		e.applyDistributionOutcome(ctx, req.OrderID, res)
		return res, nil
	}

	remaining := totalClicks - boundClicks
	if remaining < 0 {
		remaining = 0
	}
	quotas := domain.SplitClicks(remaining, len(candidates))

	if offerID == "" {
		offerID, err = e.ensureOffer(ctx, req.OrderID, req.TargetURL)
		if err != nil {
			e.logger.Error("offer setup failed",
				slog.Int64("order_id", req.OrderID),
				slog.Any("error", err))
			res := e.failure(fmt.Sprintf("offer setup failed: %v", err))
			e.applyDistributionOutcome(ctx, req.OrderID, res)
			return res, nil
		}
	}

	var assigned []int64
	for i, c := range candidates {
		if err := e.gateway.AssignOfferToCampaign(ctx, offerID, c.ExternalID); err != nil {
			e.logger.Warn("offer assignment failed",
				slog.Int64("order_id", req.OrderID),
				slog.Int64("campaign_id", c.ExternalID),
				slog.Any("error", err))
			continue
		}
		binding := &domain.CampaignBinding{
			OrderID:            req.OrderID,
			ExternalCampaignID: c.ExternalID,
			OfferID:            offerID,
			RequiredClicks:     quotas[i],
			Active:             true,
			Status:             domain.BindingActive,
		}
		if err := e.repo.CreateBinding(ctx, binding); err != nil {
			e.logger.Warn("binding persist failed",
				slog.Int64("order_id", req.OrderID),
				slog.Int64("campaign_id", c.ExternalID),
				slog.Any("error", err))
			continue
		}
		assigned = append(assigned, c.ExternalID)
	}

	res := &port.DistributionResult{
		OfferID:          offerID,
		CampaignIDs:      assigned,
		CampaignsCreated: len(assigned),
	}
	switch {
	case len(assigned) == len(candidates):
		res.Status = port.DistributionSuccess
		res.Message = fmt.Sprintf("all %d campaigns assigned", len(candidates))
	case len(assigned) > 0:
		res.Status = port.DistributionPartialSuccess
		res.Message = fmt.Sprintf("%d out of %d campaigns assigned", len(assigned), len(candidates))
	default:
		res.Status = port.DistributionFailure
		res.Message = fmt.Sprintf("0 out of %d campaigns assigned", len(candidates))
	}
	e.applyDistributionOutcome(ctx, req.OrderID, res)
	return res, nil
}

// ensureOffer reuses the tracker offer registered for the target URL or
// creates one. One offer is shared by every campaign binding of the order.
func (e *Engine) ensureOffer(ctx context.Context, orderID int64, targetURL string) (string, error) {
	check, err := e.gateway.CheckOfferExists(ctx, targetURL)
	if err != nil {
		return "", err
	}
	if check.Exists {
		return check.OfferID, nil
	}
	return e.gateway.CreateOffer(ctx, fmt.Sprintf("order-%d", orderID), targetURL)
}

func (e *Engine) failure(msg string) *port.DistributionResult {
	return &port.DistributionResult{Status: port.DistributionFailure, Message: msg}
}
