package port

import (
	"context"
	"fmt"
)

// GatewayError wraps a failure of one ad-tracker call. Op names the
// remote operation; failures are scoped to the single call that produced
// them, so an assignment or stats fetch error never aborts its batch.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("ad tracker %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// OfferCheck is the result of looking an offer up by its target URL.
type OfferCheck struct {
	Exists  bool
	OfferID string
}

// CampaignStats is one campaign's delivery counters as reported by the
// tracker. Status uses the tracker's vocabulary, which matches
// domain.BindingStatus for the values the engine cares about.
type CampaignStats struct {
	Clicks      int64
	Conversions int64
	Cost        float64
	Revenue     float64
	Status      string
}

// AdTrackerGateway abstracts the external ad-tracking API. Every method is
// a blocking remote call; implementations must apply a per-call timeout so
// one slow campaign cannot stall a whole distribution or aggregation run.
// All failures are reported as *GatewayError.
type AdTrackerGateway interface {
	// CheckOfferExists looks up an offer by target URL.
	CheckOfferExists(ctx context.Context, targetURL string) (OfferCheck, error)
	// CreateOffer registers a new offer and returns its id.
	CreateOffer(ctx context.Context, name, targetURL string) (string, error)
	// AssignOfferToCampaign binds an existing offer to a fixed campaign.
	AssignOfferToCampaign(ctx context.Context, offerID string, campaignID int64) error
	// GetCampaignStats returns the campaign's live delivery counters.
	GetCampaignStats(ctx context.Context, campaignID int64) (CampaignStats, error)
}
