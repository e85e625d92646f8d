package port

import (
	"context"
	"errors"

	"smm-fulfillment/internal/core/domain"
)

// ErrOrderNotFound is returned by status queries for unknown order ids.
var ErrOrderNotFound = errors.New("order not found")

// DistributionStatus classifies the outcome of one distribution run.
// Partial success is a first-class business outcome, not an error.
type DistributionStatus string

const (
	DistributionSuccess        DistributionStatus = "SUCCESS"
	DistributionPartialSuccess DistributionStatus = "PARTIAL_SUCCESS"
	DistributionFailure        DistributionStatus = "FAILURE"
)

// DistributionRequest carries the order targeting fields the engine needs
// to spread the required click volume over the fixed campaign pool.
type DistributionRequest struct {
	OrderID         int64
	ServiceCategory string
	TargetQuantity  int64
	TargetURL       string
	ClipCreated     bool
	GeoKey          string
}

// DistributionResult reports how a distribution run went. CampaignIDs
// holds the external ids of campaigns that received the offer in this run;
// Message is the human-readable summary surfaced to callers ("2 out of 3
// campaigns assigned").
type DistributionResult struct {
	Status           DistributionStatus
	OfferID          string
	CampaignIDs      []int64
	CampaignsCreated int
	Message          string
}

// AggregatedStats is the order-level reduction of all active binding
// counters. CampaignIDs is a comma-joined list of external campaign ids in
// binding insertion order. Status is ACTIVE when any binding is active,
// UNKNOWN when there are no bindings to aggregate.
type AggregatedStats struct {
	CampaignIDs string
	Clicks      int64
	Conversions int64
	Cost        float64
	Revenue     float64
	Status      domain.BindingStatus
}

// FulfillmentUseCase defines the order fulfillment operations exposed by
// the engine. This is the primary port into the application domain; mock
// implementations can be generated from it for testing.
type FulfillmentUseCase interface {
	// Distribute converts the order target into a click volume, ensures a
	// tracker offer exists for the target URL and assigns it to every
	// eligible fixed campaign. Campaign assignments fail independently;
	// the returned result classifies the overall outcome. Re-running is
	// safe: already-bound campaigns are skipped.
	Distribute(ctx context.Context, req DistributionRequest) (*DistributionResult, error)

	// Aggregate fetches live tracker stats for every active binding of the
	// order and reduces them into one composite view. Per-binding fetch
	// failures degrade to the last stored counters. An order with no
	// active bindings yields zero stats with status UNKNOWN; an unknown
	// order id yields ErrOrderNotFound.
	Aggregate(ctx context.Context, orderID int64) (*AggregatedStats, error)

	// EvaluateOrder aggregates and advances the order lifecycle: first
	// observed progress moves PROCESSING to ACTIVE, reaching the target
	// conversion count completes the order and stops its bindings, and a
	// stalled order is parked in HOLDING. Returns the resulting status.
	EvaluateOrder(ctx context.Context, orderID int64) (domain.OrderStatus, error)

	// StopAll marks every active binding of the order STOPPED. The fixed
	// campaigns themselves are untouched. Idempotent.
	StopAll(ctx context.Context, orderID int64) error

	// ResumeAll flips stopped bindings back to ACTIVE. Idempotent.
	ResumeAll(ctx context.Context, orderID int64) error

	// CurrentStatus returns the order's lifecycle status, or
	// ErrOrderNotFound for an unknown id.
	CurrentStatus(ctx context.Context, orderID int64) (domain.OrderStatus, error)
}
