package port

import (
	"context"
	"time"

	"smm-fulfillment/internal/core/domain"
)

// FulfillmentRepository defines the persistence layer for the engine. It
// is an outbound port in hexagonal architecture. The fixed campaign pool
// and coefficient tables are read-only from the engine's perspective.
type FulfillmentRepository interface {
	// GetOrder returns the order by id, or nil when it does not exist.
	GetOrder(ctx context.Context, orderID int64) (*domain.Order, error)
	// UpdateOrderStatus writes the order lifecycle status.
	UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error
	// RecordOrderProgress stores the last observed conversion count and
	// the time progress was last seen, for stall detection.
	RecordOrderProgress(ctx context.Context, orderID int64, conversions int64, at time.Time) error
	// ListOrderIDsByStatus returns ids of orders in any of the given
	// statuses, oldest first.
	ListOrderIDsByStatus(ctx context.Context, statuses ...domain.OrderStatus) ([]int64, error)

	// ListActiveFixedCampaigns returns the active pool entries for a geo
	// key ordered by priority (highest first), then id. The returned set
	// is stable for the duration of one distribution run.
	ListActiveFixedCampaigns(ctx context.Context, geoKey string) ([]domain.FixedCampaign, error)
	// GetCoefficient returns the coefficient row for a service category,
	// or nil when none is configured.
	GetCoefficient(ctx context.Context, serviceCategory string) (*domain.Coefficient, error)

	// CreateBinding inserts one order-to-campaign binding row.
	CreateBinding(ctx context.Context, b *domain.CampaignBinding) error
	// ListBindings returns every binding of the order, stopped ones
	// included, in insertion order.
	ListBindings(ctx context.Context, orderID int64) ([]domain.CampaignBinding, error)
	// ListActiveBindings returns the order's bindings with active = true,
	// in insertion order.
	ListActiveBindings(ctx context.Context, orderID int64) ([]domain.CampaignBinding, error)
	// UpdateBindingCounters refreshes a binding's delivery counters from
	// freshly fetched tracker stats.
	UpdateBindingCounters(ctx context.Context, bindingID int64, stats CampaignStats) error
	// StopAllBindings marks every active binding of the order STOPPED and
	// inactive. Idempotent; rows are never deleted.
	StopAllBindings(ctx context.Context, orderID int64) error
	// ResumeAllBindings flips stopped bindings back to ACTIVE. Idempotent.
	ResumeAllBindings(ctx context.Context, orderID int64) error
}
