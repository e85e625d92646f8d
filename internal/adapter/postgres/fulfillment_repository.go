package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smm-fulfillment/internal/core/domain"
	"smm-fulfillment/internal/core/port"
)

// FulfillmentRepository implements port.FulfillmentRepository using
// pgxpool for PostgreSQL.
type FulfillmentRepository struct {
	pool *pgxpool.Pool
}

// NewFulfillmentRepository returns a new repository instance.
func NewFulfillmentRepository(pool *pgxpool.Pool) *FulfillmentRepository {
	return &FulfillmentRepository{pool: pool}
}

// GetOrder returns the order by id, or nil when it does not exist.
func (r *FulfillmentRepository) GetOrder(ctx context.Context, orderID int64) (*domain.Order, error) {
	var o domain.Order
	var lastProgress *time.Time
	err := r.pool.QueryRow(ctx, `SELECT id, service_category, target_quantity, target_url, geo_key, clip_created,
		status, last_conversions, last_progress_at, created_at, updated_at
		FROM orders WHERE id = $1`, orderID).
		Scan(&o.ID, &o.ServiceCategory, &o.TargetQuantity, &o.TargetURL, &o.GeoKey, &o.ClipCreated,
			&o.Status, &o.LastConversions, &lastProgress, &o.CreatedAt, &o.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	// NULL means progress was never recorded; the zero time carries that
	if lastProgress != nil {
		o.LastProgressAt = *lastProgress
	}
	return &o, nil
}

// UpdateOrderStatus writes the order lifecycle status.
func (r *FulfillmentRepository) UpdateOrderStatus(ctx context.Context, orderID int64, status domain.OrderStatus) error {
	_, err := r.pool.Exec(ctx, `UPDATE orders SET status = $1, updated_at = now() WHERE id = $2`, status, orderID)
	return err
}

// RecordOrderProgress stores the last observed conversion count and the
// time progress was last seen.
func (r *FulfillmentRepository) RecordOrderProgress(ctx context.Context, orderID int64, conversions int64, at time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE orders SET last_conversions = $1, last_progress_at = $2, updated_at = now() WHERE id = $3`,
		conversions, at, orderID)
	return err
}

// ListOrderIDsByStatus returns ids of orders in any of the given
// statuses, oldest first.
func (r *FulfillmentRepository) ListOrderIDsByStatus(ctx context.Context, statuses ...domain.OrderStatus) ([]int64, error) {
	if len(statuses) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(statuses))
	args := make([]interface{}, len(statuses))
	for i, s := range statuses {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = s
	}
	query := fmt.Sprintf(`SELECT id FROM orders WHERE status IN (%s) ORDER BY created_at, id`,
		strings.Join(placeholders, ","))
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (int64, error) {
		var id int64
		err := row.Scan(&id)
		return id, err
	})
}

// ListActiveFixedCampaigns returns the active pool for a geo key ordered
// by priority (highest first), then id, so one distribution run sees a
// stable set.
func (r *FulfillmentRepository) ListActiveFixedCampaigns(ctx context.Context, geoKey string) ([]domain.FixedCampaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, external_id, name, geo_key, active, priority, created_at, updated_at
		FROM fixed_campaigns WHERE geo_key = $1 AND active ORDER BY priority DESC, id`, geoKey)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.FixedCampaign, error) {
		var c domain.FixedCampaign
		err := row.Scan(&c.ID, &c.ExternalID, &c.Name, &c.GeoKey, &c.Active, &c.Priority, &c.CreatedAt, &c.UpdatedAt)
		return c, err
	})
}

// GetCoefficient returns the coefficient row for a service category, or
// nil when none is configured.
func (r *FulfillmentRepository) GetCoefficient(ctx context.Context, serviceCategory string) (*domain.Coefficient, error) {
	var c domain.Coefficient
	err := r.pool.QueryRow(ctx, `SELECT service_category, with_clip, without_clip, updated_at
		FROM conversion_coefficients WHERE service_category = $1`, serviceCategory).
		Scan(&c.ServiceCategory, &c.WithClip, &c.WithoutClip, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// CreateBinding inserts one order-to-campaign binding row.
func (r *FulfillmentRepository) CreateBinding(ctx context.Context, b *domain.CampaignBinding) error {
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	return r.pool.QueryRow(ctx, `INSERT INTO order_campaigns
		(order_id, external_campaign_id, offer_id, required_clicks, clicks, conversions, cost, revenue, active, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12) RETURNING id`,
		b.OrderID, b.ExternalCampaignID, b.OfferID, b.RequiredClicks, b.Clicks, b.Conversions,
		b.Cost, b.Revenue, b.Active, b.Status, b.CreatedAt, b.UpdatedAt).Scan(&b.ID)
}

// ListBindings returns every binding of the order in insertion order.
func (r *FulfillmentRepository) ListBindings(ctx context.Context, orderID int64) ([]domain.CampaignBinding, error) {
	return r.listBindings(ctx, orderID, false)
}

// ListActiveBindings returns the order's bindings with active = true.
func (r *FulfillmentRepository) ListActiveBindings(ctx context.Context, orderID int64) ([]domain.CampaignBinding, error) {
	return r.listBindings(ctx, orderID, true)
}

func (r *FulfillmentRepository) listBindings(ctx context.Context, orderID int64, activeOnly bool) ([]domain.CampaignBinding, error) {
	query := `SELECT id, order_id, external_campaign_id, offer_id, required_clicks, clicks, conversions,
		cost, revenue, active, status, created_at, updated_at
		FROM order_campaigns WHERE order_id = $1`
	if activeOnly {
		query += ` AND active`
	}
	query += ` ORDER BY id`
	rows, err := r.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CampaignBinding, error) {
		var b domain.CampaignBinding
		err := row.Scan(&b.ID, &b.OrderID, &b.ExternalCampaignID, &b.OfferID, &b.RequiredClicks,
			&b.Clicks, &b.Conversions, &b.Cost, &b.Revenue, &b.Active, &b.Status, &b.CreatedAt, &b.UpdatedAt)
		return b, err
	})
}

// UpdateBindingCounters refreshes a binding's delivery counters from
// freshly fetched tracker stats.
func (r *FulfillmentRepository) UpdateBindingCounters(ctx context.Context, bindingID int64, stats port.CampaignStats) error {
	_, err := r.pool.Exec(ctx, `UPDATE order_campaigns
		SET clicks = $1, conversions = $2, cost = $3, revenue = $4, updated_at = now() WHERE id = $5`,
		stats.Clicks, stats.Conversions, stats.Cost, stats.Revenue, bindingID)
	return err
}

// StopAllBindings marks every active binding of the order STOPPED and
// inactive. Rows are retained for audit.
func (r *FulfillmentRepository) StopAllBindings(ctx context.Context, orderID int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE order_campaigns
		SET active = false, status = $1, updated_at = now() WHERE order_id = $2 AND active`,
		domain.BindingStopped, orderID)
	return err
}

// ResumeAllBindings flips the order's stopped bindings back to ACTIVE.
func (r *FulfillmentRepository) ResumeAllBindings(ctx context.Context, orderID int64) error {
	_, err := r.pool.Exec(ctx, `UPDATE order_campaigns
		SET active = true, status = $1, updated_at = now() WHERE order_id = $2 AND NOT active`,
		domain.BindingActive, orderID)
	return err
}
