package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a fixed campaign pool per geo, conversion
// coefficients for the common service categories and a couple of pending
// orders to distribute against.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	campaigns := []struct {
		externalID int64
		geo        string
		priority   int
	}{
		{101, "US", 30}, {102, "US", 20}, {103, "US", 10},
		{201, "EU", 20}, {202, "EU", 10},
		{301, "WW", 10},
	}
	for _, c := range campaigns {
		name := fmt.Sprintf("fixed-%s-%d", c.geo, c.externalID)
		_, err := db.Exec(ctx, `INSERT INTO fixed_campaigns
    (external_id, name, geo_key, active, priority, created_at, updated_at)
VALUES ($1,$2,$3,true,$4,now(),now()) ON CONFLICT (external_id) DO NOTHING`,
			c.externalID, name, c.geo, c.priority)
		if err != nil {
			return err
		}
	}

	coefficients := []struct {
		category          string
		withClip, without float64
	}{
		{"views", 2.5, 3.5},
		{"subscribers", 8.0, 12.0},
		{"reactions", 4.0, 6.0},
	}
	for _, c := range coefficients {
		_, err := db.Exec(ctx, `INSERT INTO conversion_coefficients
    (service_category, with_clip, without_clip, updated_at)
VALUES ($1,$2,$3,now()) ON CONFLICT (service_category) DO NOTHING`,
			c.category, c.withClip, c.without)
		if err != nil {
			return err
		}
	}

	orders := []struct {
		id          int64
		category    string
		quantity    int64
		url         string
		geo         string
		clipCreated bool
	}{
		{1, "views", 1000, "https://t.me/demo/1", "US", true},
		{2, "subscribers", 500, "https://t.me/demo/2", "EU", false},
	}
	for _, o := range orders {
		_, err := db.Exec(ctx, `INSERT INTO orders
    (id, service_category, target_quantity, target_url, geo_key, clip_created,
     status, last_conversions, created_at, updated_at)
VALUES ($1,$2,$3,$4,$5,$6,'PENDING',0,now(),now()) ON CONFLICT (id) DO NOTHING`,
			o.id, o.category, o.quantity, o.url, o.geo, o.clipCreated)
		if err != nil {
			return err
		}
	}
	return nil
}
