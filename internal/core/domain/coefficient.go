package domain

import "time"

// Default multipliers applied when no coefficient row is configured for a
// service category. A created clip converts better, so it needs fewer
// clicks per unit of engagement.
const (
	DefaultCoefficientWithClip    = 3.0
	DefaultCoefficientWithoutClip = 4.0
)

// Coefficient converts a customer-facing engagement target (views, likes,
// follows) into the click volume required from the tracker. One row per
// service category, with separate multipliers depending on whether a
// promo clip was produced for the order. Values are always >= 1.0.
type Coefficient struct {
	ServiceCategory string
	WithClip        float64
	WithoutClip     float64
	UpdatedAt       time.Time
}

// Value returns the multiplier for the given clip flag.
func (c Coefficient) Value(clipCreated bool) float64 {
	if clipCreated {
		return c.WithClip
	}
	return c.WithoutClip
}

// DefaultCoefficient returns the fallback multiplier for the clip flag.
func DefaultCoefficient(clipCreated bool) float64 {
	if clipCreated {
		return DefaultCoefficientWithClip
	}
	return DefaultCoefficientWithoutClip
}
