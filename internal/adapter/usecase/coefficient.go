package usecase

import (
	"context"
	"log/slog"

	"smm-fulfillment/internal/core/domain"
	"smm-fulfillment/internal/core/port"
)

// CoefficientResolver maps (service category, clip flag) to the multiplier
// converting engagement targets into click volume. Resolution never fails:
// a missing row, a repository error or a nonsense value all yield the
// default, because pricing must not block order processing.
type CoefficientResolver struct {
	repo   port.FulfillmentRepository
	logger *slog.Logger
}

func NewCoefficientResolver(repo port.FulfillmentRepository, logger *slog.Logger) *CoefficientResolver {
	return &CoefficientResolver{repo: repo, logger: logger}
}

// Resolve returns the multiplier for the category and clip flag.
func (r *CoefficientResolver) Resolve(ctx context.Context, serviceCategory string, clipCreated bool) float64 {
	c, err := r.repo.GetCoefficient(ctx, serviceCategory)
	if err != nil {
		r.logger.Warn("coefficient lookup failed, using default",
			slog.String("service_category", serviceCategory),
			slog.Any("error", err))
		return domain.DefaultCoefficient(clipCreated)
	}
	if c == nil {
		return domain.DefaultCoefficient(clipCreated)
	}
	v := c.Value(clipCreated)
	if v < 1.0 {
		// a multiplier below 1.0 would under-deliver
		return domain.DefaultCoefficient(clipCreated)
	}
	return v
}
