package usecase

import (
	"log/slog"
	"time"

	"smm-fulfillment/internal/core/port"
)

const (
	defaultHoldingGracePeriod = 30 * time.Minute
	defaultStatsConcurrency   = 4
)

// Options tunes engine behaviour. Zero values fall back to defaults.
type Options struct {
	// HoldingGracePeriod is how long an ACTIVE order may go without new
	// conversions before it is parked in HOLDING.
	HoldingGracePeriod time.Duration
	// StatsConcurrency bounds the parallel tracker stats fetches of one
	// aggregation run.
	StatsConcurrency int
}

// Engine implements port.FulfillmentUseCase. It orchestrates the
// repository, the ad-tracker gateway and the per-order lock to distribute
// click volume, aggregate delivery stats and drive the order lifecycle.
type Engine struct {
	repo    port.FulfillmentRepository
	gateway port.AdTrackerGateway
	locker  port.OrderLocker
	coeffs  *CoefficientResolver
	logger  *slog.Logger

	holdingGrace     time.Duration
	statsConcurrency int
	now              func() time.Time
}

// NewEngine creates the fulfillment engine with the provided dependencies.
func NewEngine(repo port.FulfillmentRepository, gateway port.AdTrackerGateway, locker port.OrderLocker, logger *slog.Logger, opts Options) *Engine {
	if opts.HoldingGracePeriod <= 0 {
		opts.HoldingGracePeriod = defaultHoldingGracePeriod
	}
	if opts.StatsConcurrency <= 0 {
		opts.StatsConcurrency = defaultStatsConcurrency
	}
	return &Engine{
		repo:             repo,
		gateway:          gateway,
		locker:           locker,
		coeffs:           NewCoefficientResolver(repo, logger),
		logger:           logger,
		holdingGrace:     opts.HoldingGracePeriod,
		statsConcurrency: opts.StatsConcurrency,
		now:              time.Now,
	}
}
