package configs

import "time"

// Fulfillment tunes the distribution engine and the background order
// evaluation poller.
type Fulfillment struct {
	// HoldingGracePeriod is how long an active order may go without new
	// conversions before it is parked in HOLDING.
	HoldingGracePeriod time.Duration `env:"HOLDING_GRACE_PERIOD" envDefault:"30m"`
	// PollInterval is how often the poller re-evaluates non-terminal orders.
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"1m"`
	// StatsConcurrency bounds the parallel tracker stats calls per order.
	StatsConcurrency int `env:"STATS_CONCURRENCY" envDefault:"4"`
}
