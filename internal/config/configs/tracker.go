package configs

import "time"

// Tracker holds configuration for the ad tracker HTTP API. BaseURL and
// APIKey are required; there are no sensible defaults for a third-party
// endpoint.
type Tracker struct {
	// BaseURL is the root of the tracker API, without a trailing slash.
	BaseURL string `env:"BASE_URL,required"`
	// APIKey is sent on every request in the Api-Key header.
	APIKey string `env:"API_KEY,required"`
	// Timeout is the per-call deadline for tracker requests.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}
