package configs

import "time"

// Redis holds configuration for the redis instance backing the per-order
// distributed locks.
type Redis struct {
	// Address is the host:port of the redis server.
	Address string `env:"ADDRESS" envDefault:"localhost:6379"`
	// Password authenticates against the server when set.
	Password string `env:"PASSWORD" envDefault:""`
	// DB selects the logical database.
	DB int `env:"DB" envDefault:"0"`
	// LockTTL bounds how long a crashed lock holder can block an order.
	// Must exceed the longest distribution run: tracker timeout times the
	// campaign pool size plus the offer setup calls.
	LockTTL time.Duration `env:"LOCK_TTL" envDefault:"5m"`
}
