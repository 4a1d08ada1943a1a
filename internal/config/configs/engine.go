package configs

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Storage backends.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Engine configures the admission engine itself.
type Engine struct {
	// Timezone decides where calendar days start for daily counters.
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
	// PolicyFile overrides the built-in tier tables.
	PolicyFile string `env:"POLICY_FILE"`
	// Store holds campaigns, impressions and ad counters: memory or postgres.
	Store string `env:"STORE" envDefault:"postgres"`
	// QuotaStore holds quota counters: memory, postgres or redis.
	QuotaStore string `env:"QUOTA_STORE" envDefault:"postgres"`

	RetryCapacity int           `env:"RETRY_CAPACITY" envDefault:"1024"`
	RetryAttempts int           `env:"RETRY_ATTEMPTS" envDefault:"5"`
	RetryBackoff  time.Duration `env:"RETRY_BACKOFF" envDefault:"200ms"`
	// ResetInterval is how often the daily reset batch checks for a new day.
	ResetInterval time.Duration `env:"RESET_INTERVAL" envDefault:"1m"`
}

// Location loads the configured time zone.
func (c Engine) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Validate checks backend names and numeric bounds.
func (c Engine) Validate() error {
	switch c.Store {
	case BackendMemory, BackendPostgres:
	default:
		return fmt.Errorf("unknown store %q", c.Store)
	}
	switch c.QuotaStore {
	case BackendMemory, BackendPostgres, BackendRedis:
	default:
		return fmt.Errorf("unknown quota store %q", c.QuotaStore)
	}
	if c.QuotaStore == BackendMemory && c.Store != BackendMemory {
		return fmt.Errorf("memory quota store requires the memory store")
	}
	if c.RetryCapacity <= 0 || c.RetryAttempts <= 0 {
		return fmt.Errorf("retry capacity and attempts must be positive")
	}
	if c.ResetInterval <= 0 {
		return fmt.Errorf("reset interval must be positive")
	}
	return nil
}
