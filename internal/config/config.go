package config

import (
	"github.com/caarlos0/env/v11"

	"adgate/internal/config/configs"
	"adgate/internal/core/domain"
)

// Config aggregates all configuration sections for the application. Fields
// are populated from environment variables using the caarlos0/env library;
// nested structs are parsed with their envPrefix. See the configs package
// for defaults. Use Load to construct a Config.
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	HTTP   configs.HTTP     `envPrefix:"HTTP_"`
	Log    configs.Logger   `envPrefix:"LOG_"`
	Psql   configs.Postgres `envPrefix:"PSQL_"`
	Redis  configs.Redis    `envPrefix:"REDIS_"`
	Kafka  configs.Kafka    `envPrefix:"KAFKA_"`
	Engine configs.Engine   `envPrefix:"ENGINE_"`
}

// Load reads configuration from environment variables into a Config and
// validates it. Invalid settings are reported as *domain.ConfigurationError.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, &domain.ConfigurationError{Section: "env", Err: err}
	}
	if err := cfg.Engine.Validate(); err != nil {
		return cfg, &domain.ConfigurationError{Section: "engine", Err: err}
	}
	return cfg, nil
}

// NeedsPostgres reports whether any configured backend is PostgreSQL.
func (c Config) NeedsPostgres() bool {
	return c.Engine.Store == configs.BackendPostgres || c.Engine.QuotaStore == configs.BackendPostgres
}
