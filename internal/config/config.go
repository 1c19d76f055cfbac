package config

import (
	"github.com/caarlos0/env/v11"

	"maildeck/internal/config/configs"
)

// Config aggregates all configuration sections for the console backend.
// Fields are populated from environment variables using the caarlos0/env
// library; the nested structs carry envPrefix tags so their fields are
// parsed under the given prefix. Use Load to construct a Config.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev).
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP configures the API server (HTTP_ prefix).
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger (LOG_ prefix).
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the PostgreSQL connection (PSQL_ prefix).
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Sync configures the external CRM sync service (SYNC_ prefix).
	Sync configs.Sync `envPrefix:"SYNC_"`
}

// Load reads configuration from environment variables into a Config. All
// fields fall back to their declared defaults when no variable is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
