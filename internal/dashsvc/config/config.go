package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the dashboard service configuration, loaded from the
// environment after configs.LoadEnv has run.
type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Dashboard DashboardConfig
}

type ServerConfig struct {
	Port      string `envconfig:"DASH_SERVICE_PORT" default:"8080"`
	RateLimit int    `envconfig:"RATE_LIMIT" default:"120"`
}

// StoreConfig selects and configures the backing store. The same
// dashboard can read from the Mongo layout the granting bot writes or
// from a Postgres mirror.
type StoreConfig struct {
	Driver      string `envconfig:"STORE_DRIVER" default:"mongo"` // mongo | postgres
	MongoURI    string `envconfig:"MONGODB_URI" default:"mongodb://localhost:27017/gacha"`
	PostgresURL string `envconfig:"POSTGRES_URL"`
}

type DashboardConfig struct {
	LeaderboardSize int `envconfig:"LEADERBOARD_SIZE" default:"3"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}
