package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs session tokens. Required: the process refuses to start
	// without it rather than falling back to a built-in default.
	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	// StorageDriver selects the repository backend: "memory" or "mongo".
	StorageDriver string `env:"STORAGE_DRIVER, default=memory"`

	AlertWorkers  int           `env:"ALERT_WORKERS,   default=4"`
	AlertDedupTTL time.Duration `env:"ALERT_DEDUP_TTL, default=5m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=breatheright"`
}

// RedisConfig is optional: an empty Addr disables Redis and the alert
// pipeline falls back to in-memory dedup.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.StorageDriver != "memory" && cfg.StorageDriver != "mongo" {
		return nil, fmt.Errorf("config: unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	return &cfg, nil
}
