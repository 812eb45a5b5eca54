package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, loaded once at startup and passed
// down explicitly. The two signing secrets are independent: one per role
// namespace.
type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth  AuthConfig
	Mongo MongoConfig
	Redis RedisConfig
}

type AuthConfig struct {
	AdminSecret string        `env:"ADMIN_JWT_SECRET"`
	UserSecret  string        `env:"USER_JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL, default=1h"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=course_marketplace"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
// Both signing secrets are mandatory: refusing to start beats silently
// signing tokens with an empty key.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Auth.AdminSecret == "" || cfg.Auth.UserSecret == "" {
		return nil, fmt.Errorf("config: ADMIN_JWT_SECRET and USER_JWT_SECRET must be set")
	}

	return &cfg, nil
}
