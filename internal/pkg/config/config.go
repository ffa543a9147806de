package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=3000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	Auth    AuthConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	GraphQL GraphQLConfig
}

// AuthConfig points at the external authentication/user service.
type AuthConfig struct {
	URL     string        `env:"AUTH_URL,     required"`
	Timeout time.Duration `env:"AUTH_TIMEOUT, default=10s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=catgraph"`
}

type RedisConfig struct {
	Addr              string        `env:"REDIS_ADDR,          default=localhost:6379"`
	DB                int           `env:"REDIS_DB,            default=0"`
	PersistedQueryTTL time.Duration `env:"PERSISTED_QUERY_TTL, default=24h"`
}

type GraphQLConfig struct {
	MaxDepth int `env:"GRAPHQL_MAX_DEPTH, default=10"`
}

// Development reports whether the service runs in a local environment.
func (c *Config) Development() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}
