package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration, loaded from the environment.
type Config struct {
	Server   ServerConfig   `env:",prefix=SERVER_"`
	Database DatabaseConfig `env:",prefix=DB_"`
	Cache    CacheConfig    `env:",prefix=CACHE_"`
	Tracking TrackingConfig `env:",prefix=TRACKING_"`
	App      AppConfig      `env:",prefix=APP_"`
}

type ServerConfig struct {
	Port         string        `env:"PORT,default=8080"`
	Host         string        `env:"HOST,default=0.0.0.0"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT,default=10s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT,default=10s"`
}

// DatabaseConfig holds MySQL connection settings.
type DatabaseConfig struct {
	Host            string        `env:"HOST,default=localhost"`
	Port            string        `env:"PORT,default=3306"`
	User            string        `env:"USER,default=afftrack"`
	Password        string        `env:"PASSWORD,default="`
	Name            string        `env:"NAME,default=afftrack"`
	MaxIdleConns    int           `env:"MAX_IDLE_CONNS,default=10"`
	MaxOpenConns    int           `env:"MAX_OPEN_CONNS,default=100"`
	ConnMaxLifetime time.Duration `env:"CONN_MAX_LIFETIME,default=1h"`
}

// CacheConfig selects and configures the cache driver.
type CacheConfig struct {
	Driver        string `env:"DRIVER,default=memory"` // memory or redis
	RedisAddr     string `env:"REDIS_ADDR,default=localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD,default="`
	RedisDB       int    `env:"REDIS_DB,default=0"`
}

// TrackingConfig tunes the redirect/postback surface.
type TrackingConfig struct {
	// TokenSecret signs click tokens appended to redirect destinations.
	TokenSecret string        `env:"TOKEN_SECRET,default=change-me-in-production"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,default=720h"` // 30-day attribution window
	// DedupWindow is how long a repeat visit from the same visitor on the
	// same link counts as a duplicate click.
	DedupWindow  time.Duration `env:"DEDUP_WINDOW,default=30m"`
	LinkCacheTTL time.Duration `env:"LINK_CACHE_TTL,default=5m"`
	// Per-IP rate limit on the redirect endpoint.
	RateLimit float64 `env:"RATE_LIMIT,default=50"`
	RateBurst int     `env:"RATE_BURST,default=100"`
}

type AppConfig struct {
	Environment string `env:"ENVIRONMENT,default=development"`
}

// Load loads configuration from environment variables.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	return &cfg, nil
}

// DSN returns the MySQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// Addr returns the listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == "production"
}
