package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port           int    `mapstructure:"PORT"`
	Env            string `mapstructure:"APP_ENV"` // development | production
	CafeName       string `mapstructure:"CAFE_NAME"`
	WorkerPoolSize int    `mapstructure:"WORKER_POOL_SIZE"`

	// Upstream café API
	UpstreamURL        string `mapstructure:"UPSTREAM_API_URL"`
	RequestTimeoutSec  int    `mapstructure:"REQUEST_TIMEOUT_SEC"`
	RetryAttempts      int    `mapstructure:"RETRY_ATTEMPTS"`
	RetryDelayMS       int    `mapstructure:"RETRY_DELAY_MS"`
	StrictRetryDelayMS int    `mapstructure:"STRICT_RETRY_DELAY_MS"`

	// Redis — session store, menu cache, job queues
	RedisURL        string `mapstructure:"REDIS_URL"`
	SessionTTLHours int    `mapstructure:"SESSION_TTL_HOURS"`
	MenuCacheTTLMin int    `mapstructure:"MENU_CACHE_TTL_MIN"`

	// Auth
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// Receipts
	ReceiptStoragePath string `mapstructure:"RECEIPT_STORAGE_PATH"`

	// SMTP — emailed receipts
	SMTPHost     string `mapstructure:"SMTP_HOST"`
	SMTPPort     int    `mapstructure:"SMTP_PORT"`
	SMTPUser     string `mapstructure:"SMTP_USER"`
	SMTPPassword string `mapstructure:"SMTP_PASSWORD"`
}

// RequestTimeout returns the per-request ceiling for upstream calls.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// RetryDelay is the inter-attempt delay for general upstream calls.
func (c *Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelayMS) * time.Millisecond
}

// StrictRetryDelay is the longer delay used by the stricter retry variant
// (order placement, settlement recording).
func (c *Config) StrictRetryDelay() time.Duration {
	return time.Duration(c.StrictRetryDelayMS) * time.Millisecond
}

// SessionTTL is how long an idle cart/session survives in Redis.
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLHours) * time.Hour
}

// MenuCacheTTL bounds staleness of the cached menu catalog.
func (c *Config) MenuCacheTTL() time.Duration {
	return time.Duration(c.MenuCacheTTLMin) * time.Minute
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CAFE_NAME", "Cafe Tamarind")
	viper.SetDefault("WORKER_POOL_SIZE", 5)
	viper.SetDefault("UPSTREAM_API_URL", "http://localhost:5000/api")
	viper.SetDefault("REQUEST_TIMEOUT_SEC", 10)
	viper.SetDefault("RETRY_ATTEMPTS", 3)
	viper.SetDefault("RETRY_DELAY_MS", 1000)
	viper.SetDefault("STRICT_RETRY_DELAY_MS", 2000)
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	viper.SetDefault("SESSION_TTL_HOURS", 72)
	viper.SetDefault("MENU_CACHE_TTL_MIN", 5)
	viper.SetDefault("RECEIPT_STORAGE_PATH", "/tmp/cafe-tamarind/receipts")
	viper.SetDefault("SMTP_PORT", 587)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
