package app

import (
	"errors"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// POSTaxRate is applied to the cart subtotal at checkout.
	POSTaxRate float64 `envconfig:"POS_TAX_RATE" default:"0.10"`

	// RateLimit caps requests per client IP per minute.
	RateLimit int `envconfig:"HTTP_RATE_LIMIT" default:"120"`

	// ScanHistoryLimit bounds the barcode scan history kept in memory.
	ScanHistoryLimit int `envconfig:"SCAN_HISTORY_LIMIT" default:"50"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.POSTaxRate < 0 || cfg.POSTaxRate >= 1 {
		return nil, errors.New("pos tax rate must be in [0,1)")
	}
	if cfg.ScanHistoryLimit <= 0 {
		return nil, errors.New("scan history limit must be positive")
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
