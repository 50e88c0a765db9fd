package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/coincli/coincli/paprika_common"
)

// Config holds every knob of the tool. Values come from an optional YAML file,
// then environment variables, then the defaults below.
type Config struct {
	BaseURL   string `yaml:"base_url" env:"COINCLI_BASE_URL"`
	UserAgent string `yaml:"user_agent" env:"COINCLI_USER_AGENT" env-default:"coincli/1.0"`

	Timeout           time.Duration `yaml:"timeout" env:"COINCLI_TIMEOUT" env-default:"30s"`
	ConnectionTimeout time.Duration `yaml:"connection_timeout" env:"COINCLI_CONNECTION_TIMEOUT" env-default:"10s"`
	MaxRetries        int           `yaml:"max_retries" env:"COINCLI_MAX_RETRIES" env-default:"3"`
	BaseBackoff       time.Duration `yaml:"base_backoff" env:"COINCLI_BASE_BACKOFF" env-default:"1s"`

	// The free tier allows roughly 10 requests per second
	RateLimitRPS float64 `yaml:"rate_limit_rps" env:"COINCLI_RATE_LIMIT_RPS" env-default:"10"`

	CoinsTTL  time.Duration `yaml:"coins_ttl" env:"COINCLI_COINS_TTL" env-default:"5m"`
	TickerTTL time.Duration `yaml:"ticker_ttl" env:"COINCLI_TICKER_TTL" env-default:"15s"`

	WatchInterval time.Duration `yaml:"watch_interval" env:"COINCLI_WATCH_INTERVAL" env-default:"30s"`
}

// Load reads configuration from the given YAML file (may be empty for none)
// and the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path == "" {
		path = os.Getenv("COINCLI_CONFIG")
	}

	if path != "" {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("reading config from environment: %w", err)
		}
	}

	if cfg.BaseURL == "" {
		cfg.BaseURL = paprika_common.COINPAPRIKA_PUBLIC_URL
	}

	return cfg, nil
}

// RetryOptions translates the config into retry client options
func (c *Config) RetryOptions(logPrefix string) paprika_common.RetryOptions {
	opts := paprika_common.DefaultRetryOptions()
	opts.LogPrefix = logPrefix
	if c.MaxRetries > 0 {
		opts.MaxRetries = c.MaxRetries
	}
	if c.BaseBackoff > 0 {
		opts.BaseBackoff = c.BaseBackoff
	}
	if c.ConnectionTimeout > 0 {
		opts.ConnectionTimeout = c.ConnectionTimeout
	}
	if c.Timeout > 0 {
		opts.RequestTimeout = c.Timeout
	}
	return opts
}
