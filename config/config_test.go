package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coincli/coincli/paprika_common"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, paprika_common.COINPAPRIKA_PUBLIC_URL, cfg.BaseURL)
	assert.Equal(t, "coincli/1.0", cfg.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.BaseBackoff)
	assert.Equal(t, float64(10), cfg.RateLimitRPS)
	assert.Equal(t, 5*time.Minute, cfg.CoinsTTL)
	assert.Equal(t, 15*time.Second, cfg.TickerTTL)
	assert.Equal(t, 30*time.Second, cfg.WatchInterval)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
base_url: http://localhost:9999/v1
max_retries: 5
ticker_ttl: 1m
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/v1", cfg.BaseURL)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, time.Minute, cfg.TickerTTL)
	// Untouched fields keep defaults
	assert.Equal(t, "coincli/1.0", cfg.UserAgent)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("COINCLI_BASE_URL", "http://env-host/v1")
	t.Setenv("COINCLI_MAX_RETRIES", "7")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://env-host/v1", cfg.BaseURL)
	assert.Equal(t, 7, cfg.MaxRetries)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	require.Error(t, err)
}

func TestRetryOptions(t *testing.T) {
	cfg := &Config{
		MaxRetries:        4,
		BaseBackoff:       2 * time.Second,
		ConnectionTimeout: 3 * time.Second,
		Timeout:           20 * time.Second,
	}

	opts := cfg.RetryOptions("Test")
	assert.Equal(t, "Test", opts.LogPrefix)
	assert.Equal(t, 4, opts.MaxRetries)
	assert.Equal(t, 2*time.Second, opts.BaseBackoff)
	assert.Equal(t, 3*time.Second, opts.ConnectionTimeout)
	assert.Equal(t, 20*time.Second, opts.RequestTimeout)
}

func TestRetryOptions_ZeroValuesFallBack(t *testing.T) {
	cfg := &Config{}

	opts := cfg.RetryOptions("Test")
	defaults := paprika_common.DefaultRetryOptions()
	assert.Equal(t, defaults.MaxRetries, opts.MaxRetries)
	assert.Equal(t, defaults.BaseBackoff, opts.BaseBackoff)
	assert.Equal(t, defaults.RequestTimeout, opts.RequestTimeout)
}
