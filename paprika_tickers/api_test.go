package paprika_tickers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coincli/coincli/config"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		BaseURL:           baseURL,
		UserAgent:         "coincli-test",
		Timeout:           5 * time.Second,
		ConnectionTimeout: time.Second,
		MaxRetries:        1,
		BaseBackoff:       time.Millisecond,
		CoinsTTL:          time.Minute,
		TickerTTL:         time.Minute,
	}
}

const btcTickerJSON = `{
	"id":"btc-bitcoin","name":"Bitcoin","symbol":"BTC","rank":1,
	"last_updated":"2024-01-01T00:00:00Z",
	"quotes":{"USD":{"price":42000.5,"volume_24h":1000000,"market_cap":800000000,"percent_change_24h":1.5}}
}`

func TestClient_FetchTicker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tickers/btc-bitcoin", r.URL.Path)
		assert.Equal(t, "USD", r.URL.Query().Get("quotes"))
		w.Write([]byte(btcTickerJSON))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)

	body, err := client.FetchTicker(context.Background(), "btc-bitcoin", []string{"usd"})
	require.NoError(t, err)

	var ticker Ticker
	require.NoError(t, json.Unmarshal(body, &ticker))
	assert.Equal(t, "Bitcoin", ticker.Name)
	assert.Equal(t, 42000.5, ticker.Quotes["USD"].Price)
	assert.Equal(t, 1.5, ticker.Quotes["USD"].PercentChange24h)
}

func TestClient_FetchTicker_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"id not found"}`))
	}))
	defer server.Close()

	client := NewClient(testConfig(server.URL), nil)

	_, err := client.FetchTicker(context.Background(), "no-such-coin", []string{"usd"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCoinNotFound))
}

func TestTicker_QuoteIn(t *testing.T) {
	var ticker Ticker
	require.NoError(t, json.Unmarshal([]byte(btcTickerJSON), &ticker))

	quote, ok := ticker.QuoteIn("usd")
	require.True(t, ok)
	assert.Equal(t, 42000.5, quote.Price)

	quote, ok = ticker.QuoteIn("USD")
	require.True(t, ok)
	assert.Equal(t, 42000.5, quote.Price)

	_, ok = ticker.QuoteIn("eur")
	assert.False(t, ok)
}
