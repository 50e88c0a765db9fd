package paprika_coins

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/coincli/coincli/config"
	"github.com/coincli/coincli/metrics"
	pc "github.com/coincli/coincli/paprika_common"
)

// ErrCoinNotFound is returned when the API does not know the requested coin ID
var ErrCoinNotFound = errors.New("coin not found")

// APIClient defines interface for coins API operations.
// Both methods return the raw JSON body so callers and caches stay byte-oriented.
type APIClient interface {
	// FetchList fetches the full coins listing
	FetchList(ctx context.Context) ([]byte, error)
	// FetchByID fetches details for a single coin
	FetchByID(ctx context.Context, coinID string) ([]byte, error)
}

// Client implements APIClient against the CoinPaprika coins endpoints
type Client struct {
	cfg        *config.Config
	httpClient *pc.HTTPClientWithRetries
}

// NewClient creates a new coins API client
func NewClient(cfg *config.Config, handler pc.StatusHandler) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: pc.NewHTTPClientWithRetries(cfg.RetryOptions("Coins"), handler, pc.NewRateLimiter(cfg.RateLimitRPS)),
	}
}

// FetchList fetches the full coins listing
func (c *Client) FetchList(ctx context.Context) ([]byte, error) {
	request, err := NewCoinsRequestBuilder(c.cfg.BaseURL).
		WithUserAgent(c.cfg.UserAgent).
		Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("building coins request: %w", err)
	}

	defer metrics.RecordFetchDuration(metrics.EndpointCoins, time.Now())

	body, duration, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Coins: fetched listing (%d bytes) in %.2fs", len(body), duration.Seconds())
	return body, nil
}

// FetchByID fetches details for a single coin
func (c *Client) FetchByID(ctx context.Context, coinID string) ([]byte, error) {
	request, err := NewCoinDetailsRequestBuilder(c.cfg.BaseURL, coinID).
		WithUserAgent(c.cfg.UserAgent).
		Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("building coin details request: %w", err)
	}

	defer metrics.RecordFetchDuration(metrics.EndpointCoins, time.Now())

	body, duration, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		var statusErr *pc.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("coin %q: %w", coinID, ErrCoinNotFound)
		}
		return nil, err
	}

	logrus.Debugf("Coins: fetched %s (%d bytes) in %.2fs", coinID, len(body), duration.Seconds())
	return body, nil
}
