package paprika_tickers

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

// APIClient defines interface for ticker API operations
type APIClient interface {
	// FetchTicker fetches the ticker for one coin quoted in the given currencies,
	// returning the raw JSON body
	FetchTicker(ctx context.Context, coinID string, currencies []string) ([]byte, error)
}

// Client implements APIClient against the CoinPaprika tickers endpoint
type Client struct {
	cfg        *config.Config
	httpClient *pc.HTTPClientWithRetries
}

// NewClient creates a new tickers API client
func NewClient(cfg *config.Config, handler pc.StatusHandler) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: pc.NewHTTPClientWithRetries(cfg.RetryOptions("Tickers"), handler, pc.NewRateLimiter(cfg.RateLimitRPS)),
	}
}

// FetchTicker fetches the ticker for one coin
func (c *Client) FetchTicker(ctx context.Context, coinID string, currencies []string) ([]byte, error) {
	request, err := NewTickersRequestBuilder(c.cfg.BaseURL, coinID).
		WithQuotes(currencies).
		WithUserAgent(c.cfg.UserAgent).
		Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("building ticker request: %w", err)
	}

	defer metrics.RecordFetchDuration(metrics.EndpointTickers, time.Now())

	body, duration, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		var statusErr *pc.StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("coin %q: %w", coinID, ErrCoinNotFound)
		}
		return nil, err
	}

	logrus.Debugf("Tickers: fetched %s (%d bytes) in %.2fs", coinID, len(body), duration.Seconds())
	return body, nil
}
