package paprika_global

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/coincli/coincli/config"
	"github.com/coincli/coincli/metrics"
	pc "github.com/coincli/coincli/paprika_common"
)

const (
	// Path for the global market overview endpoint
	GLOBAL_API_PATH = "/global"
)

// Client fetches the global market overview
type Client struct {
	cfg        *config.Config
	httpClient *pc.HTTPClientWithRetries
}

// NewClient creates a new global market client
func NewClient(cfg *config.Config, handler pc.StatusHandler) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: pc.NewHTTPClientWithRetries(cfg.RetryOptions("Global"), handler, pc.NewRateLimiter(cfg.RateLimitRPS)),
	}
}

// Global fetches and decodes the market overview
func (c *Client) Global(ctx context.Context) (*GlobalMarket, error) {
	request, err := pc.NewRequestBuilder(c.cfg.BaseURL, GLOBAL_API_PATH).
		WithUserAgent(c.cfg.UserAgent).
		Build(ctx)
	if err != nil {
		return nil, fmt.Errorf("building global request: %w", err)
	}

	defer metrics.RecordFetchDuration(metrics.EndpointGlobal, time.Now())

	body, duration, err := c.httpClient.ExecuteRequest(request)
	if err != nil {
		return nil, err
	}

	var overview GlobalMarket
	if err := json.Unmarshal(body, &overview); err != nil {
		return nil, fmt.Errorf("parsing global market overview: %w", err)
	}

	logrus.Debugf("Global: fetched overview in %.2fs", duration.Seconds())
	return &overview, nil
}
