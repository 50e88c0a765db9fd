package paprika_tickers

import (
	"fmt"
	"net/url"
	"strings"

	pc "github.com/coincli/coincli/paprika_common"
)

const (
	// Path for the tickers endpoint
	TICKERS_API_PATH = "/tickers"
)

// TickersRequestBuilder implements the Builder pattern for the ticker endpoint
type TickersRequestBuilder struct {
	*pc.RequestBuilder
}

// NewTickersRequestBuilder creates a new request builder for /tickers/{id}
func NewTickersRequestBuilder(baseURL, coinID string) *TickersRequestBuilder {
	apiPath := fmt.Sprintf("%s/%s", TICKERS_API_PATH, url.PathEscape(coinID))
	return &TickersRequestBuilder{
		RequestBuilder: pc.NewRequestBuilder(baseURL, apiPath),
	}
}

// WithQuotes adds the quotes parameter. Currency codes are upper-cased the
// way the API keys its quotes map.
func (rb *TickersRequestBuilder) WithQuotes(currencies []string) *TickersRequestBuilder {
	if len(currencies) == 0 {
		return rb
	}

	upper := make([]string, 0, len(currencies))
	for _, currency := range currencies {
		upper = append(upper, strings.ToUpper(currency))
	}

	rb.With("quotes", strings.Join(upper, ","))
	return rb
}
