package paprika_coins

import (
	"fmt"
	"net/url"

	pc "github.com/coincli/coincli/paprika_common"
)

const (
	// Path for the coins listing endpoint
	COINS_API_PATH = "/coins"
)

// CoinsRequestBuilder implements the Builder pattern for the coins listing endpoint
type CoinsRequestBuilder struct {
	*pc.RequestBuilder
}

// NewCoinsRequestBuilder creates a new request builder for the /coins endpoint
func NewCoinsRequestBuilder(baseURL string) *CoinsRequestBuilder {
	return &CoinsRequestBuilder{
		RequestBuilder: pc.NewRequestBuilder(baseURL, COINS_API_PATH),
	}
}

// CoinDetailsRequestBuilder implements the Builder pattern for the coin details endpoint
type CoinDetailsRequestBuilder struct {
	*pc.RequestBuilder
}

// NewCoinDetailsRequestBuilder creates a new request builder for /coins/{id}
func NewCoinDetailsRequestBuilder(baseURL, coinID string) *CoinDetailsRequestBuilder {
	apiPath := fmt.Sprintf("%s/%s", COINS_API_PATH, url.PathEscape(coinID))
	return &CoinDetailsRequestBuilder{
		RequestBuilder: pc.NewRequestBuilder(baseURL, apiPath),
	}
}
