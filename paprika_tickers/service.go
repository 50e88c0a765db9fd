package paprika_tickers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/coincli/coincli/cache"
	"github.com/coincli/coincli/config"
)

// QuoteNotFoundError is returned when a ticker carries no quote in the
// requested target currency
type QuoteNotFoundError struct {
	CoinID   string
	Currency string
}

func (e *QuoteNotFoundError) Error() string {
	return fmt.Sprintf("could not find price information for %s in %s", e.CoinID, e.Currency)
}

// Service serves ticker data with caching in front of the API client
type Service struct {
	cfg    *config.Config
	client APIClient
	cache  *cache.Cache
}

// NewService creates a new tickers service
func NewService(cfg *config.Config, client APIClient, cacheService *cache.Cache) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
		cache:  cacheService,
	}
}

func tickerCacheKey(coinID, currency string) string {
	return fmt.Sprintf("tickers:%s:%s", coinID, strings.ToUpper(currency))
}

// Ticker returns the ticker for a coin quoted in the target currency,
// served from cache inside TickerTTL
func (s *Service) Ticker(ctx context.Context, coinID, currency string) (*Ticker, error) {
	key := tickerCacheKey(coinID, currency)
	body, err := s.cache.GetOrLoad(key, s.cfg.TickerTTL, func() ([]byte, error) {
		return s.client.FetchTicker(ctx, coinID, []string{currency})
	})
	if err != nil {
		return nil, err
	}

	var ticker Ticker
	if err := json.Unmarshal(body, &ticker); err != nil {
		return nil, fmt.Errorf("parsing ticker for %q: %w", coinID, err)
	}
	return &ticker, nil
}

// PriceIn returns the coin price in the target currency along with the ticker
func (s *Service) PriceIn(ctx context.Context, coinID, currency string) (float64, *Ticker, error) {
	ticker, err := s.Ticker(ctx, coinID, currency)
	if err != nil {
		return 0, nil, err
	}

	quote, ok := ticker.QuoteIn(currency)
	if !ok {
		return 0, nil, &QuoteNotFoundError{CoinID: coinID, Currency: strings.ToUpper(currency)}
	}

	return quote.Price, ticker, nil
}

// Compare fetches both tickers and compares their prices in the target currency
func (s *Service) Compare(ctx context.Context, firstID, secondID, currency string) (*Comparison, error) {
	firstPrice, firstTicker, err := s.PriceIn(ctx, firstID, currency)
	if err != nil {
		return nil, err
	}

	secondPrice, secondTicker, err := s.PriceIn(ctx, secondID, currency)
	if err != nil {
		return nil, err
	}

	return &Comparison{
		First:       firstTicker,
		Second:      secondTicker,
		Currency:    strings.ToUpper(currency),
		FirstPrice:  firstPrice,
		SecondPrice: secondPrice,
	}, nil
}
