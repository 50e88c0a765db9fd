package paprika_coins

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coincli/coincli/cache"
	"github.com/coincli/coincli/config"
)

const (
	cacheKeyList         = "coins:list"
	cacheKeyDetailPrefix = "coins:detail:"
)

// Service serves coin data with caching in front of the API client
type Service struct {
	cfg    *config.Config
	client APIClient
	cache  *cache.Cache
}

// NewService creates a new coins service
func NewService(cfg *config.Config, client APIClient, cacheService *cache.Cache) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
		cache:  cacheService,
	}
}

// List returns the coins listing, served from cache inside CoinsTTL
func (s *Service) List(ctx context.Context) ([]Coin, error) {
	body, err := s.cache.GetOrLoad(cacheKeyList, s.cfg.CoinsTTL, func() ([]byte, error) {
		return s.client.FetchList(ctx)
	})
	if err != nil {
		return nil, err
	}

	var coins []Coin
	if err := json.Unmarshal(body, &coins); err != nil {
		return nil, fmt.Errorf("parsing coins listing: %w", err)
	}
	return coins, nil
}

// ByID returns details for a single coin, served from cache inside CoinsTTL
func (s *Service) ByID(ctx context.Context, coinID string) (*CoinDetail, error) {
	body, err := s.cache.GetOrLoad(cacheKeyDetailPrefix+coinID, s.cfg.CoinsTTL, func() ([]byte, error) {
		return s.client.FetchByID(ctx, coinID)
	})
	if err != nil {
		return nil, err
	}

	var detail CoinDetail
	if err := json.Unmarshal(body, &detail); err != nil {
		return nil, fmt.Errorf("parsing coin details for %q: %w", coinID, err)
	}
	return &detail, nil
}
