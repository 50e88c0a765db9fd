package paprika_global

// GlobalMarket represents the /global market overview response
type GlobalMarket struct {
	MarketCapUSD               float64 `json:"market_cap_usd"`
	Volume24hUSD               float64 `json:"volume_24h_usd"`
	BitcoinDominancePercentage float64 `json:"bitcoin_dominance_percentage"`
	CryptocurrenciesNumber     int     `json:"cryptocurrencies_number"`
	MarketCapChange24h         float64 `json:"market_cap_change_24h"`
	Volume24hChange24h         float64 `json:"volume_24h_change_24h"`
	LastUpdated                int64   `json:"last_updated"`
}
