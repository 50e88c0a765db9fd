package paprika_tickers

import "strings"

// Quote holds market data for one target currency
type Quote struct {
	Price            float64 `json:"price"`
	Volume24h        float64 `json:"volume_24h"`
	MarketCap        float64 `json:"market_cap"`
	PercentChange24h float64 `json:"percent_change_24h"`
}

// Ticker represents the /tickers/{id} response
type Ticker struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Symbol      string           `json:"symbol"`
	Rank        int              `json:"rank"`
	LastUpdated string           `json:"last_updated"`
	Quotes      map[string]Quote `json:"quotes"`
}

// QuoteIn looks up the quote for a target currency. The API keys quotes by
// upper-case currency codes, so the lookup upper-cases its argument.
func (t *Ticker) QuoteIn(currency string) (Quote, bool) {
	quote, ok := t.Quotes[strings.ToUpper(currency)]
	return quote, ok
}

// Outcome is the result of comparing two coins in one currency
type Outcome int

const (
	// FirstMoreValuable means the first coin has the higher price
	FirstMoreValuable Outcome = iota
	// SecondMoreValuable means the second coin has the higher price
	SecondMoreValuable
	// EqualValue means both coins have the same price
	EqualValue
)

// Comparison holds the two tickers and their prices in the target currency
type Comparison struct {
	First       *Ticker
	Second      *Ticker
	Currency    string
	FirstPrice  float64
	SecondPrice float64
}

// Outcome reports which side of the comparison is more valuable
func (c *Comparison) Outcome() Outcome {
	switch {
	case c.FirstPrice > c.SecondPrice:
		return FirstMoreValuable
	case c.FirstPrice < c.SecondPrice:
		return SecondMoreValuable
	default:
		return EqualValue
	}
}
