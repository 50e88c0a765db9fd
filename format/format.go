// Package format renders command output as plain terminal text.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coincli/coincli/paprika_coins"
	"github.com/coincli/coincli/paprika_global"
	"github.com/coincli/coincli/paprika_tickers"
)

const separator = "======================================="

// Banner returns the startup banner listing available commands
func Banner() string {
	var b strings.Builder
	b.WriteString("=========================================================\n")
	b.WriteString("█▀█ █▀█ █▀▀ █▀█ ▀█▀ █ █▀▀ ▀█▀ █ █▄ █ █▀▀ █▀█ ▀█▀ █▄ █\n")
	b.WriteString("█▄█ █▀▄ █▄▄ █▀▄  █  █ █▄▄  █  █ █ ▀█ ██▄ █▀▄  █  █ ▀█\n")
	b.WriteString("=========================================================\n")
	b.WriteString("             Welcome to the Crypto CLI Tool              \n")
	b.WriteString("=========================================================\n")
	b.WriteString("Fetch real-time cryptocurrency data like prices, details,\n")
	b.WriteString("compare coins, and more!\n\n")
	b.WriteString("Available Commands:\n")
	b.WriteString("  - list-coins                                -> Show a list of all coins\n")
	b.WriteString("  - coin-details <coin_id>                    -> Show details for a specific coin\n")
	b.WriteString("  - coin-price <coin_id> <currency>           -> Get the price of a coin in a target currency\n")
	b.WriteString("  - compare-coins <coin1> <coin2> <currency>  -> Compare two coins\n")
	b.WriteString("  - global                                    -> Show the global market overview\n")
	b.WriteString("  - watch <coin_id> <currency>                -> Watch a coin price refresh periodically\n")
	b.WriteString("=========================================================\n")
	return b.String()
}

// Header returns a section header framed by separators
func Header(title string) string {
	return fmt.Sprintf("%s\n%s\n%s\n", separator, center(title, len(separator)), separator)
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

// Price renders a float the shortest way that round-trips
func Price(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64)
}

// CoinLine renders one row of the coins listing
func CoinLine(c paprika_coins.Coin) string {
	return fmt.Sprintf("%s (%s) - Rank: %d", c.Name, c.Symbol, c.Rank)
}

// CoinDetails renders the details block for a coin
func CoinDetails(d *paprika_coins.CoinDetail) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Coin Details for %s (%s)", d.Name, d.Symbol)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Name: %s\n", d.Name))
	b.WriteString(fmt.Sprintf("Symbol: %s\n", d.Symbol))
	b.WriteString(fmt.Sprintf("Description: %s\n", d.Description))
	b.WriteString(fmt.Sprintf("Rank: %d\n", d.Rank))
	return b.String()
}

// PriceLine renders a single conversion result
func PriceLine(t *paprika_tickers.Ticker, currency string, price float64) string {
	currency = strings.ToUpper(currency)
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Price for %s (%s) in %s", t.Name, t.Symbol, currency)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("1 %s (%s) = %s %s\n", t.Name, t.Symbol, Price(price), currency))
	return b.String()
}

// Comparison renders both prices and the verdict of a two-coin comparison
func Comparison(c *paprika_tickers.Comparison) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Comparing %s and %s in %s", c.First.ID, c.Second.ID, c.Currency)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s price: %s %s\n", c.First.ID, Price(c.FirstPrice), c.Currency))
	b.WriteString(fmt.Sprintf("%s price: %s %s\n", c.Second.ID, Price(c.SecondPrice), c.Currency))

	switch c.Outcome() {
	case paprika_tickers.FirstMoreValuable:
		b.WriteString(fmt.Sprintf("%s is more valuable than %s in %s\n", c.First.ID, c.Second.ID, c.Currency))
	case paprika_tickers.SecondMoreValuable:
		b.WriteString(fmt.Sprintf("%s is more valuable than %s in %s\n", c.Second.ID, c.First.ID, c.Currency))
	default:
		b.WriteString(fmt.Sprintf("Both %s and %s have the same value in %s\n", c.First.ID, c.Second.ID, c.Currency))
	}
	return b.String()
}

// GlobalOverview renders the global market overview
func GlobalOverview(g *paprika_global.GlobalMarket) string {
	var b strings.Builder
	b.WriteString(Header("Global Market Overview"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Market cap: %s USD\n", Price(g.MarketCapUSD)))
	b.WriteString(fmt.Sprintf("24h volume: %s USD\n", Price(g.Volume24hUSD)))
	b.WriteString(fmt.Sprintf("Bitcoin dominance: %.2f%%\n", g.BitcoinDominancePercentage))
	b.WriteString(fmt.Sprintf("Cryptocurrencies: %d\n", g.CryptocurrenciesNumber))
	return b.String()
}

// WatchLine renders one refresh of a watched ticker
func WatchLine(t *paprika_tickers.Ticker, currency string, price float64, change24h float64) string {
	return fmt.Sprintf("%s (%s): %s %s (24h %+.2f%%)",
		t.Name, t.Symbol, Price(price), strings.ToUpper(currency), change24h)
}
