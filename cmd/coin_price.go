package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coincli/coincli/format"
)

var coinPriceCmd = &cobra.Command{
	Use:   "coin-price <coin_id> <target_currency>",
	Short: "Get the price of a coin in a target currency",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		coinID, currency := args[0], args[1]
		price, ticker, err := a.tickers.PriceIn(cmd.Context(), coinID, currency)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), format.PriceLine(ticker, currency, price))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coinPriceCmd)
}
