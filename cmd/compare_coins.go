package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coincli/coincli/format"
)

var compareCoinsCmd = &cobra.Command{
	Use:   "compare-coins <coin1_id> <coin2_id> <target_currency>",
	Short: "Compare the prices of two coins in a target currency",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		comparison, err := a.tickers.Compare(cmd.Context(), args[0], args[1], args[2])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), format.Comparison(comparison))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCoinsCmd)
}
