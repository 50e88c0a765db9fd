package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coincli/coincli/format"
)

var coinDetailsCmd = &cobra.Command{
	Use:   "coin-details <coin_id>",
	Short: "Show details for a specific coin",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		detail, err := a.coins.ByID(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), format.CoinDetails(detail))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(coinDetailsCmd)
}
