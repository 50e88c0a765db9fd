package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coincli/coincli/format"
)

var (
	flagListLimit      int
	flagListActiveOnly bool
)

var listCoinsCmd = &cobra.Command{
	Use:   "list-coins",
	Short: "Show a list of all coins",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		coins, err := a.coins.List(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, format.Header("Listing All Coins"))
		fmt.Fprintln(out)

		printed := 0
		for _, coin := range coins {
			if flagListActiveOnly && !coin.IsActive {
				continue
			}
			fmt.Fprintln(out, format.CoinLine(coin))
			printed++
			if flagListLimit > 0 && printed >= flagListLimit {
				break
			}
		}
		return nil
	},
}

func init() {
	listCoinsCmd.Flags().IntVar(&flagListLimit, "limit", 0, "maximum number of coins to print (0 = all)")
	listCoinsCmd.Flags().BoolVar(&flagListActiveOnly, "active-only", false, "skip inactive coins")
	rootCmd.AddCommand(listCoinsCmd)
}
