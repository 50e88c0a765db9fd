package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coincli/coincli/format"
)

var globalCmd = &cobra.Command{
	Use:   "global",
	Short: "Show the global market overview",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()

		overview, err := a.global.Global(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), format.GlobalOverview(overview))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(globalCmd)
}
