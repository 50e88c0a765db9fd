package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coincli/coincli/cache"
	"github.com/coincli/coincli/config"
	"github.com/coincli/coincli/format"
	"github.com/coincli/coincli/metrics"
	"github.com/coincli/coincli/paprika_coins"
	"github.com/coincli/coincli/paprika_global"
	"github.com/coincli/coincli/paprika_tickers"
)

var (
	flagConfig  string
	flagBaseURL string
	flagTimeout time.Duration
	flagVerbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "coincli",
	Short: "Fetch real-time cryptocurrency data from the CoinPaprika API",
	Long: `coincli fetches real-time cryptocurrency data like prices and coin
details, and compares coins against each other, using the public
CoinPaprika API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		logrus.SetOutput(os.Stderr)

		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return err
		}

		if flagBaseURL != "" {
			cfg.BaseURL = flagBaseURL
		}
		if cmd.Flags().Changed("timeout") {
			cfg.Timeout = flagTimeout
		}

		fmt.Fprint(cmd.OutOrStdout(), format.Banner())
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}

// app bundles the services a command needs
type app struct {
	coins   *paprika_coins.Service
	tickers *paprika_tickers.Service
	global  *paprika_global.Client
}

// newApp wires the services behind one shared cache
func newApp() *app {
	sharedCache := cache.New(cfg.CoinsTTL, 2*cfg.CoinsTTL)

	coinsClient := paprika_coins.NewClient(cfg, metrics.NewMetricsWriter(metrics.EndpointCoins))
	tickersClient := paprika_tickers.NewClient(cfg, metrics.NewMetricsWriter(metrics.EndpointTickers))
	globalClient := paprika_global.NewClient(cfg, metrics.NewMetricsWriter(metrics.EndpointGlobal))

	return &app{
		coins:   paprika_coins.NewService(cfg, coinsClient, sharedCache),
		tickers: paprika_tickers.NewService(cfg, tickersClient, sharedCache),
		global:  globalClient,
	}
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagConfig, "config", "c", "", "config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "override the CoinPaprika API base URL")
	rootCmd.PersistentFlags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "HTTP request timeout")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}
