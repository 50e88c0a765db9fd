package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/coincli/coincli/format"
	"github.com/coincli/coincli/scheduler"
)

var (
	flagWatchInterval    time.Duration
	flagWatchMetricsAddr string
)

var watchCmd = &cobra.Command{
	Use:   "watch <coin_id> <target_currency>",
	Short: "Watch a coin price refresh periodically",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		coinID, currency := args[0], args[1]

		interval := cfg.WatchInterval
		if cmd.Flags().Changed("interval") {
			interval = flagWatchInterval
		}
		if interval <= 0 {
			return fmt.Errorf("watch interval must be positive, got %s", interval)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		var metricsServer *http.Server
		if flagWatchMetricsAddr != "" {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			metricsServer = &http.Server{Addr: flagWatchMetricsAddr, Handler: mux}
			go func() {
				logrus.Infof("serving metrics on %s/metrics", flagWatchMetricsAddr)
				if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logrus.Warnf("metrics server stopped: %v", err)
				}
			}()
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, format.Header(fmt.Sprintf("Watching %s in %s every %s", coinID, currency, interval)))
		fmt.Fprintln(out)

		sched := scheduler.New(interval, func(taskCtx context.Context) {
			price, ticker, err := a.tickers.PriceIn(taskCtx, coinID, currency)
			if err != nil {
				if taskCtx.Err() != nil {
					return
				}
				logrus.Warnf("refresh failed: %v", err)
				return
			}

			quote, _ := ticker.QuoteIn(currency)
			fmt.Fprintf(out, "[%s] %s\n",
				time.Now().Format("15:04:05"),
				format.WatchLine(ticker, currency, price, quote.PercentChange24h))
		})
		sched.Run(ctx, true)

		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}

		fmt.Fprintln(out, "stopped")
		return nil
	},
}

func init() {
	watchCmd.Flags().DurationVar(&flagWatchInterval, "interval", 30*time.Second, "refresh interval")
	watchCmd.Flags().StringVar(&flagWatchMetricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address while watching")
	rootCmd.AddCommand(watchCmd)
}
