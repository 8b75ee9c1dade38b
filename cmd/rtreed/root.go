package main

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lambertmata/rtreed/internal/config"
	"github.com/lambertmata/rtreed/internal/metrics"
)

// sharedFlags are registered on the root command and inherited by
// every subcommand, grounded on the spf13/cobra + spf13/pflag wiring
// used throughout the retrieval pack (e.g. ssargent-freyjadb,
// rafaelmgr12-litegodb).
type sharedFlags struct {
	configFile  string
	metricsAddr string
}

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	var flags sharedFlags

	root := &cobra.Command{
		Use:           "rtreed",
		Short:         "Build and query an in-memory R-tree over integer tuples",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&flags.configFile, "config", "", "optional config file (any format viper supports)")
	root.PersistentFlags().StringVar(&flags.metricsAddr, "metrics-addr", "", "if set, serve Prometheus metrics on this address while the tuples file is loaded")
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(newInsertCmd(logger, &flags))
	root.AddCommand(newQueryCmd(logger, &flags))

	return root
}

// startMetrics creates a metrics.Collector and, if addr is non-empty,
// serves its /metrics until the returned stop function is called
// (buildTree calls it once the tuples file is loaded). The returned
// stop function is a no-op when addr is empty.
func startMetrics(logger zerolog.Logger, addr string) (*metrics.Collector, func()) {
	collector := metrics.New()
	if addr == "" {
		return collector, func() {}
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", collector.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Warn().Err(err).Msg("metrics server stopped")
		}
	}()

	return collector, func() {
		_ = srv.Close()
	}
}
