package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lambertmata/rtreed/internal/config"
	"github.com/lambertmata/rtreed/internal/printer"
	"github.com/lambertmata/rtreed/internal/tuplefile"
	"github.com/lambertmata/rtreed/rtree"
)

func newInsertCmd(logger zerolog.Logger, flags *sharedFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "insert <tuples-file>",
		Short: "Build a tree from a tuples file and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, _, err := buildTree(cmd, logger, flags, args[0])
			if err != nil {
				return err
			}
			printer.Print(os.Stdout, tr)
			return nil
		},
	}
}

// buildTree resolves configuration, opens path, reads every tuple from
// it, and inserts each into a fresh tree, returning the elapsed
// insertion time for logging. Malformed tokens and a trailing partial
// tuple are logged as warnings but never abort insertion of the tuples
// already read.
func buildTree(cmd *cobra.Command, logger zerolog.Logger, flags *sharedFlags, path string) (*rtree.Tree, time.Duration, error) {
	cfg, err := config.Resolve(cmd.Flags(), flags.configFile)
	if err != nil {
		return nil, 0, err
	}

	tr, err := rtree.New(cfg.Dims, cfg.Min, cfg.Max)
	if err != nil {
		return nil, 0, fmt.Errorf("building tree: %w", err)
	}

	collector, stopMetrics := startMetrics(logger, flags.metricsAddr)
	defer stopMetrics()
	tr.SetObserver(collector)

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var inserted int
	start := time.Now()
	err = tuplefile.Read(f, cfg.Dims, func(tuple []int32) {
		tr.Insert(tuple)
		inserted++
	}, func(warn tuplefile.MalformedToken) {
		logger.Warn().Int("token_index", warn.Index).Str("token", warn.Token).Err(warn.Err).Msg("skipping malformed tuple data")
	})
	elapsed := time.Since(start)
	if err != nil {
		return nil, elapsed, fmt.Errorf("reading %s: %w", path, err)
	}

	collector.ObserveHeight(tr.Height())
	logger.Info().
		Int("tuples_inserted", inserted).
		Int("tree_height", tr.Height()).
		Dur("elapsed", elapsed).
		Msg("insertion complete")

	return tr, elapsed, nil
}
