// Command rtreed is the CLI driver for the rtree package: it reads a
// tuples file, builds an R-tree, and prints it (and optionally runs a
// range query).
package main

import (
	"os"

	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error().Err(err).Msg("rtreed failed")
		os.Exit(1)
	}
}
