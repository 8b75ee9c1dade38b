package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lambertmata/rtreed/internal/printer"
	"github.com/lambertmata/rtreed/rtree"
)

func newQueryCmd(logger zerolog.Logger, flags *sharedFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "query <tuples-file> <query-min...> <query-max...>",
		Short: "Build a tree, print it, then run a range query against it",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, _, err := buildTree(cmd, logger, flags, args[0])
			if err != nil {
				return err
			}
			printer.Print(os.Stdout, tr)

			bounds := args[1:]
			if len(bounds) != 2*tr.Dims() {
				return fmt.Errorf("query: expected %d bound coordinates (2×dims), got %d", 2*tr.Dims(), len(bounds))
			}

			min, err := parseCoords(bounds[:tr.Dims()])
			if err != nil {
				return fmt.Errorf("query: parsing min bound: %w", err)
			}
			max, err := parseCoords(bounds[tr.Dims():])
			if err != nil {
				return fmt.Errorf("query: parsing max bound: %w", err)
			}

			matches := tr.Search(rtree.MBR{Min: min, Max: max})
			fmt.Fprintf(os.Stdout, "%d tuple(s) found in given bounds:\n", len(matches))
			for _, m := range matches {
				fmt.Fprintln(os.Stdout, formatTuple(m))
			}
			return nil
		},
	}
}

func parseCoords(tokens []string) ([]int32, error) {
	out := make([]int32, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", tok, err)
		}
		out[i] = int32(v)
	}
	return out, nil
}

func formatTuple(t []int32) string {
	s := "("
	for i, v := range t {
		if i > 0 {
			s += ", "
		}
		s += strconv.FormatInt(int64(v), 10)
	}
	return s + ")"
}
