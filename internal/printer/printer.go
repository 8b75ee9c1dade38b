// Package printer renders an *rtree.Tree for human inspection. It is a
// pure consumer of the core's public Walk accessor; its output format
// is not part of the core's contract.
package printer

import (
	"fmt"
	"io"
	"strings"

	"github.com/lambertmata/rtreed/rtree"
)

// Print walks tr and writes a depth-indented rendering to w: internal
// nodes show their depth, child count and MBR; leaves show their depth
// and tuples.
func Print(w io.Writer, tr *rtree.Tree) {
	if tr == nil {
		fmt.Fprintln(w, "tree empty")
		return
	}

	tr.Walk(func(v rtree.NodeView) {
		indent := strings.Repeat(" ", v.Depth)
		if v.IsLeaf {
			fmt.Fprintf(w, "%s[%d] leaf: %s\n", indent, v.Depth, formatTuples(v.Tuples))
			return
		}
		fmt.Fprintf(w, "%s[%d] internal (%d children): %s\n", indent, v.Depth, v.NumChild, formatBounds(v.MBR))
	})
}

func formatTuples(tuples [][]int32) string {
	parts := make([]string, len(tuples))
	for i, t := range tuples {
		parts[i] = formatTuple(t)
	}
	return strings.Join(parts, " ")
}

func formatTuple(t []int32) string {
	parts := make([]string, len(t))
	for i, v := range t {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func formatBounds(b rtree.MBR) string {
	return formatTuple(b.Min) + " " + formatTuple(b.Max)
}
