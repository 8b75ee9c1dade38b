package rtree

// Observer receives notifications at points of interest during Insert
// and Search. It exists purely for ambient instrumentation (metrics,
// tracing) — the zero value (noopObserver) costs nothing and changes no
// core semantics. Implementations must not call back into the tree.
type Observer interface {
	// TupleInserted is called once per completed Insert.
	TupleInserted()
	// NodeSplit is called once per split performed (leaf or internal).
	NodeSplit()
	// SearchCompleted is called once per completed Search with the
	// number of matching tuples found.
	SearchCompleted(matches int)
}

type noopObserver struct{}

func (noopObserver) TupleInserted()      {}
func (noopObserver) NodeSplit()          {}
func (noopObserver) SearchCompleted(int) {}

var _ Observer = noopObserver{}
