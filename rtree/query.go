package rtree

// Search returns the multiset of tuples stored in the tree that lie
// within the closed box [query.Min, query.Max] (component-wise). Order
// is unspecified. Search does not mutate the tree and is safe to call
// concurrently with other Search calls on a quiescent tree.
func (t *Tree) Search(query MBR) [][]int32 {
	t.checkDims(query.Min)
	t.checkDims(query.Max)

	if t.root.count() == 0 {
		t.observer.SearchCompleted(0)
		return nil
	}

	var results [][]int32
	search(t.root, query, &results)
	t.observer.SearchCompleted(len(results))
	return results
}

// search recursively descends, pruning subtrees whose MBR does not
// intersect the query box.
func search(n *node, query MBR, results *[][]int32) {
	if !intersects(query, n.mbr) {
		return
	}

	if n.isLeaf {
		for _, tuple := range n.tuples {
			if tupleIn(query, tuple) {
				*results = append(*results, tuple)
			}
		}
		return
	}

	for _, c := range n.children {
		search(c, query, results)
	}
}

// Entries returns every tuple stored in the tree, traversing
// iteratively with an explicit stack rather than recursion.
func (t *Tree) Entries() [][]int32 {
	if t.root.count() == 0 {
		return nil
	}

	var out [][]int32
	s := &stack[*node]{}
	s.push(t.root)
	for !s.empty() {
		n, _ := s.pop()
		if n.isLeaf {
			out = append(out, n.tuples...)
			continue
		}
		for _, c := range n.children {
			s.push(c)
		}
	}
	return out
}

// NodeView is a read-only view of a node exposed to external
// collaborators such as a tree printer. It never exposes pointers into
// the tree's mutable structure (tuples/bounds are returned as copies).
type NodeView struct {
	Depth    int
	IsLeaf   bool
	MBR      MBR
	Tuples   [][]int32
	NumChild int
}

// Walk invokes visit once per node in the tree, pre-order, passing a
// NodeView. It is the only way an external package may inspect tree
// structure — the node type itself is unexported.
func (t *Tree) Walk(visit func(NodeView)) {
	walk(t.root, 0, visit)
}

func walk(n *node, depth int, visit func(NodeView)) {
	view := NodeView{
		Depth:  depth,
		IsLeaf: n.isLeaf,
		MBR:    n.mbr.clone(),
	}
	if n.isLeaf {
		view.Tuples = make([][]int32, len(n.tuples))
		for i, tup := range n.tuples {
			view.Tuples[i] = cloneTuple(tup)
		}
	} else {
		view.NumChild = len(n.children)
	}
	visit(view)
	for _, c := range n.children {
		walk(c, depth+1, visit)
	}
}
