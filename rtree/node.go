package rtree

// node is the tagged leaf/internal variant: both shapes share an MBR
// and a non-owning parent back-reference. A leaf holds tuples and no
// children; an internal node holds children and no tuples.
type node struct {
	mbr      MBR
	isLeaf   bool
	parent   *node
	children []*node
	tuples   [][]int32
}

func newLeaf(d int) *node {
	return &node{mbr: emptyMBR(d), isLeaf: true}
}

func newInternal(d int) *node {
	return &node{mbr: emptyMBR(d), isLeaf: false}
}

// count returns the number of entries: tuples for a leaf, children for
// an internal node.
func (n *node) count() int {
	if n.isLeaf {
		return len(n.tuples)
	}
	return len(n.children)
}

// addTuple appends t to a leaf and extends its MBR component-wise.
// Panics with ErrKindMismatch if n is not a leaf.
func (n *node) addTuple(t []int32) {
	if !n.isLeaf {
		panic(ErrKindMismatch)
	}
	n.tuples = append(n.tuples, t)
	n.mbr.expand(t)
}

// addChild appends c, reparents it to n, and extends n's MBR to include
// c.mbr. An empty n adopts a copy of c's MBR outright instead of
// unioning it with the sentinel.
func (n *node) addChild(c *node) {
	if n.isLeaf {
		panic(ErrKindMismatch)
	}
	if len(n.children) == 0 {
		n.mbr = c.mbr.clone()
	} else {
		n.mbr = union(n.mbr, c.mbr)
	}
	n.children = append(n.children, c)
	c.parent = n
}

// retightenMBR recomputes n's MBR as the union/extent of its current
// entries. Used by AdjustTree and by split to restore invariant 3.
func (n *node) retightenMBR(d int) {
	if n.isLeaf {
		if len(n.tuples) == 0 {
			n.mbr = emptyMBR(d)
			return
		}
		b := pointMBR(n.tuples[0])
		for _, t := range n.tuples[1:] {
			b.expand(t)
		}
		n.mbr = b
		return
	}
	if len(n.children) == 0 {
		n.mbr = emptyMBR(d)
		return
	}
	b := n.children[0].mbr.clone()
	for _, c := range n.children[1:] {
		b = union(b, c.mbr)
	}
	n.mbr = b
}

// clear resets n to empty, used only by split before reassigning the
// first seed.
func (n *node) clear(d int) {
	n.children = nil
	n.tuples = nil
	n.mbr = emptyMBR(d)
}
