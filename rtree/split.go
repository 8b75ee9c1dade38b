package rtree

// splitPartition implements Guttman's quadratic split (PickSeeds +
// PickNext) over a list of candidate MBRs, independent of whether the
// candidates are child nodes or tuples treated as point-MBRs: the leaf
// case runs the identical algorithm over point-MBRs rather than
// materialising temporary nodes.
//
// It returns two index partitions of 0..len(mbrs)-1, each of size at
// least min, in the order entries were assigned to that side (seed
// first). Precondition: len(mbrs) >= min*2, which holds for the M+1
// entries of an overfull node when min ≤ ⌈M/2⌉; the forced-assignment
// rule guarantees both groups end up with at least min entries.
func splitPartition(mbrs []MBR, min int) (groupA, groupB []int) {
	n := len(mbrs)

	seedA, seedB := pickSeeds(mbrs)

	// Remaining working list, excluding the two seeds.
	remaining := make([]int, 0, n-2)
	for i := 0; i < n; i++ {
		if i != seedA && i != seedB {
			remaining = append(remaining, i)
		}
	}

	groupA = []int{seedA}
	groupB = []int{seedB}
	boxA := mbrs[seedA]
	boxB := mbrs[seedB]

	for len(remaining) > 0 {
		// Forced assignment: if every remaining entry must go to one
		// side to keep the other at exactly min, route them all there
		// in their current order.
		if len(groupA)+len(remaining) == min && len(groupB) >= min {
			groupA = append(groupA, remaining...)
			for _, i := range remaining {
				boxA = union(boxA, mbrs[i])
			}
			remaining = nil
			break
		}
		if len(groupB)+len(remaining) == min && len(groupA) >= min {
			groupB = append(groupB, remaining...)
			for _, i := range remaining {
				boxB = union(boxB, mbrs[i])
			}
			remaining = nil
			break
		}

		// PickNext: the entry with the greatest preference strength
		// between the two sides, ties broken by earliest position in
		// the remaining list.
		best := 0
		var bestDiff int64 = -1
		var bestD1, bestD2 int64
		for i, idx := range remaining {
			d1 := enlargementMBR(boxA, mbrs[idx])
			d2 := enlargementMBR(boxB, mbrs[idx])
			diff := d1 - d2
			if diff < 0 {
				diff = -diff
			}
			if diff > bestDiff {
				bestDiff, best, bestD1, bestD2 = diff, i, d1, d2
			}
		}

		chosen := remaining[best]
		remaining = append(remaining[:best], remaining[best+1:]...)

		// Assign to the side with the smaller enlargement; on a tie
		// assign to groupA. Either side is a valid tie-break as long
		// as it is applied deterministically.
		if bestD1 > bestD2 {
			groupB = append(groupB, chosen)
			boxB = union(boxB, mbrs[chosen])
		} else {
			groupA = append(groupA, chosen)
			boxA = union(boxA, mbrs[chosen])
		}
	}

	return groupA, groupB
}

// pickSeeds selects the pair of candidates that would waste the most
// area if placed together, breaking ties by the earliest (i, j) pair
// in lexicographic order.
func pickSeeds(mbrs []MBR) (int, int) {
	bestI, bestJ := 0, 1
	var bestWaste int64 = -1 << 62

	for i := 0; i < len(mbrs); i++ {
		for j := i + 1; j < len(mbrs); j++ {
			waste := union(mbrs[i], mbrs[j]).area() - mbrs[i].area() - mbrs[j].area()
			if waste > bestWaste {
				bestWaste, bestI, bestJ = waste, i, j
			}
		}
	}
	return bestI, bestJ
}

// splitInternal splits an overfull internal node n (currently holding
// M children) that must also absorb excess. n keeps its identity and
// parent link (the caller must preserve those); the returned sibling
// has no parent yet — AdjustTree installs it.
func (t *Tree) splitInternal(n *node, excess *node) *node {
	entries := make([]*node, 0, len(n.children)+1)
	entries = append(entries, n.children...)
	entries = append(entries, excess)

	mbrs := make([]MBR, len(entries))
	for i, c := range entries {
		mbrs[i] = c.mbr
	}
	groupA, groupB := splitPartition(mbrs, t.min)

	n.clear(t.dims)
	for _, i := range groupA {
		n.addChild(entries[i])
	}

	sibling := newInternal(t.dims)
	for _, i := range groupB {
		sibling.addChild(entries[i])
	}

	t.observer.NodeSplit()
	return sibling
}

// splitLeaf is the leaf analogue of splitInternal: each of the M+1
// tuples (the leaf's current M tuples plus excess) is treated as a
// point-MBR entry for the purposes of PickSeeds/PickNext, then
// projected back into leaf form.
func (t *Tree) splitLeaf(n *node, excess []int32) *node {
	entries := make([][]int32, 0, len(n.tuples)+1)
	entries = append(entries, n.tuples...)
	entries = append(entries, excess)

	mbrs := make([]MBR, len(entries))
	for i, tup := range entries {
		mbrs[i] = pointMBR(tup)
	}
	groupA, groupB := splitPartition(mbrs, t.min)

	n.clear(t.dims)
	for _, i := range groupA {
		n.addTuple(entries[i])
	}

	sibling := newLeaf(t.dims)
	for _, i := range groupB {
		sibling.addTuple(entries[i])
	}

	t.observer.NodeSplit()
	return sibling
}
