package rtree

import "math"

// MBR is an axis-aligned minimum bounding rectangle over d dimensions:
// a closed interval [Min[i], Max[i]] per dimension.
type MBR struct {
	Min []int32
	Max []int32
}

// emptyMBR returns the sentinel MBR for a node with no entries yet:
// Min = +inf, Max = -inf per dimension, so the first union/add collapses
// it to the entry's own bounds rather than widening around it.
func emptyMBR(d int) MBR {
	min := make([]int32, d)
	max := make([]int32, d)
	for i := range min {
		min[i] = math.MaxInt32
		max[i] = math.MinInt32
	}
	return MBR{Min: min, Max: max}
}

func pointMBR(tuple []int32) MBR {
	min := make([]int32, len(tuple))
	max := make([]int32, len(tuple))
	copy(min, tuple)
	copy(max, tuple)
	return MBR{Min: min, Max: max}
}

func (b MBR) clone() MBR {
	min := make([]int32, len(b.Min))
	max := make([]int32, len(b.Max))
	copy(min, b.Min)
	copy(max, b.Max)
	return MBR{Min: min, Max: max}
}

// area is the product, over dimensions, of (Max[i]-Min[i]). Computed in
// int64 so it cannot overflow for realistic d and 32-bit coordinate
// ranges. Callers must never invoke this on the sentinel (empty) MBR.
func (b MBR) area() int64 {
	var a int64 = 1
	for i := range b.Min {
		a *= int64(b.Max[i]) - int64(b.Min[i])
	}
	return a
}

// union returns the tightest MBR covering both operands.
func union(a, b MBR) MBR {
	d := len(a.Min)
	min := make([]int32, d)
	max := make([]int32, d)
	for i := 0; i < d; i++ {
		min[i] = minInt32(a.Min[i], b.Min[i])
		max[i] = maxInt32(a.Max[i], b.Max[i])
	}
	return MBR{Min: min, Max: max}
}

// intersects reports whether a and b overlap (or touch) in every dimension.
func intersects(a, b MBR) bool {
	for i := range a.Min {
		if a.Min[i] > b.Max[i] || a.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// intersectionEnlargement reports whether a and b overlap and, if so,
// how much area b would gain by growing to cover a: area(union(a,b)) -
// area(b). Kept separate from the boolean intersects rather than
// folding disjointness and enlargement into one overloaded return.
func intersectionEnlargement(a, b MBR) (int64, bool) {
	if !intersects(a, b) {
		return 0, false
	}
	return union(a, b).area() - b.area(), true
}

// enlargement is the area added to b by including the point t.
func enlargement(b MBR, t []int32) int64 {
	orig := b.area()
	var grown int64 = 1
	for i, v := range t {
		switch {
		case v < b.Min[i]:
			grown *= int64(b.Max[i]) - int64(v)
		case v > b.Max[i]:
			grown *= int64(v) - int64(b.Min[i])
		default:
			grown *= int64(b.Max[i]) - int64(b.Min[i])
		}
	}
	return grown - orig
}

// enlargementMBR is the area added to b by including the whole box e —
// the same quantity as enlargement(b, t) when e is a degenerate point
// box, generalised to cover internal-node children during split.
func enlargementMBR(b, e MBR) int64 {
	return union(b, e).area() - b.area()
}

// tupleIn reports whether t lies within the closed box b.
func tupleIn(b MBR, t []int32) bool {
	for i, v := range t {
		if v < b.Min[i] || v > b.Max[i] {
			return false
		}
	}
	return true
}

// expand grows b in place to include t, matching node.addTuple's bound
// update without constructing an intermediate MBR.
func (b *MBR) expand(t []int32) {
	for i, v := range t {
		if v < b.Min[i] {
			b.Min[i] = v
		}
		if v > b.Max[i] {
			b.Max[i] = v
		}
	}
}

func minInt32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
