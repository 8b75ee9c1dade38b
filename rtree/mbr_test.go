package rtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAreaAndUnion(t *testing.T) {
	a := MBR{Min: []int32{0, 0}, Max: []int32{10, 10}}
	b := MBR{Min: []int32{5, 5}, Max: []int32{15, 15}}

	assert.Equal(t, int64(100), a.area())

	u := union(a, b)
	assert.Equal(t, []int32{0, 0}, u.Min)
	assert.Equal(t, []int32{15, 15}, u.Max)
	assert.Equal(t, int64(225), u.area())
}

func TestIntersects(t *testing.T) {
	a := MBR{Min: []int32{0, 0}, Max: []int32{10, 10}}

	tests := []struct {
		name string
		b    MBR
		want bool
	}{
		{"overlapping", MBR{Min: []int32{5, 5}, Max: []int32{15, 15}}, true},
		{"touching at edge", MBR{Min: []int32{10, 10}, Max: []int32{20, 20}}, true},
		{"disjoint", MBR{Min: []int32{15, 15}, Max: []int32{20, 20}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, intersects(a, tt.b))
		})
	}
}

func TestEnlargement(t *testing.T) {
	b := MBR{Min: []int32{0, 0}, Max: []int32{10, 10}}

	assert.Equal(t, int64(0), enlargement(b, []int32{5, 5}), "point already inside costs nothing")
	assert.Equal(t, int64(0), enlargement(b, []int32{10, 10}), "point on the boundary costs nothing")

	// Enlarging to include (15, 10): new box is [0,0]-[15,10], area 150 vs original 100.
	assert.Equal(t, int64(50), enlargement(b, []int32{15, 10}))
}

func TestTupleIn(t *testing.T) {
	b := MBR{Min: []int32{0, 0}, Max: []int32{10, 10}}

	assert.True(t, tupleIn(b, []int32{0, 0}), "min-boundary point is included")
	assert.True(t, tupleIn(b, []int32{10, 10}), "max-boundary point is included")
	assert.False(t, tupleIn(b, []int32{11, 0}))
}

func TestIntersectionEnlargement(t *testing.T) {
	a := MBR{Min: []int32{0, 0}, Max: []int32{10, 10}}
	b := MBR{Min: []int32{5, 5}, Max: []int32{15, 15}}

	enl, ok := intersectionEnlargement(a, b)
	assert.True(t, ok)
	assert.Equal(t, union(a, b).area()-b.area(), enl)

	disjoint := MBR{Min: []int32{100, 100}, Max: []int32{200, 200}}
	_, ok = intersectionEnlargement(a, disjoint)
	assert.False(t, ok)
}
