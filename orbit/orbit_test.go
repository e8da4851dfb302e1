package orbit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyfacet/geom"
	"github.com/katalvlaran/polyfacet/orbit"
)

// dihedral8 is the full symmetry table of a square on vertices 0..3 in
// cyclic order: four rotations followed by four reflections.
func dihedral8() orbit.VertexMap {
	var vm orbit.VertexMap
	for r := 0; r < 4; r++ {
		row := make([]int, 4)
		for v := 0; v < 4; v++ {
			row[v] = (v + r) % 4
		}
		vm = append(vm, row)
	}
	for r := 0; r < 4; r++ {
		row := make([]int, 4)
		for v := 0; v < 4; v++ {
			row[v] = (4 + r - v) % 4
		}
		vm = append(vm, row)
	}

	return vm
}

// unitSquare lists the square's vertices in cyclic order.
func unitSquare() []geom.Point {
	return []geom.Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
}

// TestValidate_Shapes exercises the vertex-map well-formedness checks.
func TestValidate_Shapes(t *testing.T) {
	assert.ErrorIs(t, orbit.VertexMap{}.Validate(3), orbit.ErrBadVertexMap, "no rows")
	assert.ErrorIs(t, orbit.VertexMap{{0, 1}}.Validate(3), orbit.ErrBadVertexMap, "short row")
	assert.ErrorIs(t, orbit.VertexMap{{0, 0, 2}}.Validate(3), orbit.ErrBadVertexMap, "not a permutation")
	assert.ErrorIs(t, orbit.VertexMap{{1, 0, 2}}.Validate(3), orbit.ErrBadVertexMap, "row 0 not identity")
	assert.NoError(t, dihedral8().Validate(4))
	assert.NoError(t, orbit.Identity(5).Validate(5))
}

// TestVertices_PartitionUnderDihedral checks the full-symmetry square has a
// single vertex orbit covering every vertex exactly once.
func TestVertices_PartitionUnderDihedral(t *testing.T) {
	orbits := orbit.Vertices(4, dihedral8())
	require.Len(t, orbits, 1, "all square vertices are equivalent")
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, orbits[0].Members)
}

// TestVertices_IdentityMapSingletons checks the trivial group yields
// singleton orbits.
func TestVertices_IdentityMapSingletons(t *testing.T) {
	orbits := orbit.Vertices(4, orbit.Identity(4))
	require.Len(t, orbits, 4)
	for i, o := range orbits {
		assert.Equal(t, []int{i}, o.Members, "vertex %d is its own orbit", i)
	}
}

// TestPairs_SquareHasEdgeAndDiagonalOrbits checks the square's pairs split
// into the edge orbit (size 4) and the diagonal orbit (size 2).
func TestPairs_SquareHasEdgeAndDiagonalOrbits(t *testing.T) {
	vm := dihedral8()
	vOrbits := orbit.Vertices(4, vm)

	pOrbits, err := orbit.Pairs(4, vm, vOrbits, nil, nil)
	require.NoError(t, err)
	require.Len(t, pOrbits, 2, "edges and diagonals")

	sizes := []int{len(pOrbits[0].Members), len(pOrbits[1].Members)}
	assert.ElementsMatch(t, []int{4, 2}, sizes)

	// Partition: each unordered pair appears in exactly one orbit.
	seen := map[[2]int]int{}
	for _, po := range pOrbits {
		for _, p := range po.Members {
			u, v := p.U, p.V
			if u > v {
				u, v = v, u
			}
			seen[[2]int{u, v}]++
		}
	}
	assert.Len(t, seen, 6, "all C(4,2) pairs covered")
	for pair, c := range seen {
		assert.Equal(t, 1, c, "pair %v counted once", pair)
	}
}

// TestPairs_EdgeLengthFilter checks that a fixed edge length keeps only the
// side pairs of the square, and that an impossible length yields nothing.
func TestPairs_EdgeLengthFilter(t *testing.T) {
	vm := dihedral8()
	vOrbits := orbit.Vertices(4, vm)
	side := 1.0

	pOrbits, err := orbit.Pairs(4, vm, vOrbits, unitSquare(), &side)
	require.NoError(t, err)
	require.Len(t, pOrbits, 1, "only the side-length orbit survives")
	assert.Len(t, pOrbits[0].Members, 4)

	long := 99.0
	pOrbits, err = orbit.Pairs(4, vm, vOrbits, unitSquare(), &long)
	require.NoError(t, err)
	assert.Empty(t, pOrbits, "no pair matches an impossible length")
}

// TestPairs_NeedPoints checks the coordinates guard.
func TestPairs_NeedPoints(t *testing.T) {
	side := 1.0
	_, err := orbit.Pairs(4, dihedral8(), orbit.Vertices(4, dihedral8()), nil, &side)
	assert.ErrorIs(t, err, orbit.ErrNeedPoints)
}
