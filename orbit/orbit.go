// orbit.go — vertex and pair orbit decomposition.
//
// Description:
//
//	A single pass over vertices 0..n discovers each orbit by applying
//	every row of the vertex map to the first unvisited vertex. Pair
//	orbits fix one representative per vertex orbit and expand every
//	still-unpaired partner under the full table, so each unordered pair
//	lands in exactly one orbit.
//
// The visited-pair set is a roaring bitmap over keys u·n+v (both
// orientations are marked), which stays small for the sparse key space of
// large vertex counts.

package orbit

import (
	"math"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/polyfacet/geom"
)

// Vertices partitions vertices 0..n-1 into orbits under vm. Every vertex
// belongs to exactly one orbit; vm is assumed validated.
func Vertices(n int, vm VertexMap) []Orbit {
	visited := make([]bool, n)
	var orbits []Orbit

	var v, c int
	for v = 0; v < n; v++ {
		if visited[v] {
			continue
		}
		var members []int
		for _, row := range vm {
			c = row[v]
			if !visited[c] {
				visited[c] = true
				members = append(members, c)
			}
		}
		orbits = append(orbits, Orbit{Members: members})
	}

	return orbits
}

// Pairs partitions unordered vertex pairs into orbits under vm, starting
// from one representative per vertex orbit. If edgeLength is non-nil, only
// pairs at that geometric distance (within geom.Eps) are considered, and
// points must supply coordinates for every vertex.
func Pairs(n int, vm VertexMap, vertexOrbits []Orbit, points []geom.Point, edgeLength *float64) ([]PairOrbit, error) {
	if edgeLength != nil && len(points) != n {
		return nil, ErrNeedPoints
	}
	if n > 0 && uint64(n)*uint64(n) > math.MaxUint32 {
		return nil, ErrTooManyVertices
	}

	seen := roaring.New()
	key := func(a, b int) uint32 { return uint32(a*n + b) }

	var orbits []PairOrbit
	var rep, v, c1, c2 int
	for _, ob := range vertexOrbits {
		rep = ob.Rep()
		for v = 0; v < n; v++ {
			if v == rep || seen.Contains(key(rep, v)) {
				continue
			}
			if edgeLength != nil &&
				math.Abs(geom.Distance(points[rep], points[v])-*edgeLength) > geom.Eps {
				continue
			}
			var members []Pair
			for _, row := range vm {
				c1, c2 = row[rep], row[v]
				if !seen.Contains(key(c1, c2)) {
					members = append(members, Pair{U: c1, V: c2})
					seen.Add(key(c1, c2))
					seen.Add(key(c2, c1))
				}
			}
			orbits = append(orbits, PairOrbit{Members: members})
		}
	}

	return orbits, nil
}
