// types.go — the vertex-map type, orbit records, and sentinel errors.

package orbit

import "errors"

// Sentinel errors for orbit operations.
var (
	// ErrBadVertexMap indicates a vertex map with no rows, rows of the
	// wrong length, rows that are not permutations, or a first row that is
	// not the identity.
	ErrBadVertexMap = errors.New("orbit: malformed vertex map")

	// ErrNeedPoints indicates an edge-length filter was requested without
	// coordinates for every vertex.
	ErrNeedPoints = errors.New("orbit: edge-length filter needs one point per vertex")

	// ErrTooManyVertices indicates a vertex count whose pair key space
	// exceeds the 32-bit bitmap domain.
	ErrTooManyVertices = errors.New("orbit: vertex count exceeds pair-key domain")
)

// VertexMap is a table of vertex permutations, one row per group element.
// Row 0 is conventionally the identity. The table must be the full group
// (or at least reach every member of every orbit it is queried about).
type VertexMap [][]int

// Identity returns the single-row vertex map of the trivial group on n
// vertices.
func Identity(n int) VertexMap {
	row := make([]int, n)
	for i := range row {
		row[i] = i
	}

	return VertexMap{row}
}

// Validate checks that vm is a well-shaped table for n vertices: at least
// one row, every row a permutation of 0..n-1, and row 0 the identity.
// It does not (and cannot cheaply) check group closure; an incomplete
// table silently yields incomplete orbits, which is a caller contract
// violation.
func (vm VertexMap) Validate(n int) error {
	if len(vm) == 0 {
		return ErrBadVertexMap
	}
	seen := make([]bool, n)
	for _, row := range vm {
		if len(row) != n {
			return ErrBadVertexMap
		}
		for i := range seen {
			seen[i] = false
		}
		for _, c := range row {
			if c < 0 || c >= n || seen[c] {
				return ErrBadVertexMap
			}
			seen[c] = true
		}
	}
	for i, c := range vm[0] {
		if c != i {
			return ErrBadVertexMap
		}
	}

	return nil
}

// Orbit is one equivalence class of vertices; Members[0] is the
// representative (the first vertex discovered).
type Orbit struct {
	Members []int
}

// Rep returns the orbit representative.
func (o Orbit) Rep() int { return o.Members[0] }

// Pair is an ordered vertex pair. Orbits treat (U,V) and (V,U) as the same
// unordered pair.
type Pair struct {
	U, V int
}

// PairOrbit is one equivalence class of vertex pairs; Members[0] is the
// representative.
type PairOrbit struct {
	Members []Pair
}

// Rep returns the pair-orbit representative.
func (o PairOrbit) Rep() Pair { return o.Members[0] }
