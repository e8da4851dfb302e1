// hyperplane.go — hyperplane enumeration and stabilizer extraction.
//
// Description:
//
//	Checking every (rank-1)-tuple of vertices is too expensive, so each
//	pair-orbit representative is extended by rank-3 additional vertices
//	via an index odometer. A tuple that spans a hyperplane of the current
//	ambient space is canonicalized by its sorted incident-vertex list;
//	unseen hyperplanes are expanded under every vertex-map row so the
//	whole orbit is registered at once and only one representative
//	subspace is kept.
//
// Rationale:
//   - The incident-vertex list, not the subspace itself, is the dedup key:
//     it is exact under the global tolerance and hashable.
//   - At ambient rank 3 a validated pair already determines the needed
//     flat, so the first viable tuple per pair orbit settles that orbit.
//
// Complexity: O(P · N^(rank-3) · (R + N·d²)) worst case for P pair orbits,
// N vertices, R rows, dimension d. The orbit pruning keeps P small.

package faceting

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/katalvlaran/polyfacet/geom"
	"github.com/katalvlaran/polyfacet/orbit"
)

// hyperplaneOrbit is one orbit of hyperplanes under the vertex map, kept
// as a single representative.
type hyperplaneOrbit struct {
	// plane is the representative subspace, in the current level's local
	// coordinates.
	plane geom.Subspace

	// vertices lists the representative's incident vertices, ascending,
	// in the current level's vertex numbering.
	vertices []int

	// size is the number of distinct hyperplanes in the orbit.
	size int
}

// orbitSizes projects the per-orbit hyperplane counts.
func orbitSizes(hps []hyperplaneOrbit) []int {
	sizes := make([]int, len(hps))
	for i := range hps {
		sizes[i] = hps[i].size
	}

	return sizes
}

// enumerateHyperplanes finds all hyperplane orbits reachable from the pair
// orbits. points carry the parent-frame coordinates used by the
// edge-length filter; flat carry this level's local coordinates used for
// spanning and membership (identical slices at top level). It returns the
// orbits plus the total count of distinct hyperplanes seen.
func enumerateHyperplanes(rank int, points, flat []geom.Point, pairs []orbit.PairOrbit, vm orbit.VertexMap, edgeLength *float64) ([]hyperplaneOrbit, int, error) {
	n := len(points)
	seen := make(map[string]bool)
	var orbits []hyperplaneOrbit

	for _, po := range pairs {
		rep := po.Rep()

		// Odometer over rank-3 additional vertex indices; empty at rank 3.
		digits := make([]int, rank-3)
		update := 0
		if rank > 3 {
			update = rank - 4
		}

	tuples:
		for {
			viable := true
			if edgeLength != nil {
				// Necessary filter: every added vertex must sit at the
				// fixed distance from the pair's first vertex.
				for _, v := range digits {
					if math.Abs(geom.Distance(points[v], points[rep.U])-*edgeLength) > geom.Eps {
						viable = false

						break
					}
				}
			}
			if viable {
				tuple := make([]int, 0, 2+len(digits))
				tuple = append(tuple, rep.U, rep.V)
				tuple = append(tuple, digits...)

				pts := make([]geom.Point, len(tuple))
				for i, v := range tuple {
					pts[i] = flat[v]
				}
				hp, err := geom.FromPoints(pts)
				if err != nil {
					return nil, 0, err
				}
				if hp.IsHyperplane() {
					var hv []int
					for idx := range flat {
						if hp.Distance(flat[idx]) < geom.Eps {
							hv = append(hv, idx)
						}
					}
					if !seen[intsKey(hv)] {
						// New orbit: register every image's canonical key.
						size := 0
						img := make([]int, len(hv))
						for _, row := range vm {
							for i, v := range hv {
								img[i] = row[v]
							}
							sorted := append([]int(nil), img...)
							sort.Ints(sorted)
							k := intsKey(sorted)
							if !seen[k] {
								seen[k] = true
								size++
							}
						}
						orbits = append(orbits, hyperplaneOrbit{plane: hp, vertices: hv, size: size})
					}
					if rank <= 3 {
						break tuples // the pair already determined the flat
					}
				}
			}

			// Advance the odometer; a digitless odometer has one state.
			if len(digits) == 0 {
				break tuples
			}
			for {
				if digits[update] == n+update-rank+3 {
					if update < 1 {
						break tuples
					}
					update--
				} else {
					digits[update]++
					for i := update + 1; i < rank-3; i++ {
						digits[i] = digits[i-1] + 1
					}
					update = rank - 4

					break
				}
			}
		}
	}

	return orbits, len(seen), nil
}

// stabilizerLocal extracts the rows fixing the hyperplane's vertex set
// setwise and rewrites them in hyperplane-local indices (positions within
// the ascending vertex list). Row 0 of the result is the identity because
// row 0 of vm is.
func stabilizerLocal(hpVerts []int, vm orbit.VertexMap) orbit.VertexMap {
	hpSet := roaring.New()
	back := make(map[int]int, len(hpVerts))
	for i, v := range hpVerts {
		hpSet.Add(uint32(v))
		back[v] = i
	}

	var stab orbit.VertexMap
	img := make([]int, len(hpVerts))
	for _, row := range vm {
		set := roaring.New()
		for i, v := range hpVerts {
			img[i] = row[v]
			set.Add(uint32(row[v]))
		}
		if set.Equals(hpSet) {
			local := make([]int, len(img))
			for i, g := range img {
				local[i] = back[g]
			}
			stab = append(stab, local)
		}
	}

	return stab
}

// intsKey encodes an int slice as a map key.
func intsKey(xs []int) string {
	var sb strings.Builder
	for i, x := range xs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(x))
	}

	return sb.String()
}
