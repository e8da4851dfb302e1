// subdim.go — recursive enumeration of facet candidates one rank down.
//
// Description:
//
//	Faceting a hyperplane is the same problem one rank lower: flatten the
//	incident vertices into the hyperplane's own coordinates, localize the
//	stabilizer, and enumerate that sub-polytope's facetings. Each
//	faceting found becomes one candidate facet of the level above, and
//	the candidates' own structures double as the ridge templates the
//	level above glues along.
//
// Contract:
//   - points arrive in the PARENT's coordinate system together with the
//     plane they span; they are flattened here. Distance checks stay on
//     the parent coordinates, which agree with the flattened ones since
//     the basis is orthonormal.
//   - returned candidates carry Local structures (this level's vertex
//     numbering) and RidgeRefs; the caller lifts Local to its own
//     numbering. The third return groups the sub-candidates' Global
//     forms per hyperplane orbit: they are the caller's ridge templates.

package faceting

import (
	"github.com/katalvlaran/polyfacet/abs"
	"github.com/katalvlaran/polyfacet/geom"
	"github.com/katalvlaran/polyfacet/orbit"
)

// facetCandidate is one possible facet of the current level: a faceting
// of one of its hyperplanes.
type facetCandidate struct {
	// Local is the candidate's incidence structure in the vertex
	// numbering of the level that produced it.
	Local abs.Ranks

	// Global is Local lifted into the consuming level's numbering; set
	// by the consumer, not the producer.
	Global abs.Ranks

	// RidgeRefs names the candidate's ridges as (sub-orbit, index) pairs
	// into the producing level's candidate lists.
	RidgeRefs []ridgeRef
}

// ridgeRef addresses one ridge template: sub-hyperplane orbit and index
// within that orbit's template list.
type ridgeRef struct {
	Orbit int
	Index int
}

// dyadBase handles rank 2: the only faceting of a point pair is the dyad.
// If some row of the local map swaps the endpoints the two virtual
// vertex-ridges fall in one orbit of size two, otherwise the pair is snub
// and each endpoint is its own orbit.
func dyadBase(vm orbit.VertexMap) ([]facetCandidate, []int, [][]abs.Ranks) {
	snub := true
	for _, row := range vm {
		if row[0] == 1 {
			snub = false

			break
		}
	}

	// Virtual vertex templates: only the index-2 list carries meaning,
	// holding the endpoint in local numbering.
	vertexTemplate := func(v int) abs.Ranks {
		return abs.Ranks{
			abs.ElementList{},
			abs.ElementList{{Subs: []int{0}}},
			abs.ElementList{{Subs: []int{v}}},
		}
	}

	cand := facetCandidate{Local: abs.Dyad()}
	if snub {
		cand.RidgeRefs = []ridgeRef{{0, 0}, {1, 0}}

		return []facetCandidate{cand},
			[]int{1, 1},
			[][]abs.Ranks{{vertexTemplate(0)}, {vertexTemplate(1)}}
	}
	cand.RidgeRefs = []ridgeRef{{0, 0}}

	return []facetCandidate{cand},
		[]int{2},
		[][]abs.Ranks{{vertexTemplate(0)}}
}

// facetSubdim enumerates all facetings of a sub-polytope of the given
// rank. plane and points are in the parent's coordinates; vm is the
// localized stabilizer with the identity as row 0.
func facetSubdim(rank int, plane geom.Subspace, points []geom.Point, vm orbit.VertexMap, edgeLength *float64, irc bool) ([]facetCandidate, []int, [][]abs.Ranks, error) {
	if rank == 2 {
		cands, sizes, ridges := dyadBase(vm)

		return cands, sizes, ridges, nil
	}

	n := len(points)
	flat := make([]geom.Point, n)
	for i, p := range points {
		flat[i] = plane.Flatten(p)
	}

	vertexOrbits := orbit.Vertices(n, vm)
	pairOrbits, err := orbit.Pairs(n, vm, vertexOrbits, points, edgeLength)
	if err != nil {
		return nil, nil, nil, err
	}

	hps, _, err := enumerateHyperplanes(rank, points, flat, pairOrbits, vm, edgeLength)
	if err != nil {
		return nil, nil, nil, err
	}

	cands, subSizes, templates, err := subFacet(rank, flat, hps, vm, edgeLength, irc)
	if err != nil {
		return nil, nil, nil, err
	}

	rr, ridgeIndex := buildRidgeIndex(templates, hpVertexLists(hps), vm)

	eng := &searchEngine{
		cands:        cands,
		orbitSizes:   orbitSizes(hps),
		subSizes:     subSizes,
		ridgeOrbitOf: ridgeIndex,
		ridgeSizes:   rr.sizes,
		irc:          irc,
	}

	var out []facetCandidate
	eng.onValid = func(stack []frame) error {
		refs := make([]ridgeRef, len(stack))
		for i, f := range stack {
			refs[i] = ridgeRef{Orbit: f.orbit, Index: f.facet}
		}
		out = append(out, facetCandidate{
			Local:     assembleRanks(rank, n, stack, cands, vm),
			RidgeRefs: refs,
		})

		return nil
	}
	if err := eng.run(); err != nil {
		return nil, nil, nil, err
	}

	// The sub-candidates' lifted structures are the caller's ridge
	// templates, grouped by this level's hyperplane orbits.
	callerRidges := make([][]abs.Ranks, len(cands))
	for h := range cands {
		callerRidges[h] = make([]abs.Ranks, len(cands[h]))
		for f := range cands[h] {
			callerRidges[h][f] = cands[h][f].Global
		}
	}

	return out, orbitSizes(hps), callerRidges, nil
}

// subFacet recurses into every hyperplane orbit and lifts the returned
// candidates into the current level's vertex numbering. It returns the
// per-orbit candidate lists, the per-orbit sub-orbit sizes, and the raw
// ridge templates (still in each hyperplane's local numbering).
func subFacet(rank int, flat []geom.Point, hps []hyperplaneOrbit, vm orbit.VertexMap, edgeLength *float64, irc bool) ([][]facetCandidate, [][]int, [][][]abs.Ranks, error) {
	cands := make([][]facetCandidate, len(hps))
	subSizes := make([][]int, len(hps))
	templates := make([][][]abs.Ranks, len(hps))

	for h := range hps {
		if err := subFacetOne(rank, flat, hps, h, vm, edgeLength, irc, cands, subSizes, templates); err != nil {
			return nil, nil, nil, err
		}
	}

	return cands, subSizes, templates, nil
}

// subFacetOne handles a single hyperplane orbit; results land in the
// shared indexed slices so callers may fan out.
func subFacetOne(rank int, flat []geom.Point, hps []hyperplaneOrbit, h int, vm orbit.VertexMap, edgeLength *float64, irc bool, cands [][]facetCandidate, subSizes [][]int, templates [][][]abs.Ranks) error {
	hp := hps[h]
	stab := stabilizerLocal(hp.vertices, vm)

	sub := make([]geom.Point, len(hp.vertices))
	for i, v := range hp.vertices {
		sub[i] = flat[v]
	}

	got, sizes, tpls, err := facetSubdim(rank-1, hp.plane, sub, stab, edgeLength, irc)
	if err != nil {
		return err
	}

	// Lift each candidate's structure into this level's numbering.
	for i := range got {
		got[i].Global = got[i].Local.Clone()
		got[i].Global.RelabelVertices(hp.vertices)
	}
	cands[h] = got
	subSizes[h] = sizes
	templates[h] = tpls

	return nil
}

// hpVertexLists projects the incident-vertex lists of the orbits.
func hpVertexLists(hps []hyperplaneOrbit) [][]int {
	lists := make([][]int, len(hps))
	for i := range hps {
		lists[i] = hps[i].vertices
	}

	return lists
}
