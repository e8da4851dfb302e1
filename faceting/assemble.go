// assemble.go — incidence assembly of an accepted facet combination.
//
// Description:
//
//	An accepted stack names one representative facet per chosen orbit.
//	Assembly expands each representative under the whole vertex map,
//	canonicalizes and dedups the images, then merges them rank by rank
//	into a single incidence structure: shared elements (same vertex
//	support, recursively) collapse to one index, and each facet's
//	higher-rank references are rewritten through the merged numbering.
//
// Contract:
//   - the result has exactly rank+1 element lists: nullitope, all
//     nVerts vertices, merged intermediate ranks, facets, body;
//   - superelements are left empty; the caller wires them through
//     abs.Builder when validation is wanted.
//
// Rationale:
//   - Facet images are keyed on their canonical encoding and emitted in
//     sorted key order, so the output is deterministic regardless of map
//     iteration order.

package faceting

import (
	"sort"

	"github.com/katalvlaran/polyfacet/abs"
	"github.com/katalvlaran/polyfacet/orbit"
)

// assembleRanks builds the incidence structure of one accepted stack.
// cands are the per-orbit candidate lists with their Global forms in the
// current level's vertex numbering; nVerts is that level's vertex count.
func assembleRanks(rank, nVerts int, stack []frame, cands [][]facetCandidate, vm orbit.VertexMap) abs.Ranks {
	// Expand every chosen representative under the full map and dedup by
	// canonical key.
	facetSet := make(map[string]abs.Ranks)
	for _, f := range stack {
		global := cands[f.orbit][f.facet].Global
		for _, row := range vm {
			img := global.Clone()
			img.RelabelVertices(row)
			img.ElementSortStrong()
			k := img.Key()
			if _, ok := facetSet[k]; !ok {
				facetSet[k] = img
			}
		}
	}

	keys := make([]string, 0, len(facetSet))
	for k := range facetSet {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	facetVec := make([]abs.Ranks, len(keys))
	for i, k := range keys {
		facetVec[i] = facetSet[k]
	}

	ranks := abs.Ranks{
		abs.ElementList{{}},
		make(abs.ElementList, nVerts),
	}
	for v := range ranks[1] {
		ranks[1][v] = abs.Element{Subs: []int{0}}
	}

	// Merge intermediate ranks: collapse elements with identical subs,
	// then rewrite the next rank's references through the merged indices.
	for r := 2; r < rank-1; r++ {
		subsToIdx := make(map[string]int)
		var merged abs.ElementList
		for _, facet := range facetVec {
			for _, el := range facet[r] {
				k := intsKey(el.Subs)
				if _, ok := subsToIdx[k]; !ok {
					subsToIdx[k] = len(merged)
					merged = append(merged, abs.Element{Subs: append([]int(nil), el.Subs...)})
				}
			}
		}
		for i := range facetVec {
			rewritten := make(abs.ElementList, len(facetVec[i][r+1]))
			for j, el := range facetVec[i][r+1] {
				subs := make([]int, len(el.Subs))
				for s, sub := range el.Subs {
					subs[s] = subsToIdx[intsKey(facetVec[i][r][sub].Subs)]
				}
				// Keep rewritten references sorted so the key-based dedup
				// one rank up sees equal elements equally.
				sort.Ints(subs)
				rewritten[j] = abs.Element{Subs: subs}
			}
			facetVec[i][r+1] = rewritten
		}
		ranks = append(ranks, merged)
	}

	// Facet rank: each facet contributes its single top element.
	var facetRank abs.ElementList
	seen := make(map[string]bool)
	for i := range facetVec {
		subs := facetVec[i][rank-1][0].Subs
		sort.Ints(subs)
		k := intsKey(subs)
		if !seen[k] {
			seen[k] = true
			facetRank = append(facetRank, abs.Element{Subs: append([]int(nil), subs...)})
		}
	}
	ranks = append(ranks, facetRank)

	body := make([]int, len(facetRank))
	for i := range body {
		body[i] = i
	}
	ranks = append(ranks, abs.ElementList{{Subs: body}})

	return ranks
}
