// ridges.go — global ridge orbit registry.
//
// Description:
//
//	Two facet candidates can only glue along a ridge if their ridge
//	templates are images of each other under the vertex map. The registry
//	canonicalizes each template (globalize its vertex references through
//	the owning hyperplane's incident-vertex list, then strong-sort) and
//	assigns every orbit of templates a stable id plus its orbit size.
//	The search engine's coverage arithmetic runs entirely on those ids.

package faceting

import (
	"github.com/katalvlaran/polyfacet/abs"
	"github.com/katalvlaran/polyfacet/orbit"
)

// ridgeRegistry assigns orbit ids to canonicalized ridge templates.
type ridgeRegistry struct {
	orbits map[string]int
	sizes  []int
}

func newRidgeRegistry() *ridgeRegistry {
	return &ridgeRegistry{orbits: make(map[string]int)}
}

// locate returns the orbit id of a globalized, strong-sorted ridge. An
// unseen ridge opens a new orbit: every image under vm is canonicalized
// and registered, and the number of distinct images becomes the orbit
// size.
func (rr *ridgeRegistry) locate(ridge abs.Ranks, vm orbit.VertexMap) int {
	if id, ok := rr.orbits[ridge.Key()]; ok {
		return id
	}

	id := len(rr.sizes)
	count := 0
	for _, row := range vm {
		img := ridge.Clone()
		img.RelabelVertices(row)
		img.ElementSortStrong()
		k := img.Key()
		if _, ok := rr.orbits[k]; !ok {
			rr.orbits[k] = id
			count++
		}
	}
	rr.sizes = append(rr.sizes, count)

	return id
}

// buildRidgeIndex canonicalizes every ridge template and indexes it in a
// shared registry. templates[h][a][b] is the b-th template of sub-orbit a
// under hyperplane orbit h, with vertex references local to that
// hyperplane; hpVerts[h] lifts them to the current level's numbering.
// The returned index mirrors the template shape with ridge orbit ids.
func buildRidgeIndex(templates [][][]abs.Ranks, hpVerts [][]int, vm orbit.VertexMap) (*ridgeRegistry, [][][]int) {
	rr := newRidgeRegistry()
	index := make([][][]int, len(templates))

	for h, groups := range templates {
		index[h] = make([][]int, len(groups))
		for a, group := range groups {
			index[h][a] = make([]int, len(group))
			for b, tpl := range group {
				ridge := tpl.Clone()
				ridge.RelabelVertices(hpVerts[h])
				ridge.ElementSortStrong()
				index[h][a][b] = rr.locate(ridge, vm)
			}
		}
	}

	return rr, index
}
