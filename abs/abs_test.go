package abs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyfacet/abs"
)

// squareRanks builds the incidence structure of a quadrilateral on the
// given four edges (vertex pairs).
func squareRanks(edges [][]int) abs.Ranks {
	body := make([]int, len(edges))
	for i := range body {
		body[i] = i
	}
	els := make(abs.ElementList, len(edges))
	for i, e := range edges {
		els[i] = abs.Element{Subs: append([]int(nil), e...)}
	}

	return abs.Ranks{
		abs.ElementList{{}},
		abs.ElementList{{Subs: []int{0}}, {Subs: []int{0}}, {Subs: []int{0}}, {Subs: []int{0}}},
		els,
		abs.ElementList{{Subs: body}},
	}
}

// TestDyad_Shape verifies the canonical dyad.
func TestDyad_Shape(t *testing.T) {
	d := abs.Dyad()
	assert.Equal(t, 2, d.Rank(), "a dyad has rank 2")
	assert.Len(t, d[1], 2, "a dyad has two vertices")
	assert.Equal(t, []int{0, 1}, d[2][0].Subs, "the edge joins both vertices")
}

// TestElementSortStrong_RelabelInvariance checks that two structures
// related by a vertex permutation plus arbitrary sibling order reach the
// same canonical key.
func TestElementSortStrong_RelabelInvariance(t *testing.T) {
	a := squareRanks([][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	b := squareRanks([][]int{{3, 2}, {0, 3}, {1, 0}, {2, 1}}) // same square, edges shuffled and flipped

	a.ElementSortStrong()
	b.ElementSortStrong()
	assert.Equal(t, a.Key(), b.Key(), "canonical forms must coincide")
}

// TestElementSortStrong_DistinguishesShapes checks distinct structures keep
// distinct keys.
func TestElementSortStrong_DistinguishesShapes(t *testing.T) {
	a := squareRanks([][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	b := squareRanks([][]int{{0, 1}, {1, 3}, {3, 2}, {2, 0}}) // the other 4-cycle

	a.ElementSortStrong()
	b.ElementSortStrong()
	assert.NotEqual(t, a.Key(), b.Key(), "different 4-cycles are different structures")
}

// TestRelabelVertices_MapsRankTwoOnly verifies vertex relabeling.
func TestRelabelVertices_MapsRankTwoOnly(t *testing.T) {
	r := squareRanks([][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	r.RelabelVertices([]int{1, 0, 3, 2})
	assert.Equal(t, []int{1, 0}, r[2][0].Subs, "edge endpoints follow the permutation")
	assert.Equal(t, []int{0}, r[1][0].Subs, "vertex rank untouched")
}

// TestBuilder_AcceptsSquare verifies the diamond property on a valid square.
func TestBuilder_AcceptsSquare(t *testing.T) {
	r := squareRanks([][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	b := abs.NewBuilder()
	for _, rank := range r {
		b.PushRank()
		for _, el := range rank {
			b.PushSubs(el.Subs)
		}
	}

	out, err := b.FinalizeOrReject()
	require.NoError(t, err, "a square is dyadic")
	assert.Equal(t, []int{0, 3}, out[1][0].Sups, "vertex 0 lies on edges 0 and 3")
}

// TestBuilder_RejectsOpenPath verifies that a ridge covered once is caught.
func TestBuilder_RejectsOpenPath(t *testing.T) {
	// Three edges of a square: vertices 0 and 3 are each on one edge only.
	r := abs.Ranks{
		abs.ElementList{{}},
		abs.ElementList{{Subs: []int{0}}, {Subs: []int{0}}, {Subs: []int{0}}, {Subs: []int{0}}},
		abs.ElementList{{Subs: []int{0, 1}}, {Subs: []int{1, 2}}, {Subs: []int{2, 3}}},
		abs.ElementList{{Subs: []int{0, 1, 2}}},
	}
	b := abs.NewBuilder()
	for _, rank := range r {
		b.PushRank()
		for _, el := range rank {
			b.PushSubs(el.Subs)
		}
	}

	_, err := b.FinalizeOrReject()
	assert.ErrorIs(t, err, abs.ErrNotDyadic, "an open path is not a polytope")
}

// TestBuilder_RejectsBadIndex verifies internal index validation.
func TestBuilder_RejectsBadIndex(t *testing.T) {
	b := abs.NewBuilder()
	b.PushRank()
	b.PushSubs(nil)
	b.PushRank()
	b.PushSubs([]int{7}) // no such nullitope

	_, err := b.FinalizeOrReject()
	assert.ErrorIs(t, err, abs.ErrElementIndex)
}

// TestBuilder_RejectsShape verifies malformed rank sequences error out.
func TestBuilder_RejectsShape(t *testing.T) {
	b := abs.NewBuilder()
	b.PushRank()
	b.PushSubs(nil)

	_, err := b.FinalizeOrReject()
	assert.ErrorIs(t, err, abs.ErrRankShape, "a single rank is not a polytope")
}
