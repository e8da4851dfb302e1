// faceting.go — public entry point.
//
// Description:
//
//	Enumerate runs the full pipeline on an ambient vertex set: resolve
//	the symmetry table, decompose vertex and pair orbits, enumerate
//	hyperplane orbits, sub-facet each orbit one rank down (in parallel),
//	index ridge orbits, and search facet combinations. Every combination
//	whose assembled incidence structure passes the dyadic test becomes a
//	Result.
//
// Contract:
//   - ctx cancellation is honored between pipeline stages and sparsely
//     inside the combination search; on cancellation Enumerate returns
//     ctx.Err() and no results.
//   - results are deterministic for a given input: candidate and facet
//     orders do not depend on map iteration.

package faceting

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/polyfacet/abs"
	"github.com/katalvlaran/polyfacet/geom"
	"github.com/katalvlaran/polyfacet/orbit"
)

// Enumerate lists all facetings of the polytope spanned by vertices under
// the given symmetry. The vertex set must span its ambient space, whose
// dimension determines the rank (dim + 1).
func Enumerate(ctx context.Context, vertices []geom.Point, sym Symmetry, opts Options) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	n := len(vertices)
	if n == 0 {
		return nil, ErrNoVertices
	}
	dim := vertices[0].Dim()
	for i := 1; i < n; i++ {
		if vertices[i].Dim() != dim {
			return nil, fmt.Errorf("vertex %d: %w", i, ErrDimensionMismatch)
		}
	}
	rank := dim + 1
	if rank < 3 {
		return nil, fmt.Errorf("rank %d: %w", rank, ErrRankTooLow)
	}

	vm, err := resolveSymmetry(vertices, sym)
	if err != nil {
		return nil, err
	}
	if err := vm.Validate(n); err != nil {
		return nil, err
	}
	opts.report(StageSymmetry, len(vm), 0)

	vertexOrbits := orbit.Vertices(n, vm)
	pairOrbits, err := orbit.Pairs(n, vm, vertexOrbits, vertices, opts.EdgeLength)
	if err != nil {
		return nil, err
	}

	// At the top the ambient coordinates are already the level's own.
	hps, totalHPs, err := enumerateHyperplanes(rank, vertices, vertices, pairOrbits, vm, opts.EdgeLength)
	if err != nil {
		return nil, err
	}
	opts.report(StageHyperplanes, len(hps), totalHPs)

	cands, subSizes, templates, err := facetHyperplanes(ctx, rank, vertices, hps, vm, opts)
	if err != nil {
		return nil, err
	}

	rr, ridgeIndex := buildRidgeIndex(templates, hpVertexLists(hps), vm)

	var results []Result
	eng := &searchEngine{
		cands:        cands,
		orbitSizes:   orbitSizes(hps),
		subSizes:     subSizes,
		ridgeOrbitOf: ridgeIndex,
		ridgeSizes:   rr.sizes,
		maxFacets:    opts.MaxFacets,
		irc:          opts.IncrementalExtension,
		check:        ctx.Err,
	}
	eng.onValid = func(stack []frame) error {
		ranks := assembleRanks(rank, n, stack, cands, vm)

		b := abs.NewBuilder()
		for _, list := range ranks {
			b.PushRank()
			for _, el := range list {
				b.PushSubs(el.Subs)
			}
		}
		final, err := b.FinalizeOrReject()
		if errors.Is(err, abs.ErrNotDyadic) {
			return nil // pseudo-faceting, coverage matched by accident
		}
		if err != nil {
			return err
		}

		res := Result{
			Ranks:      final,
			Vertices:   clonePoints(vertices),
			FacetTypes: make([]FacetRef, len(stack)),
		}
		for i, f := range stack {
			res.FacetTypes[i] = FacetRef{Orbit: f.orbit, Facet: f.facet}
		}
		if opts.Untangler != nil {
			opts.Untangler(&res)
		}
		results = append(results, res)
		opts.report(StageCombining, len(results), 0)

		return nil
	}
	if err := eng.run(); err != nil {
		return nil, err
	}

	return results, nil
}

// resolveSymmetry obtains the vertex-permutation table for the requested
// symmetry selector.
func resolveSymmetry(vertices []geom.Point, sym Symmetry) (orbit.VertexMap, error) {
	switch sym.kind {
	case symExplicit:
		return sym.vm, nil
	case symFull:
		if sym.src == nil {
			return nil, ErrNilGroupSource
		}

		return sym.src.FullGroup(vertices)
	case symRotation:
		if sym.src == nil {
			return nil, ErrNilGroupSource
		}

		return sym.src.RotationGroup(vertices)
	}

	return nil, fmt.Errorf("symmetry kind %d: %w", sym.kind, ErrInternal)
}

// facetHyperplanes sub-facets every hyperplane orbit concurrently. The
// orbits are independent read-only subproblems, so a goroutine per orbit
// writing its own result slot is safe; recursion below stays sequential.
func facetHyperplanes(ctx context.Context, rank int, vertices []geom.Point, hps []hyperplaneOrbit, vm orbit.VertexMap, opts Options) ([][]facetCandidate, [][]int, [][][]abs.Ranks, error) {
	cands := make([][]facetCandidate, len(hps))
	subSizes := make([][]int, len(hps))
	templates := make([][][]abs.Ranks, len(hps))

	opts.report(StageSubfaceting, 0, len(hps))

	g, gctx := errgroup.WithContext(ctx)
	for h := range hps {
		h := h
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return subFacetOne(rank, vertices, hps, h, vm, opts.EdgeLength, opts.IncrementalExtension, cands, subSizes, templates)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}

	opts.report(StageSubfaceting, len(hps), len(hps))

	return cands, subSizes, templates, nil
}

func clonePoints(ps []geom.Point) []geom.Point {
	out := make([]geom.Point, len(ps))
	for i, p := range ps {
		out[i] = p.Clone()
	}

	return out
}
