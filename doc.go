// Package polyfacet enumerates the combinatorially valid facetings of a
// convex polytope: every way to pick lower-dimensional facets from among
// the hyperplane cross-sections of its vertex set so that the chosen
// facets tile the boundary of a valid abstract polytope.
//
// What is polyfacet?
//
//	A pure-Go library combining:
//		• Orbit decomposition of vertices and vertex pairs under a
//		  symmetry (or arbitrary) vertex-permutation group
//		• Hyperplane enumeration from point sets, deduplicated by
//		  vertex membership and grouped into orbits
//		• A recursive one-rank-down faceting reduction that bottoms
//		  out at the dyad
//		• A backtracking multiset search with orbit-counting pruning,
//		  so valid facet combinations are found without ever
//		  materializing full symmetry orbits
//
// Everything is organized under five subpackages:
//
//	geom/     — points with an epsilon total order, affine subspaces
//	abs/      — rank-indexed incidence structures and the dyadic builder
//	orbit/    — vertex and pair orbit decomposition under a vertex map
//	faceting/ — the enumeration pipeline and its public entry point
//	shapes/   — canonical polytopes with their full symmetry vertex maps
//
// Quick ASCII example:
//
//	    0───1          faceting a square under its full symmetry
//	    │   │          returns the square itself: each vertex (ridge)
//	    3───2          is shared by exactly two edges (facets).
//
// See faceting.Enumerate for the entry point and shapes for ready-made
// inputs.
//
//	go get github.com/katalvlaran/polyfacet
package polyfacet
