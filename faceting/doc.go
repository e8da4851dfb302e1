// Package faceting enumerates all combinatorially valid facetings of a
// convex polytope: given its vertex coordinates and a vertex-permutation
// table (or a source for one), it finds every way to choose facets from
// among hyperplane cross-sections of the vertex set such that the chosen
// facets tile the boundary of a valid abstract polytope, with every ridge
// shared by exactly two facets.
//
// Pipeline (leaves first):
//
//  1. Orbit decomposition of vertices and pairs (package orbit).
//  2. Hyperplane enumeration: pairs are extended to minimal point tuples
//     spanning a hyperplane, deduplicated by incident-vertex membership,
//     grouped into orbits under the vertex map.
//  3. Recursive sub-faceting: each hyperplane orbit is solved one rank
//     down on its own point set and stabilizer group, bottoming out at
//     the dyad; its facetings become candidate facets, and one level
//     further down, candidate ridges.
//  4. Ridge orbit registry: ridges are canonicalized and deduplicated
//     across the whole orbit of the vertex map, recording orbit sizes.
//  5. Combination search: an explicit backtracking stack over
//     non-decreasing multisets of (hyperplane orbit, facet) pairs, with
//     orbit-counting arithmetic deciding ridge coverage without ever
//     materializing full orbits.
//  6. Assembly: accepted combinations are expanded under the vertex map,
//     deduplicated, built bottom-up into a full incidence structure and
//     validated for the dyadic property.
//
// The whole computation is owned by a single Enumerate call; nothing is
// shared or persisted between calls. Sub-faceting of independent
// hyperplane orbits at the top level runs concurrently; everything below
// is sequential and depth-bounded by the polytope rank.
//
// Use Enumerate for the entry point; see package shapes for ready-made
// vertex sets and symmetry tables.
package faceting
