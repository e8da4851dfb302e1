// SPDX-License-Identifier: MIT
// Package: polyfacet/shapes
//
// Package shapes builds the vertex sets and full symmetry tables of
// standard polytopes: regular polygons, simplices, hypercubes, and
// orthoplexes.
//
// Canonical model:
//   - Each constructor returns deterministic coordinates plus the vertex
//     permutation table of the shape's full symmetry group, ready to feed
//     into faceting.Enumerate via faceting.WithVertexMap.
//   - Row 0 of every returned table is the identity; tables are complete
//     groups, not generating sets.
//
// Determinism:
//   - Vertex orders and group row orders are fixed: rotations before
//     reflections for polygons, lexicographic permutations for simplices,
//     lexicographic axis permutation then ascending sign mask for the
//     hyperoctahedral tables.
package shapes
