// SPDX-License-Identifier: MIT
// Package geom provides the small geometric kernel used by the faceting
// pipeline: real-coordinate points with an epsilon-tolerant total order,
// and affine subspaces built from point sets.
//
// All geometric comparisons in polyfacet share the single tolerance
// constant Eps. There is no retry or recovery policy for near-degenerate
// configurations: a comparison either passes the tolerance or it does not.
//
// Subspace supports exactly the operations the faceting core consumes:
//
//	FromPoints    — build the affine hull of a point set
//	IsHyperplane  — corank 1 in the ambient space
//	Distance      — unsigned distance from a point to the flat
//	Flatten       — coordinates of a point in the flat's local frame
//
// Flatten uses an orthonormal basis, so distances between points lying in
// the subspace are preserved by flattening.
package geom
