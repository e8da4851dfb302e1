// Package orbit decomposes vertices and vertex pairs into orbits under a
// vertex map: the table of permutations describing how a symmetry group
// (or an arbitrary equivalence) acts on the vertex set.
//
// The decomposition never needs group closure; it applies every supplied
// row to each unvisited representative. The caller must therefore supply
// the full group table, not a minimal generating set, or orbit results
// will be incomplete. Row 0 is the identity by convention and Validate
// enforces it.
//
// Pair orbits optionally honor a fixed edge length: pairs whose geometric
// distance from the representative differs from it by more than geom.Eps
// never form an orbit.
//
// Complexity: O(N·R) for vertex orbits, O(N²·R) worst case for pair
// orbits, with N vertices and R rows.
package orbit
