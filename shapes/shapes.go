// SPDX-License-Identifier: MIT
// Package: polyfacet/shapes
//
// shapes.go — constructors of standard vertex sets with full symmetry
// tables.
//
// Contract:
//   - Polygon needs n ≥ 3, the others d ≥ 1; violations surface as
//     ErrBadParameter, never panics.
//   - Returned slices are fresh on every call; callers may mutate them.
//
// Complexity:
//   - Polygon: O(n²). Simplex: O((d+1)!·d). Hypercube/Orthoplex:
//     O(d!·2^d·V·d) for V vertices — intended for the small d of tests
//     and examples.

package shapes

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/polyfacet/geom"
	"github.com/katalvlaran/polyfacet/orbit"
)

// ErrBadParameter indicates a size parameter outside the constructor's
// domain.
var ErrBadParameter = errors.New("shapes: parameter out of range")

// Polygon returns the unit-circumradius regular n-gon and its dihedral
// group of order 2n.
func Polygon(n int) ([]geom.Point, orbit.VertexMap, error) {
	if n < 3 {
		return nil, nil, fmt.Errorf("polygon with %d vertices: %w", n, ErrBadParameter)
	}

	pts := make([]geom.Point, n)
	for k := 0; k < n; k++ {
		a := 2 * math.Pi * float64(k) / float64(n)
		pts[k] = geom.Point{math.Cos(a), math.Sin(a)}
	}

	vm := make(orbit.VertexMap, 0, 2*n)
	for j := 0; j < n; j++ { // rotations, j=0 is the identity
		row := make([]int, n)
		for v := 0; v < n; v++ {
			row[v] = (v + j) % n
		}
		vm = append(vm, row)
	}
	for j := 0; j < n; j++ { // reflections
		row := make([]int, n)
		for v := 0; v < n; v++ {
			row[v] = ((j-v)%n + n) % n
		}
		vm = append(vm, row)
	}

	return pts, vm, nil
}

// Simplex returns a regular d-simplex and the symmetric group on its d+1
// vertices. Coordinates come from flattening the standard-basis embedding
// in d+1 dimensions through its own span, so all edges have length √2.
func Simplex(d int) ([]geom.Point, orbit.VertexMap, error) {
	if d < 1 {
		return nil, nil, fmt.Errorf("simplex of dimension %d: %w", d, ErrBadParameter)
	}

	embedded := make([]geom.Point, d+1)
	for i := range embedded {
		p := make(geom.Point, d+1)
		p[i] = 1
		embedded[i] = p
	}
	span, err := geom.FromPoints(embedded)
	if err != nil {
		return nil, nil, err
	}
	pts := make([]geom.Point, d+1)
	for i, p := range embedded {
		pts[i] = span.Flatten(p)
	}

	return pts, permutations(d + 1), nil
}

// Hypercube returns the ±1 d-cube and the hyperoctahedral group acting
// on its 2^d vertices.
func Hypercube(d int) ([]geom.Point, orbit.VertexMap, error) {
	if d < 1 {
		return nil, nil, fmt.Errorf("hypercube of dimension %d: %w", d, ErrBadParameter)
	}

	pts := make([]geom.Point, 0, 1<<d)
	for mask := 0; mask < 1<<d; mask++ {
		p := make(geom.Point, d)
		for i := 0; i < d; i++ {
			if mask&(1<<i) != 0 {
				p[i] = 1
			} else {
				p[i] = -1
			}
		}
		pts = append(pts, p)
	}

	vm, err := signedPermutationMap(pts, d)
	if err != nil {
		return nil, nil, err
	}

	return pts, vm, nil
}

// Orthoplex returns the d-orthoplex (±e_i vertices) and the
// hyperoctahedral group acting on its 2d vertices.
func Orthoplex(d int) ([]geom.Point, orbit.VertexMap, error) {
	if d < 1 {
		return nil, nil, fmt.Errorf("orthoplex of dimension %d: %w", d, ErrBadParameter)
	}

	pts := make([]geom.Point, 0, 2*d)
	for i := 0; i < d; i++ {
		plus := make(geom.Point, d)
		plus[i] = 1
		minus := make(geom.Point, d)
		minus[i] = -1
		pts = append(pts, plus, minus)
	}

	vm, err := signedPermutationMap(pts, d)
	if err != nil {
		return nil, nil, err
	}

	return pts, vm, nil
}

// signedPermutationMap builds the vertex table of the hyperoctahedral
// group: every axis permutation combined with every sign flip, applied to
// the given vertex set. The identity lands in row 0 because the identity
// permutation sorts first and mask 0 flips nothing.
func signedPermutationMap(pts []geom.Point, d int) (orbit.VertexMap, error) {
	index := make(map[string]int, len(pts))
	for i, p := range pts {
		index[geom.NewPointOrd(p).Key()] = i
	}

	var vm orbit.VertexMap
	q := make(geom.Point, d)
	for _, perm := range permutations(d) {
		for mask := 0; mask < 1<<d; mask++ {
			row := make([]int, len(pts))
			for v, p := range pts {
				for i := 0; i < d; i++ {
					q[i] = p[perm[i]]
					if mask&(1<<i) != 0 {
						q[i] = -q[i]
					}
				}
				target, ok := index[geom.NewPointOrd(q).Key()]
				if !ok {
					return nil, fmt.Errorf("vertex %d has no image under the group: %w", v, ErrBadParameter)
				}
				row[v] = target
			}
			vm = append(vm, row)
		}
	}

	return vm, nil
}

// permutations lists all permutations of 0..n-1 in lexicographic order;
// the ascending inner loop makes the identity first.
func permutations(n int) [][]int {
	var out [][]int
	used := make([]bool, n)
	buf := make([]int, n)
	var rec func(k int)
	rec = func(k int) {
		if k == n {
			out = append(out, append([]int(nil), buf...))

			return
		}
		for v := 0; v < n; v++ {
			if !used[v] {
				used[v] = true
				buf[k] = v
				rec(k + 1)
				used[v] = false
			}
		}
	}
	rec(0)

	return out
}
