// SPDX-License-Identifier: MIT
// Package: polyfacet/geom
//
// point.go — Point vector primitives and the PointOrd total-order adapter.

package geom

import (
	"math"
	"strconv"
	"strings"
)

// Eps is the global tolerance shared by every geometric comparison in
// polyfacet: coordinate ordering, subspace membership, basis acceptance
// and edge-length filters.
const Eps = 1e-9

// Point is a vector of real coordinates. The faceting pipeline treats the
// coordinate count as the ambient dimension; a polytope of rank r has
// vertices of dimension r-1.
type Point []float64

// Dim returns the number of coordinates.
func (p Point) Dim() int { return len(p) }

// Clone returns an independent copy of p.
func (p Point) Clone() Point {
	out := make(Point, len(p))
	copy(out, p)

	return out
}

// Sub returns p - q. Panics if dimensions differ (programming error).
func (p Point) Sub(q Point) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}

	return out
}

// Dot returns the inner product of p and q.
func (p Point) Dot(q Point) float64 {
	var s float64
	for i := range p {
		s += p[i] * q[i]
	}

	return s
}

// Scale returns p multiplied by k.
func (p Point) Scale(k float64) Point {
	out := make(Point, len(p))
	for i := range p {
		out[i] = p[i] * k
	}

	return out
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 { return math.Sqrt(p.Dot(p)) }

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 { return p.Sub(q).Norm() }

// PointOrd wraps a Point in a total order so points can serve as set and
// map keys despite floating-point storage. Ordering is lexicographic over
// coordinates with the Eps tie tolerance; hashing quantizes coordinates to
// the Eps grid, so points further apart than Eps never collide.
type PointOrd struct {
	P Point
}

// NewPointOrd wraps p without copying.
func NewPointOrd(p Point) PointOrd { return PointOrd{P: p} }

// Cmp compares a and b lexicographically with the Eps tolerance.
// Coordinates closer than Eps compare equal; fewer dimensions sort first.
func (a PointOrd) Cmp(b PointOrd) int {
	n := len(a.P)
	if len(b.P) < n {
		n = len(b.P)
	}
	for i := 0; i < n; i++ {
		d := a.P[i] - b.P[i]
		if d < -Eps {
			return -1
		}
		if d > Eps {
			return 1
		}
	}
	switch {
	case len(a.P) < len(b.P):
		return -1
	case len(a.P) > len(b.P):
		return 1
	}

	return 0
}

// Key returns a hashable representation of the point, quantized to the
// Eps grid. Two points whose coordinates all agree to well within Eps map
// to the same key.
func (a PointOrd) Key() string {
	var sb strings.Builder
	for i, c := range a.P {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatInt(int64(math.Round(c/Eps)), 10))
	}

	return sb.String()
}
