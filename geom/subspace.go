// SPDX-License-Identifier: MIT
// Package: polyfacet/geom
//
// subspace.go — affine flats built from point sets.
//
// Canonical model:
//   • A Subspace is an affine flat: an origin plus an orthonormal basis of
//     its direction space, obtained by Gram-Schmidt over the input points.
//   • Basis vectors whose residual norm does not exceed Eps are dropped, so
//     the dimension of the flat is detected under the global tolerance.
//
// Contract:
//   • FromPoints requires at least one point; ErrNoPoints otherwise.
//   • All points must share one dimension; ErrDimensionMismatch otherwise.
//   • Distance/Flatten accept any point of the ambient dimension.
//
// Complexity:
//   • FromPoints: O(k·d²) for k points in dimension d.
//   • Distance/Flatten: O(d²).

package geom

import "errors"

// Sentinel errors for subspace construction.
var (
	// ErrNoPoints indicates FromPoints was called with an empty point set.
	ErrNoPoints = errors.New("geom: subspace needs at least one point")

	// ErrDimensionMismatch indicates input points of differing dimensions.
	ErrDimensionMismatch = errors.New("geom: points of differing dimensions")
)

// Subspace is an affine flat in ambient space.
//
// The zero value is an empty flat of ambient dimension 0; it is only
// useful as a placeholder (the rank-2 faceting base case never reads it).
type Subspace struct {
	origin Point
	basis  []Point // orthonormal direction vectors
}

// FromPoints builds the affine hull of the given points. The first point
// becomes the origin; remaining points contribute basis vectors whenever
// their component orthogonal to the current basis exceeds Eps.
func FromPoints(points []Point) (Subspace, error) {
	if len(points) == 0 {
		return Subspace{}, ErrNoPoints
	}
	dim := points[0].Dim()

	var s Subspace
	s.origin = points[0].Clone()

	var v Point
	for _, p := range points[1:] {
		if p.Dim() != dim {
			return Subspace{}, ErrDimensionMismatch
		}
		v = p.Sub(s.origin)
		for _, b := range s.basis {
			v = v.Sub(b.Scale(v.Dot(b)))
		}
		if n := v.Norm(); n > Eps {
			s.basis = append(s.basis, v.Scale(1/n))
		}
		if len(s.basis) == dim {
			break // already spans the ambient space
		}
	}

	return s, nil
}

// Dim returns the dimension of the flat.
func (s *Subspace) Dim() int { return len(s.basis) }

// AmbientDim returns the dimension of the surrounding space.
func (s *Subspace) AmbientDim() int { return len(s.origin) }

// IsHyperplane reports whether the flat has corank exactly 1 in the
// ambient space.
func (s *Subspace) IsHyperplane() bool { return len(s.basis) == len(s.origin)-1 }

// Distance returns the unsigned distance from p to the flat: the norm of
// the component of p-origin orthogonal to the basis.
func (s *Subspace) Distance(p Point) float64 {
	v := p.Sub(s.origin)
	for _, b := range s.basis {
		v = v.Sub(b.Scale(v.Dot(b)))
	}

	return v.Norm()
}

// Flatten returns the coordinates of p in the flat's local orthonormal
// frame. The result has Dim() coordinates; any component of p orthogonal
// to the flat is discarded.
func (s *Subspace) Flatten(p Point) Point {
	v := p.Sub(s.origin)
	out := make(Point, len(s.basis))
	for i, b := range s.basis {
		out[i] = v.Dot(b)
	}

	return out
}
