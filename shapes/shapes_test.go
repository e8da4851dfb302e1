// SPDX-License-Identifier: MIT
// Package: polyfacet/shapes
//
// shapes_test.go — constructor domain checks, group sizes, and table
// validity.

package shapes_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polyfacet/geom"
	"github.com/katalvlaran/polyfacet/orbit"
	"github.com/katalvlaran/polyfacet/shapes"
)

// distinctRows counts distinct permutation rows.
func distinctRows(vm orbit.VertexMap) int {
	seen := make(map[string]bool)
	for _, row := range vm {
		seen[fmt.Sprint(row)] = true
	}

	return len(seen)
}

func TestPolygon_Domain(t *testing.T) {
	_, _, err := shapes.Polygon(2)
	assert.ErrorIs(t, err, shapes.ErrBadParameter)
}

func TestPolygon_Square(t *testing.T) {
	pts, vm, err := shapes.Polygon(4)
	require.NoError(t, err)
	require.Len(t, pts, 4)
	require.Len(t, vm, 8)
	require.NoError(t, vm.Validate(4))
	assert.Equal(t, 8, distinctRows(vm))

	// Circumradius 1 for every vertex.
	for _, p := range pts {
		assert.InDelta(t, 1.0, p.Norm(), geom.Eps)
	}
}

func TestSimplex_EquilateralEdges(t *testing.T) {
	pts, vm, err := shapes.Simplex(3)
	require.NoError(t, err)
	require.Len(t, pts, 4)
	require.Len(t, vm, 24)
	require.NoError(t, vm.Validate(4))

	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			assert.InDelta(t, math.Sqrt2, geom.Distance(pts[i], pts[j]), 1e-9)
		}
	}
}

func TestHypercube_GroupOrder(t *testing.T) {
	pts, vm, err := shapes.Hypercube(3)
	require.NoError(t, err)
	require.Len(t, pts, 8)
	require.Len(t, vm, 48) // 2^3 · 3!
	require.NoError(t, vm.Validate(8))
	assert.Equal(t, 48, distinctRows(vm))
}

func TestOrthoplex_GroupOrder(t *testing.T) {
	pts, vm, err := shapes.Orthoplex(3)
	require.NoError(t, err)
	require.Len(t, pts, 6)
	require.Len(t, vm, 48)
	require.NoError(t, vm.Validate(6))
}

func TestShapes_DimensionDomain(t *testing.T) {
	for name, call := range map[string]func() error{
		"simplex": func() error { _, _, err := shapes.Simplex(0); return err },
		"hypercube": func() error { _, _, err := shapes.Hypercube(0); return err },
		"orthoplex": func() error { _, _, err := shapes.Orthoplex(0); return err },
	} {
		assert.ErrorIs(t, call(), shapes.ErrBadParameter, name)
	}
}
