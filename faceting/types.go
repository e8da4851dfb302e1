// types.go — options, symmetry selectors, results, and sentinel errors.

package faceting

import (
	"errors"

	"github.com/katalvlaran/polyfacet/abs"
	"github.com/katalvlaran/polyfacet/geom"
	"github.com/katalvlaran/polyfacet/orbit"
)

// Sentinel errors for the faceting entry point.
var (
	// ErrNoVertices indicates an empty vertex set.
	ErrNoVertices = errors.New("faceting: no vertices")

	// ErrDimensionMismatch indicates vertices of differing dimensions.
	ErrDimensionMismatch = errors.New("faceting: vertices of differing dimensions")

	// ErrRankTooLow indicates an ambient rank below 3; facetings of points
	// and dyads are trivial and not enumerated at top level.
	ErrRankTooLow = errors.New("faceting: ambient rank below 3")

	// ErrNilGroupSource indicates a group request without a GroupSource.
	ErrNilGroupSource = errors.New("faceting: symmetry request needs a GroupSource")

	// ErrInternal indicates inconsistent orbit bookkeeping, a programming
	// error that aborts the computation rather than produce silent output.
	ErrInternal = errors.New("faceting: internal invariant violation")
)

// GroupSource derives vertex-permutation tables from vertex coordinates.
// The group computation itself is an external collaborator; the core only
// consumes the resulting table.
type GroupSource interface {
	// FullGroup returns the table of the full symmetry group.
	FullGroup(vertices []geom.Point) (orbit.VertexMap, error)

	// RotationGroup returns the table of the orientation-preserving
	// subgroup.
	RotationGroup(vertices []geom.Point) (orbit.VertexMap, error)
}

// symmetryKind selects how the vertex map is obtained.
type symmetryKind int

const (
	symExplicit symmetryKind = iota
	symFull
	symRotation
)

// Symmetry selects the vertex map for an enumeration: either an explicit
// table, or a request routed to a GroupSource.
type Symmetry struct {
	kind symmetryKind
	vm   orbit.VertexMap
	src  GroupSource
}

// WithVertexMap uses an explicit permutation table. The table must be the
// full group (not a generating set), with the identity as row 0.
func WithVertexMap(vm orbit.VertexMap) Symmetry {
	return Symmetry{kind: symExplicit, vm: vm}
}

// WithFullGroup requests the full symmetry group from src.
func WithFullGroup(src GroupSource) Symmetry {
	return Symmetry{kind: symFull, src: src}
}

// WithRotationGroup requests the rotation (orientation-preserving)
// subgroup from src.
func WithRotationGroup(src GroupSource) Symmetry {
	return Symmetry{kind: symRotation, src: src}
}

// Stage identifies a pipeline phase in progress reports.
type Stage string

const (
	// StageSymmetry reports the resolved vertex map (done = row count).
	StageSymmetry Stage = "symmetry"
	// StageHyperplanes reports hyperplane enumeration (done = orbits,
	// total = distinct hyperplanes).
	StageHyperplanes Stage = "hyperplanes"
	// StageSubfaceting reports per-orbit sub-faceting (done/total orbits).
	StageSubfaceting Stage = "subfaceting"
	// StageCombining reports each accepted faceting (done = found so far).
	StageCombining Stage = "combining"
)

// FacetRef names one chosen facet type: a hyperplane orbit and an index
// into that orbit's candidate facet list.
type FacetRef struct {
	Orbit int
	Facet int
}

// Result is one enumerated faceting: a validated incidence structure
// paired with the original vertex coordinates and the facet types that
// produced it.
type Result struct {
	// Ranks is the finalized incidence structure (dyadic, sups wired).
	Ranks abs.Ranks

	// Vertices are the polytope's vertex coordinates, copied per result.
	Vertices []geom.Point

	// FacetTypes records the accepted combination, one entry per chosen
	// (hyperplane orbit, facet) pair.
	FacetTypes []FacetRef
}

// Options configures an enumeration.
//
// Fields:
//   - EdgeLength           — if non-nil, only facets whose edges all have
//     this length are considered (within geom.Eps).
//   - MaxFacets            — cap on chosen facet types per faceting (the
//     "noble" constraint); 0 means unlimited. The cap is applied
//     uniformly: a full stack is never extended, whether the current
//     combination is valid or merely incomplete.
//   - IncrementalExtension — after accepting a valid combination, extend
//     it further instead of advancing, discovering larger facetings that
//     share a prefix with an accepted one.
//   - Untangler            — optional post-processing hook invoked once
//     per accepted faceting (e.g. resolving self-intersections for
//     display). Errors from it are out of scope; it may mutate the Result.
//   - Progress             — optional side channel for stage reporting.
//     Called from the coordinating goroutine only.
type Options struct {
	EdgeLength           *float64
	MaxFacets            int
	IncrementalExtension bool
	Untangler            func(*Result)
	Progress             func(stage Stage, done, total int)
}

// DefaultOptions returns the zero configuration: no edge-length filter, no
// facet cap, no incremental extension.
func DefaultOptions() Options { return Options{} }

// report emits a progress event if a callback is configured.
func (o *Options) report(stage Stage, done, total int) {
	if o.Progress != nil {
		o.Progress(stage, done, total)
	}
}
