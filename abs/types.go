// SPDX-License-Identifier: MIT
// Package: polyfacet/abs
//
// types.go — Element, ElementList, Ranks and sentinel errors.

package abs

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for incidence-structure operations.
var (
	// ErrNotDyadic indicates a finalized structure violates the diamond
	// property (some height-2 section does not hold exactly two middle
	// elements).
	ErrNotDyadic = errors.New("abs: structure is not dyadic")

	// ErrElementIndex indicates a subelement index outside the rank below.
	// This is an internal programming error, never an input condition.
	ErrElementIndex = errors.New("abs: subelement index out of range")

	// ErrRankShape indicates a malformed rank sequence (missing nullitope,
	// empty rank, or fewer than two ranks).
	ErrRankShape = errors.New("abs: malformed rank structure")
)

// Element is one face of an abstract polytope at a given rank. Subs holds
// indices into the rank immediately below; Sups (indices into the rank
// above) stays empty during search and is wired by Builder.FinalizeOrReject.
type Element struct {
	Subs []int
	Sups []int
}

// ElementList is the ordered list of elements at one rank.
type ElementList []Element

// Ranks is a full incidence structure: one ElementList per rank, index 0
// being the nullitope and the last index the body. Partial structures
// (empty lists, missing ranks) are legal during search; only Builder
// enforces shape.
type Ranks []ElementList

// Rank returns the top rank of the structure: the nullitope sits at rank
// -1, so a dyad (three lists) has rank 2.
func (r Ranks) Rank() int { return len(r) - 1 }

// Dyad returns the rank-2 segment: nullitope, two vertices, one edge.
func Dyad() Ranks {
	return Ranks{
		ElementList{{}},
		ElementList{{Subs: []int{0}}, {Subs: []int{0}}},
		ElementList{{Subs: []int{0, 1}}},
	}
}

// Clone returns a deep copy of r (Subs and Sups included).
func (r Ranks) Clone() Ranks {
	out := make(Ranks, len(r))
	for i, rank := range r {
		out[i] = make(ElementList, len(rank))
		for j, el := range rank {
			out[i][j] = Element{
				Subs: append([]int(nil), el.Subs...),
				Sups: append([]int(nil), el.Sups...),
			}
		}
	}

	return out
}

// RelabelVertices rewrites the vertex references of the rank-2 elements
// through the mapping row (row[old] = new). Rank 2 is the lowest rank whose
// subelement indices denote vertices, so this is the only list a vertex
// permutation touches. Structures shorter than three ranks are left as is.
func (r Ranks) RelabelVertices(row []int) {
	if len(r) < 3 {
		return
	}
	for j := range r[2] {
		subs := r[2][j].Subs
		for k := range subs {
			subs[k] = row[subs[k]]
		}
	}
}

// Key returns a hashable encoding of the structure's subelement sets.
// Callers canonicalize with ElementSortStrong first, so two structures
// related by same-rank relabeling share a key.
func (r Ranks) Key() string {
	var sb strings.Builder
	for _, rank := range r {
		sb.WriteByte('|')
		for _, el := range rank {
			for i, s := range el.Subs {
				if i > 0 {
					sb.WriteByte(',')
				}
				sb.WriteString(strconv.Itoa(s))
			}
			sb.WriteByte(';')
		}
	}

	return sb.String()
}
