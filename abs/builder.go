// SPDX-License-Identifier: MIT
// Package: polyfacet/abs
//
// builder.go — rank-by-rank incidence builder with explicit finalization.
//
// Contract:
//   • PushRank opens a new (empty) rank; PushSubs appends an element to the
//     current rank. Neither validates anything.
//   • FinalizeOrReject performs all validation in one place: shape checks,
//     subelement index bounds, superelement wiring, and the dyadic
//     (diamond) test. On success it returns the finished Ranks with Sups
//     populated; the builder must not be reused afterwards.
//
// Rationale: the combination search produces candidates whose coverage
// arithmetic is a necessary but not always sufficient validity test, so
// construction has to tolerate invalid intermediate states and reject only
// at the very end.

package abs

import "fmt"

// Builder accumulates an incidence structure rank by rank.
type Builder struct {
	ranks Ranks
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{} }

// PushRank opens a new empty rank.
func (b *Builder) PushRank() {
	b.ranks = append(b.ranks, ElementList{})
}

// PushSubs appends an element with the given subelement set to the current
// rank. The slice is copied.
func (b *Builder) PushSubs(subs []int) {
	top := len(b.ranks) - 1
	b.ranks[top] = append(b.ranks[top], Element{Subs: append([]int(nil), subs...)})
}

// FinalizeOrReject validates the accumulated structure and returns it with
// superelements wired. It returns ErrRankShape for malformed rank
// sequences, ErrElementIndex for out-of-range subelement references
// (an internal bug, not an input condition) and ErrNotDyadic when some
// height-2 section does not hold exactly two middle elements.
func (b *Builder) FinalizeOrReject() (Ranks, error) {
	r := b.ranks
	if len(r) < 2 {
		return nil, fmt.Errorf("finalize: %d ranks: %w", len(r), ErrRankShape)
	}
	if len(r[0]) != 1 || len(r[0][0].Subs) != 0 {
		return nil, fmt.Errorf("finalize: bad nullitope: %w", ErrRankShape)
	}
	var i, j int
	for i = range r {
		if len(r[i]) == 0 {
			return nil, fmt.Errorf("finalize: empty rank %d: %w", i-1, ErrRankShape)
		}
	}

	// Wire superelements, bounds-checking every reference.
	for i = 1; i < len(r); i++ {
		for j = range r[i] {
			for _, s := range r[i][j].Subs {
				if s < 0 || s >= len(r[i-1]) {
					return nil, fmt.Errorf("finalize: rank %d element %d sub %d: %w", i-1, j, s, ErrElementIndex)
				}
				r[i-1][s].Sups = append(r[i-1][s].Sups, j)
			}
		}
	}

	// Diamond test over every height-2 section: for each element t two
	// ranks up, every sub-of-sub must be reached through exactly two
	// middle elements.
	count := make(map[int]int)
	for i = 0; i+2 < len(r); i++ {
		for j = range r[i+2] {
			clear(count)
			for _, m := range r[i+2][j].Subs {
				for _, s := range r[i+1][m].Subs {
					count[s]++
				}
			}
			for _, c := range count {
				if c != 2 {
					return nil, fmt.Errorf("finalize: section at rank %d: %w", i, ErrNotDyadic)
				}
			}
		}
	}

	return r, nil
}
