// SPDX-License-Identifier: MIT
// Package: polyfacet/abs
//
// sort.go — strong structural sort.
//
// Canonical model:
//   • Vertices keep their (global) numbering; everything above is sorted
//     rank by rank so that the result is invariant under any relabeling of
//     same-rank siblings.
//   • At each rank the element subs are sorted ascending, the elements are
//     ordered lexicographically by subs, and the rank above is remapped
//     through the induced permutation before it is sorted itself.

package abs

import "sort"

// ElementSortStrong canonicalizes r in place. Two structures that differ
// only by a consistent renumbering of elements at ranks 2 and above end up
// byte-identical (compare with Key). Rank lists below index 2 are left
// untouched; ridge templates with empty leading lists are handled.
func (r Ranks) ElementSortStrong() {
	var i, j, k int
	for i = 2; i < len(r); i++ {
		els := r[i]
		for j = range els {
			sort.Ints(els[j].Subs)
		}

		// Order elements lexicographically by their sorted subs.
		order := make([]int, len(els))
		for j = range order {
			order[j] = j
		}
		sort.SliceStable(order, func(a, b int) bool {
			return lessIntSlice(els[order[a]].Subs, els[order[b]].Subs)
		})

		sorted := make(ElementList, len(els))
		inv := make([]int, len(els))
		for newIdx, old := range order {
			sorted[newIdx] = els[old]
			inv[old] = newIdx
		}
		r[i] = sorted

		// Remap the rank above through the induced permutation.
		if i+1 < len(r) {
			for j = range r[i+1] {
				subs := r[i+1][j].Subs
				for k = range subs {
					subs[k] = inv[subs[k]]
				}
			}
		}
	}
}

// lessIntSlice compares int slices lexicographically, shorter first on ties.
func lessIntSlice(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
