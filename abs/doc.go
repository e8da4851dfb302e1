// SPDX-License-Identifier: MIT
// Package abs defines rank-indexed incidence structures for abstract
// polytopes and the builder that validates them.
//
// A Ranks value holds one ElementList per rank, from the nullitope at
// index 0 up to the body at the last index; an Element is identified by
// its set of subelement indices one rank down. Superelement sets are
// optional and only wired during finalization.
//
// The dyadic (diamond) property is the structural correctness criterion
// for a faceting: in every section of height two, the middle rank holds
// exactly two elements. In particular every ridge is shared by exactly
// two facets and every edge has exactly two vertices.
//
// Builder deliberately allows temporarily invalid intermediate states:
// ranks are pushed one at a time with no checking, and a single explicit
// FinalizeOrReject call decides whether the assembled structure is a
// valid abstract polytope.
package abs
