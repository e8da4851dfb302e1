// search.go — backtracking search over facet-orbit combinations.
//
// Description:
//
//	A faceting is a multiset of (hyperplane orbit, candidate index) picks
//	whose ridges pair up exactly. The engine walks candidate multisets
//	with an explicit stack: frames carry strictly increasing orbit
//	indices, and each step classifies the current stack by per-ridge-
//	orbit coverage counts.
//
// Contract:
//   - coverage 0 or 2 on every ridge orbit → valid, reported via onValid;
//   - any coverage above 2 → exotic, the branch is abandoned;
//   - some coverage equal to 1 → incomplete, the stack is extended.
//
// Rationale:
//   - Orbit-counting arithmetic replaces per-ridge bookkeeping: a pick
//     from orbit h contributes f_h·g_a/t_ro copies to ridge orbit ro,
//     where f_h is the hyperplane orbit size, g_a the sub-orbit size and
//     t_ro the global ridge orbit size. The quotient must divide evenly;
//     a remainder means the orbit bookkeeping upstream is broken.
//
// Complexity: output-sensitive; the coverage classifier is O(stack ·
// ridge refs) per step and exotic branches are cut at first overflow.

package faceting

import "fmt"

// errRidgeArithmetic wraps ErrInternal with the offending ridge reference.
func errRidgeArithmetic(hp, orbit, index int) error {
	return fmt.Errorf("%w: ridge orbit size does not divide coverage at (%d,%d,%d)", ErrInternal, hp, orbit, index)
}

// frame is one stack entry of the combination search: a candidate pick
// identified by hyperplane orbit and index within that orbit's list.
type frame struct {
	orbit int
	facet int
}

// checkEvery is the step interval between cancellation probes.
const checkEvery = 4096

// searchEngine enumerates valid facet combinations. Zero value is not
// usable; fill every field except check (optional) before run.
type searchEngine struct {
	// cands lists the facet candidates per hyperplane orbit.
	cands [][]facetCandidate

	// orbitSizes is the hyperplane orbit size per orbit (f_h).
	orbitSizes []int

	// subSizes is, per hyperplane orbit, the sub-hyperplane orbit sizes
	// of its sub-faceting problem (g_a).
	subSizes [][]int

	// ridgeOrbitOf maps a candidate's ridge reference (h, a, b) to the
	// global ridge orbit id assigned by the registry.
	ridgeOrbitOf [][][]int

	// ridgeSizes is the global ridge orbit size per orbit id (t_ro).
	ridgeSizes []int

	// maxFacets caps the stack depth when positive; zero means no cap.
	// The cap applies to valid and incomplete branches alike.
	maxFacets int

	// irc keeps extending past a valid combination, so compounds that
	// strictly contain a valid faceting are reported too.
	irc bool

	// onValid receives every valid stack. The slice is reused; the
	// callback must copy what it keeps.
	onValid func(stack []frame) error

	// check, when set, is probed every checkEvery steps for cancellation.
	check func() error

	coverage []int
	steps    int
}

// search stack classifications.
const (
	classValid      = iota // every ridge orbit covered 0 or 2 times
	classExotic            // some ridge orbit covered more than twice
	classIncomplete        // some ridge orbit covered exactly once
)

// run drives the search to exhaustion. It returns the first error from
// onValid, check, or the coverage arithmetic.
func (e *searchEngine) run() error {
	e.coverage = make([]int, len(e.ridgeSizes))
	stack := []frame{{0, 0}}

	for {
		if e.check != nil {
			e.steps++
			if e.steps%checkEvery == 0 {
				if err := e.check(); err != nil {
					return err
				}
			}
		}

		// Normalize: resolve orbit overflow by popping and advancing the
		// frame below. An empty stack means the space is exhausted.
		for {
			t := &stack[len(stack)-1]
			if t.orbit >= len(e.cands) {
				stack = stack[:len(stack)-1]
				if len(stack) == 0 {
					return nil
				}
				t2 := &stack[len(stack)-1]
				if t2.facet+1 >= len(e.cands[t2.orbit]) {
					t2.orbit++
					t2.facet = 0
				} else {
					t2.facet++
				}
			} else if t.facet >= len(e.cands[t.orbit]) {
				t.orbit++
				t.facet = 0
			} else {
				break
			}
		}

		cls, err := e.classify(stack)
		if err != nil {
			return err
		}

		switch cls {
		case classValid:
			if err := e.onValid(stack); err != nil {
				return err
			}
			if e.capReached(stack) {
				advance(stack, e.cands)

				continue
			}
			if e.irc {
				stack = append(stack, frame{stack[len(stack)-1].orbit + 1, 0})
			} else {
				advance(stack, e.cands)
			}

		case classExotic:
			advance(stack, e.cands)

		case classIncomplete:
			if e.capReached(stack) {
				advance(stack, e.cands)

				continue
			}
			stack = append(stack, frame{stack[len(stack)-1].orbit + 1, 0})
		}
	}
}

// classify computes per-ridge-orbit coverage of the stack and returns its
// class. Accumulation stops early once any orbit exceeds two.
func (e *searchEngine) classify(stack []frame) (int, error) {
	clear(e.coverage)

accumulate:
	for _, f := range stack {
		fCount := e.orbitSizes[f.orbit]
		for _, rr := range e.cands[f.orbit][f.facet].RidgeRefs {
			ro := e.ridgeOrbitOf[f.orbit][rr.Orbit][rr.Index]
			mul := fCount * e.subSizes[f.orbit][rr.Orbit]
			if mul%e.ridgeSizes[ro] != 0 {
				return 0, errRidgeArithmetic(f.orbit, rr.Orbit, rr.Index)
			}
			e.coverage[ro] += mul / e.ridgeSizes[ro]
			if e.coverage[ro] > 2 {
				break accumulate
			}
		}
	}

	cls := classValid
	for _, c := range e.coverage {
		if c > 2 {
			return classExotic, nil
		}
		if c == 1 {
			cls = classIncomplete
		}
	}

	return cls, nil
}

// capReached reports whether the facet budget forbids growing the stack.
func (e *searchEngine) capReached(stack []frame) bool {
	return e.maxFacets > 0 && len(stack) == e.maxFacets
}

// advance moves the top frame to the next candidate, rolling over into
// the next orbit at the end of the current orbit's list.
func advance(stack []frame, cands [][]facetCandidate) {
	t := &stack[len(stack)-1]
	if t.facet == len(cands[t.orbit])-1 {
		t.orbit++
		t.facet = 0
	} else {
		t.facet++
	}
}
