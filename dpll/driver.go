// Package dpll implements the Davis-Putnam-Logemann-Loveland backtracking
// search: unit-propagate, branch on a heuristic's choice when propagation
// stalls, and backtrack by flipping the most recent undecided branch when a
// choice leads to a contradiction. The recursive textbook formulation is
// rewritten here as an explicit stack of decision frames so a large formula
// cannot exhaust the goroutine stack — the same concern that leads
// cespare-saturday's heap-based watch structure to avoid recursion in its
// own propagation loop.
package dpll

import (
	"context"

	"github.com/ManWithAJawharp/sat-solver/cnf"
	"github.com/ManWithAJawharp/sat-solver/heuristic"
)

// Result is the outcome of a Solve call.
type Result int

const (
	// ResultUnknown means the search was abandoned before reaching a
	// verdict, because ctx was canceled.
	ResultUnknown Result = iota
	ResultSat
	ResultUnsat
)

func (r Result) String() string {
	switch r {
	case ResultSat:
		return "sat"
	case ResultUnsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// Stats reports search effort, split the way the spec's external interface
// distinguishes them: decisions are heuristic-chosen branches, implications
// are every assignment unit propagation made on its own.
type Stats struct {
	Decisions    int64
	Implications int64
}

// branch is one level of the explicit decision stack: the variable branched
// on, the phase tried first, and whether the opposite phase has already
// been tried at this level (in which case the next contradiction pops the
// level entirely rather than flipping it again).
type branch struct {
	v          int
	firstPhase bool
	flipped    bool
}

// Solve runs DPLL to completion against f, consulting h whenever
// propagation reaches a fixed point without deciding the formula. It
// mutates f in place; on return every trail frame Solve itself pushed has
// been popped, regardless of outcome — the invariant spec section 4.5
// requires of every level of the recursion, chosen here to apply to the
// whole call as well. On ResultSat the satisfying assignment is then
// replayed into the frame that was open on entry (f must have one), so
// f.Assignment() still reports it; on any other result f is left exactly
// as it was found.
//
// ctx is checked once per propagate/branch/backtrack cycle; a cancellation
// returns ResultUnknown with whatever stats had accumulated so far, leaving
// f's trail unwound to the same depth it had on entry.
func Solve(ctx context.Context, f *cnf.Formula, h heuristic.Heuristic) (Result, Stats) {
	var stats Stats
	var stack []branch

	unwind := func() {
		for range stack {
			f.PopFrame()
		}
	}
	keepModel := func() {
		model := f.Assignment()
		unwind()
		for i := 0; i < f.NumVars(); i++ {
			v := f.VarAt(i)
			if val, ok := model[v]; ok && !f.IsAssigned(v) {
				f.AssignDecision(v, val)
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			unwind()
			return ResultUnknown, stats
		default:
		}

		before := f.AssignCount()
		status := f.PropagateUnits()
		stats.Implications += f.AssignCount() - before

		switch status {
		case cnf.StatusSat:
			keepModel()
			return ResultSat, stats

		case cnf.StatusUnsat:
			if !backtrack(f, &stack) {
				return ResultUnsat, stats
			}
			continue

		default: // StatusUndecided: branch
			v, phase, ok := h.Decide(f)
			if !ok {
				// Propagation left every variable assigned without
				// reporting Sat or Unsat directly; treat as satisfied,
				// since there is nothing left to branch on and no empty
				// clause was found.
				keepModel()
				return ResultSat, stats
			}
			f.PushFrame()
			f.AssignDecision(v, phase)
			stack = append(stack, branch{v: v, firstPhase: phase})
			stats.Decisions++
		}
	}
}

// backtrack undoes decision frames from the top of stack until it finds one
// whose opposite phase hasn't been tried yet, tries it, and reports true —
// or exhausts the whole stack and reports false, meaning the formula is
// unsatisfiable under every choice available to it.
func backtrack(f *cnf.Formula, stack *[]branch) bool {
	s := *stack
	for len(s) > 0 {
		top := s[len(s)-1]
		f.PopFrame()

		if !top.flipped {
			f.PushFrame()
			f.AssignDecision(top.v, !top.firstPhase)
			s[len(s)-1].flipped = true
			*stack = s
			return true
		}
		s = s[:len(s)-1]
	}
	*stack = s
	return false
}
