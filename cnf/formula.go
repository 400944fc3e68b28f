// Package cnf implements the mutable clause database shared by the DPLL
// and WalkSAT drivers: a clause store addressed by stable id, a literal
// occurrence index kept in sync with it, and an undo trail that makes
// backtracking proportional to the number of edits made since the last
// decision rather than to the size of the whole formula.
//
// Everything that decide/propagate/backtrack touches is bundled into a
// single Formula value, rather than threaded through as a handful of
// separate maps, so that a solve has exactly one piece of state to create,
// mutate, and discard.
package cnf

import (
	"fmt"
	"sort"
)

// Status is the outcome of a propagation pass.
type Status int

const (
	// StatusUndecided means propagation reached a fixed point without
	// satisfying or falsifying the formula; the driver must branch.
	StatusUndecided Status = iota
	// StatusSat means every clause has been satisfied and removed.
	StatusSat
	// StatusUnsat means some live clause was driven to empty.
	StatusUnsat
)

func (s Status) String() string {
	switch s {
	case StatusSat:
		return "sat"
	case StatusUnsat:
		return "unsat"
	default:
		return "undecided"
	}
}

// Formula is a CNF formula under construction by a single solve: the live
// clause set, the literal occurrence index, the assignment built up so
// far, and the undo trail that can unwind any of it. A Formula is created
// fresh for each solve and is not safe for concurrent use.
type Formula struct {
	// vars is the sorted list of original variable ids seen in the input;
	// its position is the compact variable index used everywhere
	// internally (see plit in literal.go).
	vars    []int
	varIdx  map[int]int
	clauses [][]plit
	live    []bool
	// liveCount is the number of entries in live that are true; the store
	// is "empty" for propagation purposes when it reaches zero.
	liveCount int

	index

	assigned []bool
	value    []bool

	trail trail

	// assignCount counts every call to assign, decisions and
	// propagation-implied assignments alike; drivers subtract their own
	// decision counter from it to report implications separately.
	assignCount int64
}

// NewFormula loads a CNF formula given as slices of signed, non-zero
// literals. Each input clause is assigned a fresh, stable id in input
// order; duplicate literals within a clause are collapsed (set semantics)
// and clauses that are tautologies (contain both v and -v) are dropped
// immediately, with no undo recorded, since this preprocessing happens
// before any decision frame exists.
func NewFormula(problem [][]int) (*Formula, error) {
	varSet := make(map[int]struct{})
	for _, clause := range problem {
		for _, lit := range clause {
			if lit == 0 {
				return nil, fmt.Errorf("cnf: clause contains literal 0")
			}
			v := lit
			if v < 0 {
				v = -v
			}
			varSet[v] = struct{}{}
		}
	}

	vars := make([]int, 0, len(varSet))
	for v := range varSet {
		vars = append(vars, v)
	}
	sort.Ints(vars)

	varIdx := make(map[int]int, len(vars))
	for i, v := range vars {
		varIdx[v] = i
	}

	f := &Formula{
		vars:     vars,
		varIdx:   varIdx,
		clauses:  make([][]plit, len(problem)),
		live:     make([]bool, len(problem)),
		index:    newIndex(2 * len(vars)),
		assigned: make([]bool, len(vars)),
		value:    make([]bool, len(vars)),
	}

	for id, clause := range problem {
		seen := make(map[plit]struct{}, len(clause))
		var lits []plit
		tautology := false
		for _, lit := range clause {
			v := lit
			neg := false
			if v < 0 {
				v, neg = -v, true
			}
			p := packLit(varIdx[v], neg)
			if _, dup := seen[p]; dup {
				continue
			}
			seen[p] = struct{}{}
			if _, hasOpp := seen[p.negate()]; hasOpp {
				tautology = true
			}
			lits = append(lits, p)
		}
		sort.Slice(lits, func(i, j int) bool { return lits[i] < lits[j] })
		f.clauses[id] = lits
		f.live[id] = !tautology
		if f.live[id] {
			f.liveCount++
		}
	}

	for id := range f.clauses {
		if !f.live[id] {
			continue
		}
		for _, lit := range f.clauses[id] {
			f.attach(lit, ClauseID(id))
		}
	}

	return f, nil
}

// NumClauses returns the number of clauses assigned an id at load time
// (including any later deleted, whether by propagation or tautology
// removal).
func (f *Formula) NumClauses() int { return len(f.clauses) }

// Live reports whether clause id is still part of the residual formula.
func (f *Formula) Live(id int) bool { return f.live[id] }

// Clause returns the current literal set of clause id, as original signed
// integers, and whether the clause is live. The slice is a fresh copy on
// every call, so the caller may keep or mutate it.
func (f *Formula) Clause(id int) ([]int, bool) {
	lits := f.clauses[id]
	out := make([]int, len(lits))
	for i, p := range lits {
		out[i] = f.origLiteral(p)
	}
	return out, f.live[id]
}

// TrailDepth reports the number of decision frames currently on the undo
// trail. It is mainly useful to tests checking the "frames on entry equals
// frames on exit" driver invariant.
func (f *Formula) TrailDepth() int { return f.trail.depth() }

// PushFrame opens a new, empty trail frame. Every edit recorded after this
// call and before the matching PopFrame is undone together.
func (f *Formula) PushFrame() { f.trail.push() }

// PopFrame undoes every edit recorded since the matching PushFrame, in
// reverse order, restoring the store, index, and assignment to their state
// at that push.
func (f *Formula) PopFrame() {
	edits := f.trail.pop()
	for i := len(edits) - 1; i >= 0; i-- {
		f.undo(edits[i])
	}
}

func (f *Formula) undo(e edit) {
	switch e.kind {
	case editClauseRemoved:
		f.restoreClauseRemoved(e)
	case editLiteralRemoved:
		f.restoreLiteralRemoved(e)
	case editAssignmentAdded:
		f.assigned[e.v] = false
	case editOccurrenceRemoved:
		f.restoreOccurrenceRemoved(e)
	default:
		panic("cnf: PopFrame encountered an unrecognized edit kind")
	}
}

// origLiteral converts a packed literal back to its original signed int.
func (f *Formula) origLiteral(p plit) int {
	v := f.vars[p.compactVar()]
	if p.negated() {
		return -v
	}
	return v
}
