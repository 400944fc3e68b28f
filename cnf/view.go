package cnf

import "math"

// This file exposes the read-only accessors the branching heuristics
// (package heuristic) need. None of them mutate the Formula, which is what
// makes the heuristics referentially transparent: calling any of these
// twice without an intervening PushFrame/assign/PopFrame returns the same
// answer.

// NumVars returns the number of distinct variables in the formula.
func (f *Formula) NumVars() int { return len(f.vars) }

// VarAt returns the original variable id at compact index i, in ascending
// order — the solver's canonical iteration order for branching.
func (f *Formula) VarAt(i int) int { return f.vars[i] }

// IsAssigned reports whether v currently has a value.
func (f *Formula) IsAssigned(v int) bool {
	idx, ok := f.varIdx[v]
	return ok && f.assigned[idx]
}

// OccurrenceCount returns the number of currently-live clauses containing
// the signed literal lit.
func (f *Formula) OccurrenceCount(lit int) int {
	return len(f.liveOccurrence(f.packOrig(lit)))
}

// JWScore computes the Jeroslow-Wang weight of the signed literal lit:
// the sum of 2^-|c| over every live clause c containing it.
func (f *Formula) JWScore(lit int) float64 {
	var sum float64
	for _, id := range f.liveOccurrence(f.packOrig(lit)) {
		sum += math.Exp2(-float64(len(f.clauses[id])))
	}
	return sum
}

// packOrig converts an original signed literal to its packed form. The
// variable must be present in the formula.
func (f *Formula) packOrig(lit int) plit {
	v := lit
	neg := false
	if v < 0 {
		v, neg = -v, true
	}
	idx, ok := f.varIdx[v]
	if !ok {
		panic("cnf: literal refers to a variable outside the formula")
	}
	return packLit(idx, neg)
}
