// Package heuristic implements the branching rules DPLL consults whenever
// unit propagation reaches a fixed point without deciding the formula. Each
// heuristic is a pure function of the formula's current residual state: two
// calls made without an intervening assignment return the same variable and
// phase, which is what lets the DPLL driver call Decide speculatively before
// committing to a trail frame.
package heuristic

// View is the read-only slice of cnf.Formula a heuristic is allowed to see.
// It carries none of the mutating methods (AssignDecision, PushFrame,
// PopFrame, ...) the propagator and driver use, so a Decide implementation
// cannot accidentally — or otherwise — change the formula it is asked to
// branch on; the heuristic-purity property (referential transparency across
// repeated Decide calls) is enforced by the compiler instead of left as a
// convention. *cnf.Formula satisfies View without any change on its side,
// since the methods below already live in cnf/view.go.
type View interface {
	NumVars() int
	VarAt(i int) int
	IsAssigned(v int) bool
	OccurrenceCount(lit int) int
	JWScore(lit int) float64
}

// Heuristic picks the next variable to branch on and which phase (true/false)
// to try first. ok is false when no candidate variable is left: every
// variable is assigned or, for Naive and Random, every unassigned variable
// has no live occurrence. The driver treats this as nothing left to decide.
type Heuristic interface {
	Decide(v View) (lit int, phase bool, ok bool)
}

// hasLiveOccurrence reports whether v still constrains the residual formula
// in either polarity. A variable can be unassigned yet occurrence-free when
// its last live clause was satisfied by a decision on another variable;
// branching on it would record a decision frame the residual formula no
// longer needs.
func hasLiveOccurrence(v View, candidate int) bool {
	return v.OccurrenceCount(candidate) > 0 || v.OccurrenceCount(-candidate) > 0
}

// firstUnassigned scans the formula's compact variable order and returns the
// original id of the first unassigned variable that still occurs in some
// live clause, and whether one was found. Naive uses it directly; Random
// applies the same filter in its own scan over all candidates.
func firstUnassigned(v View) (candidate int, ok bool) {
	for i := 0; i < v.NumVars(); i++ {
		c := v.VarAt(i)
		if !v.IsAssigned(c) && hasLiveOccurrence(v, c) {
			return c, true
		}
	}
	return 0, false
}
