package heuristic

// JeroslowWang branches on the unassigned variable with the highest combined
// Jeroslow-Wang weight across both polarities, where a literal's weight is
// the sum of 2^-|c| over every live clause c containing it — short clauses
// dominate the score, on the theory that they are closer to becoming unit or
// empty and so more urgent to resolve. The phase with the larger individual
// weight is tried first.
type JeroslowWang struct{}

// Decide implements Heuristic.
func (JeroslowWang) Decide(view View) (int, bool, bool) {
	best := -1.0
	bestV := 0
	bestPhase := true
	found := false

	for i := 0; i < view.NumVars(); i++ {
		v := view.VarAt(i)
		if view.IsAssigned(v) {
			continue
		}
		jpos := view.JWScore(v)
		jneg := view.JWScore(-v)
		total := jpos + jneg
		if total > best {
			best = total
			bestV = v
			bestPhase = jpos >= jneg
			found = true
		}
	}
	return bestV, bestPhase, found
}
