package heuristic

// MaxOccurrence branches on the unassigned variable appearing in the most
// live clauses, counting both polarities, and picks the phase whose
// occurrence count is the smaller of the two — satisfying the rarer polarity
// first tends to remove more distinct clauses from the residual formula on
// average than satisfying the common one. Ties, in total occurrence count
// and in phase, both break toward the lower original variable id and the
// true phase respectively, by scanning in ascending order and requiring a
// strict improvement to replace the current best.
type MaxOccurrence struct{}

// Decide implements Heuristic.
func (MaxOccurrence) Decide(view View) (int, bool, bool) {
	best := -1
	bestV := 0
	bestPhase := true
	found := false

	for i := 0; i < view.NumVars(); i++ {
		v := view.VarAt(i)
		if view.IsAssigned(v) {
			continue
		}
		pos := view.OccurrenceCount(v)
		neg := view.OccurrenceCount(-v)
		total := pos + neg
		if total > best {
			best = total
			bestV = v
			bestPhase = pos <= neg
			found = true
		}
	}
	return bestV, bestPhase, found
}
