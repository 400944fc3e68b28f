package heuristic

// Naive always branches on the first unassigned variable, in ascending
// original-id order, that still occurs in a live clause, and always tries
// the true phase first. It is the
// cheapest possible heuristic and the baseline the others are measured
// against.
type Naive struct{}

// Decide implements Heuristic.
func (Naive) Decide(v View) (int, bool, bool) {
	candidate, ok := firstUnassigned(v)
	return candidate, true, ok
}
