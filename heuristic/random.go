package heuristic

import "math/rand"

// Random branches on a uniformly chosen unassigned variable among those that
// still occur in a live clause, using an
// injected source so a solve is reproducible given a seed. The phase is
// always true first; the spec leaves phase selection to the implementer for
// this heuristic, and there is no signal in an unassigned variable's id to
// prefer one phase over the other.
type Random struct {
	Rand *rand.Rand
}

// NewRandom builds a Random heuristic seeded deterministically.
func NewRandom(seed int64) *Random {
	return &Random{Rand: rand.New(rand.NewSource(seed))}
}

// Decide implements Heuristic.
func (r *Random) Decide(v View) (int, bool, bool) {
	var candidates []int
	for i := 0; i < v.NumVars(); i++ {
		c := v.VarAt(i)
		if !v.IsAssigned(c) && hasLiveOccurrence(v, c) {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return 0, true, false
	}
	return candidates[r.Rand.Intn(len(candidates))], true, true
}
