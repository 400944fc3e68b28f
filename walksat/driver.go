// Package walksat implements a WalkSAT-style stochastic local search: seed a
// random assignment, then repeatedly flip a variable chosen by a mix of
// random-walk and greedy best-score moves that anneal toward greedy as a try
// progresses. Unlike dpll, it never asserts unsatisfiability — exhausting
// its flip budget across every try just means no satisfying assignment was
// found within it.
package walksat

import (
	"context"
	"math/rand"

	"github.com/ManWithAJawharp/sat-solver/cnf"
)

// Result is the outcome of a Solve call. There is no ResultUnsat: WalkSAT is
// incomplete and an exhausted budget reports ResultUnknown, same as a
// canceled context.
type Result int

const (
	ResultUnknown Result = iota
	ResultSat
)

func (r Result) String() string {
	if r == ResultSat {
		return "sat"
	}
	return "unknown"
}

// Stats reports search effort across the whole Solve call.
type Stats struct {
	Tries int
	Flips int
}

// Config bundles WalkSAT's tunables. The zero value is not usable; build one
// with NewConfig.
type Config struct {
	MaxTries int
	MaxFlips int
	Rand     *rand.Rand
}

// NewConfig returns the default configuration (50 tries, 10000 flips per
// try) seeded deterministically.
func NewConfig(seed int64) Config {
	return Config{
		MaxTries: 50,
		MaxFlips: 10000,
		Rand:     rand.New(rand.NewSource(seed)),
	}
}

// solver holds WalkSAT's private working state: a static copy of the
// formula's live clauses (WalkSAT never deletes a clause, unlike the DPLL
// propagator, so it does not share cnf.Formula's mutable trail at all) and a
// full, always-total assignment over every variable.
type solver struct {
	clauses     [][]int // signed literals, one slice per live clause
	containment map[int][]int
	assignment  map[int]bool
	rng         *rand.Rand
}

func newSolver(f *cnf.Formula, rng *rand.Rand) *solver {
	s := &solver{
		containment: make(map[int][]int),
		assignment:  make(map[int]bool, f.NumVars()),
		rng:         rng,
	}

	for id := 0; id < f.NumClauses(); id++ {
		lits, live := f.Clause(id)
		if !live {
			continue
		}
		cid := len(s.clauses)
		s.clauses = append(s.clauses, lits)
		for _, lit := range lits {
			s.containment[lit] = append(s.containment[lit], cid)
		}
	}

	for i := 0; i < f.NumVars(); i++ {
		v := f.VarAt(i)
		s.assignment[v] = rng.Float64() < 0.1
	}

	return s
}

// guessAssignment re-seeds the assignment for a new try. On the first try
// (fresh is true) every variable is set independently; on a soft restart
// each existing assignment is kept with probability soft, otherwise
// re-rolled.
func (s *solver) guessAssignment(vars []int, fresh bool, soft float64) {
	for _, v := range vars {
		if !fresh && s.rng.Float64() < soft {
			continue
		}
		s.assignment[v] = s.rng.Float64() < 0.1
	}
}

func (s *solver) get(lit int) bool {
	v, want := normalize(lit)
	val := s.assignment[v]
	if !want {
		val = !val
	}
	return val
}

func (s *solver) set(lit int, value bool) {
	v, want := normalize(lit)
	if !want {
		value = !value
	}
	s.assignment[v] = value
}

func normalize(lit int) (v int, positiveValueWanted bool) {
	if lit < 0 {
		return -lit, false
	}
	return lit, true
}

// unsatisfied returns the ids, into s.clauses, of every clause with no true
// literal.
func (s *solver) unsatisfied() []int {
	var out []int
	for id, clause := range s.clauses {
		sat := false
		for _, lit := range clause {
			if s.get(lit) {
				sat = true
				break
			}
		}
		if !sat {
			out = append(out, id)
		}
	}
	return out
}

// deltaSat scores flipping the positive literal v: the number of clauses
// newly satisfied minus the number newly falsified, counted across both
// polarities of v, exactly as spec 4.6 defines Δsat(ℓ) + Δsat(−ℓ). A clause
// with zero currently-true literals becomes satisfied by flipping any
// literal of v it contains; a clause whose sole true literal is v (or −v)
// becomes unsatisfied by flipping it.
func (s *solver) deltaSat(v int) int {
	return s.predictScore(v) + s.predictScore(-v)
}

func (s *solver) predictScore(lit int) int {
	score := 0
	for _, id := range s.containment[lit] {
		trueCount := 0
		for _, l := range s.clauses[id] {
			if s.get(l) {
				trueCount++
			}
		}
		switch {
		case trueCount == 0:
			score++
		case trueCount == 1 && s.get(lit):
			score--
		}
	}
	return score
}

// bestVariables returns the positive variables, among candidates, with the
// highest deltaSat score, for a random tie-break among equals.
func bestVariables(candidates []int, score func(int) int) []int {
	best := make([]int, 0, 1)
	bestScore := 0
	first := true
	for _, v := range candidates {
		sc := score(v)
		switch {
		case first || sc > bestScore:
			best = best[:0]
			best = append(best, v)
			bestScore = sc
			first = false
		case sc == bestScore:
			best = append(best, v)
		}
	}
	return best
}

// Solve runs WalkSAT against f's clause set, mixing random-walk and greedy
// flips annealed by the current flip's progress through max_flips, for up
// to max_tries restarts. f is read once to build a static copy of its live
// clauses and is not otherwise touched; the returned assignment is total
// over every variable in f, not just the ones a satisfying run happened to
// need.
func Solve(ctx context.Context, f *cnf.Formula, cfg Config) (Result, map[int]bool, Stats) {
	vars := make([]int, f.NumVars())
	for i := range vars {
		vars[i] = f.VarAt(i)
	}

	s := newSolver(f, cfg.Rand)
	var stats Stats

	for try := 0; try < cfg.MaxTries; try++ {
		stats.Tries++
		s.guessAssignment(vars, try == 0, 0.7)

		for flip := 0; flip < cfg.MaxFlips; flip++ {
			select {
			case <-ctx.Done():
				return ResultUnknown, cloneAssignment(s.assignment), stats
			default:
			}

			unsat := s.unsatisfied()
			if len(unsat) == 0 {
				return ResultSat, cloneAssignment(s.assignment), stats
			}
			stats.Flips++

			progress := float64(flip) / float64(cfg.MaxFlips)
			pWalk := progress*0.7 + (1-progress)*0.9
			pBest := progress*0.9 + (1-progress)*0.95
			u := cfg.Rand.Float64()

			switch {
			case u <= pWalk:
				s.randomWalk(unsat)
			case u <= pBest:
				s.flipBest(vars)
			default:
				v := vars[cfg.Rand.Intn(len(vars))]
				s.set(v, !s.get(v))
			}
		}
	}

	return ResultUnknown, cloneAssignment(s.assignment), stats
}

// randomWalk picks a uniformly random unsatisfied clause and flips the
// variable in it with the best deltaSat score, breaking ties randomly. There
// is no separate fallback branch: bestVariables always returns at least one
// variable, and when every variable of the clause scores the same the tie
// break is a uniformly random pick among all of them.
func (s *solver) randomWalk(unsatClauseIDs []int) {
	clauseID := unsatClauseIDs[s.rng.Intn(len(unsatClauseIDs))]
	clause := s.clauses[clauseID]

	candidates := make([]int, 0, len(clause))
	for _, lit := range clause {
		v, _ := normalize(lit)
		candidates = append(candidates, v)
	}

	best := bestVariables(candidates, s.deltaSat)
	v := best[s.rng.Intn(len(best))]
	s.set(v, !s.get(v))
}

// flipBest picks the globally best-scoring variable across the whole
// formula, breaking ties randomly.
func (s *solver) flipBest(vars []int) {
	best := bestVariables(vars, s.deltaSat)
	v := best[s.rng.Intn(len(best))]
	s.set(v, !s.get(v))
}

func cloneAssignment(a map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
