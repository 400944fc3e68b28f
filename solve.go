package satsolver

import (
	"context"

	"github.com/ManWithAJawharp/sat-solver/cnf"
	"github.com/ManWithAJawharp/sat-solver/dpll"
	"github.com/ManWithAJawharp/sat-solver/heuristic"
	"github.com/ManWithAJawharp/sat-solver/walksat"
)

// Solve runs the complete DPLL engine against problem, given as a slice of
// clauses of signed, non-zero literals. h selects the branching heuristic;
// when omitted, it defaults to heuristic.Naive{}, matching the distilled
// spec's strategy 1.
//
// assignment is a signed literal per variable the search assigned, sorted
// by ascending original variable id, the same shape the teacher's own
// Solve returned its solution in. Variables left unassigned when the
// formula became satisfied do not appear in it. stats reports decision and implication
// counts. sat is false when problem is unsatisfiable, in which case
// assignment is nil.
func Solve(problem [][]int, h ...heuristic.Heuristic) (assignment []int, stats dpll.Stats, sat bool) {
	pick := heuristic.Heuristic(heuristic.Naive{})
	if len(h) > 0 {
		pick = h[0]
	}

	f, err := cnf.NewFormula(problem)
	if err != nil {
		panic(err)
	}
	f.PushFrame()
	defer f.PopFrame()

	result, stats := dpll.Solve(context.Background(), f, pick)
	if result != dpll.ResultSat {
		return nil, stats, false
	}
	return signedAssignment(f), stats, true
}

// SolveWalkSAT runs the incomplete stochastic local-search engine against
// problem. Unlike Solve, an unsuccessful outcome (sat == false) does not
// mean problem is unsatisfiable — only that no satisfying assignment was
// found within cfg's try/flip budget. assignment is still populated on
// failure, holding WalkSAT's best-effort total assignment from the last try
// at the point its budget ran out, matching the grounding original's
// __main__ block, which prints the solver's assignment unconditionally
// regardless of whether solve() returned true.
func SolveWalkSAT(ctx context.Context, problem [][]int, cfg walksat.Config) (assignment []int, stats walksat.Stats, sat bool) {
	f, err := cnf.NewFormula(problem)
	if err != nil {
		panic(err)
	}

	result, values, stats := walksat.Solve(ctx, f, cfg)

	out := make([]int, f.NumVars())
	for i := 0; i < f.NumVars(); i++ {
		v := f.VarAt(i)
		if values[v] {
			out[i] = v
		} else {
			out[i] = -v
		}
	}
	return out, stats, result == walksat.ResultSat
}

func signedAssignment(f *cnf.Formula) []int {
	values := f.Assignment()
	out := make([]int, 0, len(values))
	for i := 0; i < f.NumVars(); i++ {
		v := f.VarAt(i)
		val, ok := values[v]
		if !ok {
			continue
		}
		if val {
			out = append(out, v)
		} else {
			out = append(out, -v)
		}
	}
	return out
}
