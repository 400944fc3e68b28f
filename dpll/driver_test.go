package dpll

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ManWithAJawharp/sat-solver/cnf"
	"github.com/ManWithAJawharp/sat-solver/heuristic"
)

func solve(t *testing.T, problem [][]int) (Result, *cnf.Formula) {
	t.Helper()
	f, err := cnf.NewFormula(problem)
	require.NoError(t, err)
	f.PushFrame()
	result, _ := Solve(context.Background(), f, heuristic.Naive{})
	return result, f
}

func TestSolveSatisfiable(t *testing.T) {
	result, f := solve(t, [][]int{{1, 2}, {-1, 2}, {1, -2}})
	require.Equal(t, ResultSat, result)

	assignment := f.Assignment()
	require.True(t, satisfies([][]int{{1, 2}, {-1, 2}, {1, -2}}, assignment))
}

func TestSolveUnsatisfiable(t *testing.T) {
	result, _ := solve(t, [][]int{{1}, {-1}})
	require.Equal(t, ResultUnsat, result)
}

func TestSolveRequiresBacktracking(t *testing.T) {
	// Forces at least one contradiction-driven flip under the Naive
	// heuristic's ascending-id, true-first branching order.
	problem := [][]int{
		{1, 2},
		{-1, 3},
		{-1, -3},
	}
	result, f := solve(t, problem)
	require.Equal(t, ResultSat, result)
	require.True(t, satisfies(problem, f.Assignment()))
}

func TestSolveTrailInvariant(t *testing.T) {
	f, err := cnf.NewFormula([][]int{{1, 2, 3}, {-1, -2}, {-2, -3}, {-1, -3}})
	require.NoError(t, err)
	f.PushFrame()
	depthBefore := f.TrailDepth()

	_, stats := Solve(context.Background(), f, heuristic.Naive{})
	require.Greater(t, stats.Decisions, int64(0))
	require.Equal(t, depthBefore, f.TrailDepth(), "Solve must leave the trail exactly as deep as it found it")
}

func TestSolveCancellation(t *testing.T) {
	f, err := cnf.NewFormula([][]int{{1, 2}, {-1, 2}})
	require.NoError(t, err)
	f.PushFrame()
	depthBefore := f.TrailDepth()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, _ := Solve(ctx, f, heuristic.Naive{})
	require.Equal(t, ResultUnknown, result)
	require.Equal(t, depthBefore, f.TrailDepth())
}

func satisfies(problem [][]int, assignment map[int]bool) bool {
	for _, clause := range problem {
		ok := false
		for _, lit := range clause {
			v := lit
			want := true
			if v < 0 {
				v, want = -v, false
			}
			if assignment[v] == want {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
