package satsolver

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ManWithAJawharp/sat-solver/heuristic"
	"github.com/ManWithAJawharp/sat-solver/walksat"
)

func TestSolveDirectCases(t *testing.T) {
	for _, tt := range []struct {
		name    string
		problem [][]int
		sat     bool
	}{
		{"unit clause", [][]int{{1}}, true},
		{"contradiction", [][]int{{1}, {-1}}, false},
		{"pigeonhole two into one", [][]int{{1}, {2}, {-1, -2}}, false},
		{"simple chain", [][]int{{1, 2}, {-1, 2}, {1, -2}}, true},
	} {
		t.Run(tt.name, func(t *testing.T) {
			soln, _, ok := Solve(tt.problem)
			require.Equal(t, tt.sat, ok)
			if tt.sat {
				require.True(t, solutionIsValid(tt.problem, soln))
			}
		})
	}
}

func TestSolveHeuristicsAgree(t *testing.T) {
	problem := [][]int{{1, 2, 3}, {-1, 2}, {-2, 3}, {-3, 1}}
	for _, h := range []heuristic.Heuristic{
		heuristic.Naive{},
		heuristic.MaxOccurrence{},
		heuristic.JeroslowWang{},
		heuristic.NewRandom(7),
	} {
		soln, _, ok := Solve(problem, h)
		require.True(t, ok)
		require.True(t, solutionIsValid(problem, soln))
	}
}

func TestSolveWalkSATFindsSatisfiable(t *testing.T) {
	problem := [][]int{{1, 2}, {-1, 2}, {1, -2}}
	soln, _, ok := SolveWalkSAT(context.Background(), problem, walksat.NewConfig(9))
	require.True(t, ok)
	require.True(t, solutionIsValid(problem, soln))
}

func TestRandomized(t *testing.T) {
	for _, tt := range []struct {
		numVars    int
		numClauses int
		numSeeds   int
	}{
		{2, 2, 10},
		{3, 10, 100},
		{5, 10, 300},
		{10, 20, 300},
	} {
		name := fmt.Sprintf("vars=%d,clauses=%d", tt.numVars, tt.numClauses)
		t.Run(name, func(t *testing.T) {
			for seed := 0; seed < tt.numSeeds; seed++ {
				problem := makeRandomSat(int64(seed), tt.numVars, tt.numClauses)
				soln, _, ok := Solve(problem)
				if !ok {
					t.Fatalf("[seed=%d] got UNSAT for a problem built to be satisfiable:\n%v", seed, problem)
				}
				if !solutionIsValid(problem, soln) {
					t.Fatalf("[seed=%d] got incorrect solution:\n\n%v\n\n%v\n", seed, soln, problem)
				}
			}
		})
	}
}

func solutionIsValid(problem [][]int, soln []int) bool {
	vars := make(map[int]bool)
	for _, v := range soln {
		if v < 0 {
			vars[-v] = false
			vars[v] = true
		} else {
			vars[v] = true
			vars[-v] = false
		}
	}
clauseLoop:
	for _, clause := range problem {
		for _, v := range clause {
			if vars[v] {
				continue clauseLoop
			}
		}
		return false
	}
	return true
}

// makeRandomSat generates a satisfiable-by-construction CNF problem: a
// hidden random assignment is picked first, then each clause is built to
// contain at least one literal that agrees with it.
func makeRandomSat(seed int64, numVars, numClauses int) [][]int {
	rng := rand.New(rand.NewSource(seed))
	assignment := make([]bool, numVars)
	for v := range assignment {
		if rng.Intn(2) == 1 {
			assignment[v] = true
		}
	}
	vars := make([]int, numVars)
	for v := range vars {
		vars[v] = v
	}
	problem := make([][]int, numClauses)
	for i := range problem {
		rng.Shuffle(len(vars), func(i, j int) {
			vars[i], vars[j] = vars[j], vars[i]
		})
		problem[i] = make([]int, rng.Intn(numVars)+1)
		fixed := rng.Intn(len(problem[i]))
		for j := range problem[i] {
			v := vars[j] + 1
			if j == fixed {
				if !assignment[v-1] {
					v = -v
				}
			} else {
				if rng.Intn(2) == 1 {
					v = -v
				}
			}
			problem[i][j] = v
		}
	}
	remap := make(map[int]int)
	for _, cls := range problem {
		for i, v := range cls {
			neg := false
			if v < 0 {
				neg = true
				v = -v
			}
			if x, ok := remap[v]; ok {
				v = x
			} else {
				x := len(remap) + 1
				remap[v] = x
				v = x
			}
			if neg {
				v = -v
			}
			cls[i] = v
		}
	}
	return problem
}
