package sudoku

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ManWithAJawharp/sat-solver/cnf"
	"github.com/ManWithAJawharp/sat-solver/dpll"
	"github.com/ManWithAJawharp/sat-solver/heuristic"
)

func TestRulesParse(t *testing.T) {
	rules := Rules()
	require.NotEmpty(t, rules)
	for _, clause := range rules {
		require.NotEmpty(t, clause)
	}
}

func TestEncodeRejectsWrongLength(t *testing.T) {
	_, err := Encode("123")
	require.Error(t, err)
}

func TestEncodeRejectsInvalidCharacter(t *testing.T) {
	raw := strings.Repeat(".", 81)
	raw = "x" + raw[1:]
	_, err := Encode(raw)
	require.Error(t, err)
}

func TestEncodeProducesGivenUnitClauses(t *testing.T) {
	raw := "5" + strings.Repeat(".", 80)
	clauses, err := Encode(raw)
	require.NoError(t, err)
	require.Contains(t, clauses, []int{variable(1, 1, 5)})
}

func TestDecodeIgnoresFalseAndOutOfRangeEntries(t *testing.T) {
	assignment := map[int]bool{
		variable(1, 1, 7): true,
		variable(2, 2, 3): false,
		50:                true,
	}
	g := Decode(assignment)
	require.Equal(t, 7, g[0][0])
	require.Equal(t, 0, g[1][1])
}

func TestGridString(t *testing.T) {
	var g Grid
	g[0][0] = 5
	s := g.String()
	lines := strings.Split(s, "\n")
	require.Len(t, lines, 9)
	require.Equal(t, "5|.|.|.|.|.|.|.|.", lines[0])
}

func TestVerifyAcceptsCompleteValidGrid(t *testing.T) {
	g := solvedSampleGrid()
	require.NoError(t, Verify(g))
}

func TestVerifyRejectsDuplicateInRow(t *testing.T) {
	g := solvedSampleGrid()
	g[0][1] = g[0][0]
	require.Error(t, Verify(g))
}

func TestEncodeSolveDecodeRoundTrip(t *testing.T) {
	// A puzzle with just enough givens to pin down a small neighborhood,
	// solved end to end through the real dpll engine and ruleset.
	raw := puzzleWithOneCellMissing()
	clauses, err := Encode(raw)
	require.NoError(t, err)

	f, err := cnf.NewFormula(clauses)
	require.NoError(t, err)
	f.PushFrame()
	result, _ := dpll.Solve(context.Background(), f, heuristic.Naive{})
	require.Equal(t, dpll.ResultSat, result)

	g := Decode(f.Assignment())
	require.NoError(t, Verify(g))
}

// solvedSampleGrid returns a known-valid completed Sudoku grid.
func solvedSampleGrid() Grid {
	rows := [9][9]int{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
	return Grid(rows)
}

func puzzleWithOneCellMissing() string {
	g := solvedSampleGrid()
	g[8][8] = 0
	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte(byte('0' + g[r][c]))
			}
		}
	}
	return b.String()
}
