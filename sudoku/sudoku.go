// Package sudoku encodes 9x9 Sudoku puzzles as CNF formulas solvable by
// dpll or walksat, and decodes a satisfying assignment back into a grid.
// The variable encoding (100*row + 10*col + digit) and the rendering and
// verification rules are grounded directly on the reference implementation
// this module was distilled from.
package sudoku

import (
	"fmt"
	"strings"
)

// Grid is a 9x9 Sudoku board. A zero cell is empty; otherwise the value is
// the digit 1-9 placed there.
type Grid [9][9]int

// variable returns the CNF variable id standing for "row r, column c holds
// digit d", with r, c, d all in [1, 9].
func variable(r, c, d int) int {
	return 100*r + 10*c + d
}

// Encode converts an 81-character one-line puzzle description into a CNF
// formula: one unit clause per given digit, plus the fixed ruleset from
// Rules. raw must be exactly 81 characters from the alphabet "0123456789.",
// row-major, with '.' or '0' marking an empty cell — the one-line input format
// the CLI and the reference implementation both use.
func Encode(raw string) ([][]int, error) {
	if len(raw) != 81 {
		return nil, fmt.Errorf("sudoku: puzzle must be 81 characters, got %d", len(raw))
	}

	var givens [][]int
	for i, ch := range raw {
		r := i/9 + 1
		c := i%9 + 1
		switch {
		case ch == '.' || ch == '0':
			continue
		case ch >= '1' && ch <= '9':
			givens = append(givens, []int{variable(r, c, int(ch-'0'))})
		default:
			return nil, fmt.Errorf("sudoku: invalid character %q at position %d", ch, i)
		}
	}

	return append(givens, Rules()...), nil
}

// Decode renders a satisfying assignment, keyed by the variable encoding
// Encode uses, as a Grid. Variables absent from assignment, or assigned
// false, leave their cell empty.
func Decode(assignment map[int]bool) Grid {
	var g Grid
	for v, value := range assignment {
		if !value || v < 111 || v > 999 {
			continue
		}
		d := v % 10
		c := (v / 10) % 10
		r := v / 100
		if r < 1 || r > 9 || c < 1 || c > 9 || d < 1 || d > 9 {
			continue
		}
		g[r-1][c-1] = d
	}
	return g
}

// String renders the grid as 9 rows of 9 digits separated by '|', rows
// separated by newlines, with '.' for an empty cell — the output format
// the CLI prints for a Sudoku solve.
func (g Grid) String() string {
	rows := make([]string, 9)
	for r := 0; r < 9; r++ {
		cells := make([]string, 9)
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				cells[c] = "."
			} else {
				cells[c] = fmt.Sprintf("%d", g[r][c])
			}
		}
		rows[r] = strings.Join(cells, "|")
	}
	return strings.Join(rows, "\n")
}

// Verify checks that every row, column, and 3x3 block of g contains each
// digit 1-9 exactly once, returning a description of the first violation
// found (rows checked before columns before blocks, matching the reference
// implementation's check order), or nil if g is a valid completed Sudoku.
func Verify(g Grid) error {
	for r := 0; r < 9; r++ {
		if !isPermutationOfNine(g[r][:]) {
			return fmt.Errorf("sudoku: row %d is incorrect: %v", r+1, g[r])
		}
	}

	for c := 0; c < 9; c++ {
		col := make([]int, 9)
		for r := 0; r < 9; r++ {
			col[r] = g[r][c]
		}
		if !isPermutationOfNine(col) {
			return fmt.Errorf("sudoku: column %d is incorrect: %v", c+1, col)
		}
	}

	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			block := make([]int, 0, 9)
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					block = append(block, g[3*br+dr][3*bc+dc])
				}
			}
			if !isPermutationOfNine(block) {
				return fmt.Errorf("sudoku: block (%d,%d) is incorrect: %v", br+1, bc+1, block)
			}
		}
	}

	return nil
}

func isPermutationOfNine(cells []int) bool {
	var seen [10]bool
	for _, v := range cells {
		if v < 1 || v > 9 || seen[v] {
			return false
		}
		seen[v] = true
	}
	return true
}
