package sudoku

import (
	_ "embed"
	"strings"

	satsolver "github.com/ManWithAJawharp/sat-solver"
)

//go:embed rules.cnf
var rulesText string

// Rules returns the fixed CNF ruleset every encoded puzzle is conjoined
// with: each cell has at least one digit, each cell has at most one digit,
// and each digit appears at most once per row, column, and 3x3 block. It is
// compiled into the binary rather than read from a filesystem path at
// runtime, unlike the reference implementation's RULES_PATH file, so the
// CLI has no runtime dependency on a rules file shipping alongside it.
func Rules() [][]int {
	clauses, err := satsolver.ParseDIMACS(strings.NewReader(rulesText))
	if err != nil {
		// rulesText is a compiled-in asset generated once at build time;
		// a parse failure here means the asset itself is corrupt, which is
		// a bug, not a runtime condition callers can recover from.
		panic("sudoku: embedded rules.cnf failed to parse: " + err.Error())
	}
	return clauses
}
