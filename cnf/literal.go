package cnf

// plit is a packed literal: the solver's internal, dense encoding of a
// signed literal once its variable has been remapped to a compact index in
// [0, numVars). The low bit carries the sign (0 = positive, 1 = negative)
// and the remaining bits carry the compact variable index, so
// plit = 2*compactVar + sign. This mirrors the compaction the teacher
// package used for its watch-literal arrays, reused here to back full
// occurrence lists instead of a two-watch scheme.
//
// Ascending plit order is the solver's canonical "ascending literal id"
// tie-break: for a given compact variable its positive literal always
// sorts before its negative literal, and all literals of a lower-indexed
// variable sort before any literal of a higher-indexed one.
type plit uint32

func packLit(compactVar int, negated bool) plit {
	p := plit(compactVar) << 1
	if negated {
		p |= 1
	}
	return p
}

func (p plit) compactVar() int { return int(p >> 1) }
func (p plit) negated() bool   { return p&1 == 1 }
func (p plit) negate() plit    { return p ^ 1 }

// insertSorted inserts lit into a slice kept sorted in ascending plit order,
// returning the updated slice. Used to restore a LiteralRemoved edit.
func insertSorted(lits []plit, lit plit) []plit {
	i := 0
	for i < len(lits) && lits[i] < lit {
		i++
	}
	lits = append(lits, 0)
	copy(lits[i+1:], lits[i:])
	lits[i] = lit
	return lits
}

// indexOfSorted returns the position of lit in a sorted slice, or -1.
func indexOfSorted(lits []plit, lit plit) int {
	lo, hi := 0, len(lits)
	for lo < hi {
		mid := (lo + hi) / 2
		switch {
		case lits[mid] == lit:
			return mid
		case lits[mid] < lit:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return -1
}
