package cnf

// ClauseID is a clause's stable identity for the lifetime of a solve. Ids
// are assigned 0..n-1 at load time and are never reused.
type ClauseID int

// deleteClause removes a live clause entirely: the clause was satisfied by
// the literal currently being assigned. The edit records the clause's full
// literal set so PopFrame can reinsert it verbatim.
func (f *Formula) deleteClause(id ClauseID) {
	if !f.live[id] {
		panic("cnf: deleteClause of a clause that is not live")
	}
	saved := f.clauses[id]
	f.trail.record(edit{kind: editClauseRemoved, id: id, saved: saved})
	f.live[id] = false
	f.liveCount--
}

// deleteLiteral shrinks a live clause by removing a literal that the
// current assignment has falsified. lit must currently be a member of the
// clause.
func (f *Formula) deleteLiteral(id ClauseID, lit plit) {
	lits := f.clauses[id]
	i := indexOfSorted(lits, lit)
	if i < 0 {
		panic("cnf: deleteLiteral of a literal not present in the clause")
	}
	f.trail.record(edit{kind: editLiteralRemoved, id: id, lit: lit})
	next := make([]plit, 0, len(lits)-1)
	next = append(next, lits[:i]...)
	next = append(next, lits[i+1:]...)
	f.clauses[id] = next
}

// restoreClauseRemoved and restoreLiteralRemoved undo the two store-level
// edit kinds; PopFrame in formula.go dispatches to these through undo (and
// to the index/assignment counterparts) while walking a popped frame in
// reverse.
func (f *Formula) restoreClauseRemoved(e edit) {
	f.live[e.id] = true
	f.clauses[e.id] = e.saved
	f.liveCount++
}

func (f *Formula) restoreLiteralRemoved(e edit) {
	f.clauses[e.id] = insertSorted(f.clauses[e.id], e.lit)
}
