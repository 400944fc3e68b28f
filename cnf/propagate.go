package cnf

// assign records that lit has been decided true — the contract assumed by
// assignLiteral in the distilled design: here the two steps (record the
// assignment, then simplify the residual formula under it) are bundled
// into one call so every caller, whether the unit-propagation loop or a
// driver's decision step, gets both for free and in the right order.
func (f *Formula) assign(lit plit) {
	v := lit.compactVar()
	f.trail.record(edit{kind: editAssignmentAdded, v: v})
	f.assigned[v] = true
	f.value[v] = !lit.negated()
	f.assignCount++
	f.assignLiteral(lit)
}

// assignLiteral simplifies the residual formula once lit's truth value is
// fixed: clauses containing a now-true literal are satisfied and removed;
// clauses containing a now-false literal have that literal deleted. Both
// lit and its negation are processed, since fixing lit also fixes -lit.
func (f *Formula) assignLiteral(lit plit) {
	v := f.valueOf(lit)
	f.simplifyFor(lit, v)
	f.simplifyFor(lit.negate(), !v)
}

// simplifyFor processes every clause currently containing lit: it detaches
// lit from the clause (whether or not the clause survives), and then, for
// clauses still live, either deletes the whole clause (lit is true in it,
// so it is satisfied) or deletes just lit (lit is false in it, so it
// shrinks). The occurrence bucket is snapshotted before the loop since
// detach mutates it in place.
func (f *Formula) simplifyFor(lit plit, litIsTrue bool) {
	bucket := f.occ[lit]
	ids := make([]ClauseID, len(bucket))
	copy(ids, bucket)

	for _, id := range ids {
		f.detach(lit, id)
		if !f.live[id] {
			continue
		}
		if litIsTrue {
			f.deleteClause(id)
		} else {
			f.deleteLiteral(id, lit)
		}
	}
}

// valueOf returns the boolean value the current assignment gives to lit.
// The variable must already be assigned.
func (f *Formula) valueOf(lit plit) bool {
	v := f.value[lit.compactVar()]
	if lit.negated() {
		return !v
	}
	return v
}

// PropagateUnits runs unit propagation to a fixed point: it repeatedly
// looks for an empty live clause (UNSAT), an empty live clause set (SAT),
// or a unit clause to propagate, stopping only when none of the three
// apply (Undecided, meaning a branching heuristic must be consulted).
//
// Scanning is in ascending clause id, which is the documented, deterministic
// tie-break for which unit clause is propagated first when more than one
// exists; emptiness is checked across the whole live set before any unit is
// chosen, so an empty clause always wins regardless of its id relative to
// any unit clause found.
func (f *Formula) PropagateUnits() Status {
	for {
		if f.liveCount == 0 {
			return StatusSat
		}
		for id := range f.clauses {
			if f.live[id] && len(f.clauses[id]) == 0 {
				return StatusUnsat
			}
		}
		unit := -1
		for id := range f.clauses {
			if f.live[id] && len(f.clauses[id]) == 1 {
				unit = id
				break
			}
		}
		if unit < 0 {
			return StatusUndecided
		}
		f.assign(f.clauses[unit][0])
	}
}

// AssignDecision records a heuristic- or caller-chosen decision: variable v
// (an original, positive variable id) is set to phase. It is the driver's
// entry point into the propagator for branching, as opposed to the
// internal unit-propagation calls PropagateUnits makes on its own.
func (f *Formula) AssignDecision(v int, phase bool) {
	idx, ok := f.varIdx[v]
	if !ok {
		panic("cnf: AssignDecision on a variable outside the formula")
	}
	f.assign(packLit(idx, !phase))
}

// Assignment returns a snapshot of the current (possibly partial)
// assignment, keyed by original variable id.
func (f *Formula) Assignment() map[int]bool {
	out := make(map[int]bool)
	for i, v := range f.vars {
		if f.assigned[i] {
			out[v] = f.value[i]
		}
	}
	return out
}

// AssignCount returns the total number of variable assignments made so
// far across decisions and unit propagation combined.
func (f *Formula) AssignCount() int64 { return f.assignCount }
