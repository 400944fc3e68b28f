package cnf

// editKind identifies the four reversible edit shapes the solver records
// while simplifying the residual formula. Each kind undoes by reversing
// exactly the mutation its forward operation made.
type editKind uint8

const (
	editClauseRemoved editKind = iota
	editLiteralRemoved
	editAssignmentAdded
	editOccurrenceRemoved
)

// edit is one reversible mutation, appended to the trail frame that is open
// at the time the mutation happens.
type edit struct {
	kind editKind
	id   ClauseID // ClauseRemoved, LiteralRemoved, OccurrenceRemoved
	lit  plit     // LiteralRemoved, OccurrenceRemoved
	v    int      // AssignmentAdded: the compact variable assigned
	// saved is the clause's full literal set at the moment it was removed,
	// so ClauseRemoved can reinsert it verbatim.
	saved []plit
}

// trail is a stack of stacks of reversible edits: pushing a frame marks a
// decision point, and popping a frame undoes every edit recorded since,
// restoring the store, index, and assignment to their state at push time.
type trail struct {
	frames [][]edit
}

func (t *trail) push() {
	t.frames = append(t.frames, nil)
}

func (t *trail) record(e edit) {
	i := len(t.frames) - 1
	t.frames[i] = append(t.frames[i], e)
}

// pop removes and returns the top frame's edits, oldest first. The caller
// must apply them in reverse (LIFO) order to undo them correctly: walking
// backwards guarantees that if a clause was removed and then (earlier in
// forward time, deeper in the walk) had a literal removed from it, the
// clause reappears before that literal is reinserted into it.
func (t *trail) pop() []edit {
	i := len(t.frames) - 1
	f := t.frames[i]
	t.frames = t.frames[:i]
	return f
}

func (t *trail) depth() int { return len(t.frames) }
