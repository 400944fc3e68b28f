package cnf

// index maps each packed literal to the clause ids whose current literal
// set contains it. occ holds the ids themselves; occPos gives each id's
// position within occ[lit] so detach can remove it in O(1) by swapping
// with the last entry, the same technique the teacher package used for its
// single-slot watch lists, generalized here to lists of unbounded length.
//
// The index tolerates staleness: when a clause is deleted wholesale, only
// the literal that triggered the deletion is detached from its bucket
// (recorded as an OccurrenceRemoved edit); the clause's other literals are
// left in their buckets, live or not, until something else processes them.
// Every reader that cares about liveness (the propagator, the heuristics)
// filters on f.live when it iterates a bucket.
type index struct {
	occ    [][]ClauseID
	occPos []map[ClauseID]int
}

func newIndex(numLits int) index {
	idx := index{
		occ:    make([][]ClauseID, numLits),
		occPos: make([]map[ClauseID]int, numLits),
	}
	for i := range idx.occPos {
		idx.occPos[i] = make(map[ClauseID]int)
	}
	return idx
}

// attach adds id to lit's bucket without recording an undo edit. Used while
// building the index from the live clause set, before any decision frame
// exists (build is preprocessing, and preprocessing is not undoable), and by
// restoreOccurrenceRemoved to undo a detach.
func (f *Formula) attach(lit plit, id ClauseID) {
	pos := len(f.occ[lit])
	f.occ[lit] = append(f.occ[lit], id)
	f.occPos[lit][id] = pos
}

// detach removes id from lit's bucket and records the edit needed to put it
// back on restore.
func (f *Formula) detach(lit plit, id ClauseID) {
	pos, ok := f.occPos[lit][id]
	if !ok {
		panic("cnf: detach of an id not present in the occurrence bucket")
	}
	bucket := f.occ[lit]
	last := len(bucket) - 1
	moved := bucket[last]
	bucket[pos] = moved
	f.occ[lit] = bucket[:last]
	if moved != id {
		f.occPos[lit][moved] = pos
	}
	delete(f.occPos[lit], id)
	f.trail.record(edit{kind: editOccurrenceRemoved, id: id, lit: lit})
}

// restoreOccurrenceRemoved undoes a detach. Position within the bucket is
// not semantically significant (only cross-literal ascending-id order is),
// so the id is simply appended back.
func (f *Formula) restoreOccurrenceRemoved(e edit) {
	f.attach(e.lit, e.id)
}

// liveOccurrence returns the ids in lit's bucket that are still live,
// filtering the staleness described above. It never mutates the formula,
// so it is safe to call from the (referentially transparent) heuristics.
func (f *Formula) liveOccurrence(lit plit) []ClauseID {
	bucket := f.occ[lit]
	out := make([]ClauseID, 0, len(bucket))
	for _, id := range bucket {
		if f.live[id] {
			out = append(out, id)
		}
	}
	return out
}
