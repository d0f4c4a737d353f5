// Package history keeps a bounded, linear undo/redo log of whole-tree
// snapshots. One snapshot is pushed per completed user action; a composite
// action like a move is a single push.
package history

import "github.com/pagewright/canvas/internal/tree"

// DefaultLimit is the engine's default snapshot capacity.
const DefaultLimit = 50

// Log is the snapshot list plus the index of the current entry. Undo and
// redo move the index; a push discards everything after it. Branching
// history is not supported: mutating after an undo permanently drops the
// undone-from future.
type Log struct {
	snapshots []tree.Tree
	index     int
	limit     int
}

// NewLog builds an empty log. A limit <= 0 falls back to DefaultLimit.
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{snapshots: make([]tree.Tree, 0, limit), index: -1, limit: limit}
}

// Push records a deep snapshot of t as the new current entry, truncating any
// redo-able future. When the log exceeds its capacity the oldest entry is
// evicted so the most recent entries remain.
func (l *Log) Push(t tree.Tree) {
	l.snapshots = append(l.snapshots[:l.index+1], t.Copy())
	if len(l.snapshots) > l.limit {
		over := len(l.snapshots) - l.limit
		l.snapshots = append([]tree.Tree(nil), l.snapshots[over:]...)
	}
	l.index = len(l.snapshots) - 1
}

// Undo steps back one entry and returns that snapshot. At the oldest entry
// it returns the current snapshot and false.
func (l *Log) Undo() (tree.Tree, bool) {
	if l.index <= 0 {
		return l.current(), false
	}
	l.index--
	return l.snapshots[l.index].Copy(), true
}

// Redo steps forward one entry and returns that snapshot. At the newest
// entry it returns the current snapshot and false.
func (l *Log) Redo() (tree.Tree, bool) {
	if l.index < 0 || l.index >= len(l.snapshots)-1 {
		return l.current(), false
	}
	l.index++
	return l.snapshots[l.index].Copy(), true
}

// CanUndo reports whether Undo would change the current entry.
func (l *Log) CanUndo() bool {
	return l.index > 0
}

// CanRedo reports whether Redo would change the current entry.
func (l *Log) CanRedo() bool {
	return l.index >= 0 && l.index < len(l.snapshots)-1
}

// Len returns the number of retained snapshots.
func (l *Log) Len() int {
	return len(l.snapshots)
}

func (l *Log) current() tree.Tree {
	if l.index < 0 {
		return nil
	}
	return l.snapshots[l.index].Copy()
}
