// Package editor binds the tree store, history, clipboard and selection into
// one editing session. Every completed user action flows the same way: the
// store produces a new tree, the session swaps it in whole, pushes exactly
// one history snapshot, revalidates selection/hover against the new tree,
// and notifies subscribers with the new value.
//
// The session is single-editor and single-threaded: one event handler runs
// to completion before the next, so replaying the same action sequence on
// the same starting tree always yields the same final tree.
package editor

import (
	"github.com/pagewright/canvas/internal/clipboard"
	"github.com/pagewright/canvas/internal/dnd"
	"github.com/pagewright/canvas/internal/history"
	"github.com/pagewright/canvas/internal/selection"
	"github.com/pagewright/canvas/internal/tree"
)

// Session owns the current tree and the managers around it.
type Session struct {
	store *tree.Store
	log   *history.Log
	clip  clipboard.Clipboard
	sel   selection.Tracker

	current tree.Tree
	subs    []func(tree.Tree)
}

// NewSession starts a session over an initial tree. The initial tree is
// history entry zero, so undoing the first mutation restores the loaded
// page. historyLimit <= 0 uses the engine default.
func NewSession(isContainer tree.ContainerFunc, initial tree.Tree, historyLimit int) *Session {
	s := &Session{
		store:   tree.NewStore(isContainer),
		log:     history.NewLog(historyLimit),
		current: initial.Copy(),
	}
	s.log.Push(s.current)
	return s
}

// Store exposes the session's tree store (drag/drop coordinators commit
// through it).
func (s *Session) Store() *tree.Store {
	return s.store
}

// Tree returns the current tree value. Operations never mutate a committed
// tree in place, so the returned value is stable; treat it as read-only.
func (s *Session) Tree() tree.Tree {
	return s.current
}

// Subscribe registers fn to receive every tree value the session commits,
// in order. The UI binding layer subscribes to this sequence rather than to
// mutation events on a shared object.
func (s *Session) Subscribe(fn func(tree.Tree)) {
	s.subs = append(s.subs, fn)
}

// commit swaps in next if it differs from the current tree. Exactly one
// history push per commit.
func (s *Session) commit(next tree.Tree) bool {
	if tree.Equal(next, s.current) {
		return false
	}
	s.swap(next)
	s.log.Push(next)
	return true
}

// swap replaces the current tree, revalidates weak references, and notifies.
func (s *Session) swap(next tree.Tree) {
	s.current = next
	s.sel.Revalidate(next)
	for _, fn := range s.subs {
		fn(next)
	}
}

// Insert splices node into the tree (empty parentID: root sequence) and
// reports whether anything changed.
func (s *Session) Insert(node *tree.Instance, parentID string, index int) bool {
	return s.commit(s.store.Insert(s.current, node, parentID, index))
}

// Remove deletes the node and its subtree.
func (s *Session) Remove(id string) bool {
	return s.commit(s.store.Remove(s.current, id))
}

// Move relocates the node under newParentID at the clamped index, as one
// action with one history entry.
func (s *Session) Move(id, newParentID string, index int) bool {
	return s.commit(s.store.Move(s.current, id, newParentID, index))
}

// UpdateProps shallow-merges partial into the node's props.
func (s *Session) UpdateProps(id string, partial tree.Props) bool {
	return s.commit(s.store.UpdateProps(s.current, id, partial))
}

// Duplicate clones the node (fresh IDs throughout) and inserts the clone
// right after the original, under the same parent. Returns the clone's root
// ID.
func (s *Session) Duplicate(id string) (string, bool) {
	node := tree.Find(s.current, id)
	if node == nil {
		return "", false
	}
	parentID := ""
	siblings := s.current
	if parent := tree.FindParent(s.current, id); parent != nil {
		parentID = parent.ID
		siblings = parent.Children
	}
	index := len(siblings)
	for i, n := range siblings {
		if n.ID == id {
			index = i + 1
			break
		}
	}
	clone := node.Clone()
	if !s.commit(s.store.Insert(s.current, clone, parentID, index)) {
		return "", false
	}
	return clone.ID, true
}

// ApplyDrop commits a drag gesture through the session so the drop lands as
// one history entry. Returns whether the tree changed.
func (s *Session) ApplyDrop(c *dnd.Coordinator) bool {
	next, committed := c.Drop(s.current)
	if !committed {
		return false
	}
	return s.commit(next)
}

// Copy captures the node into the clipboard. The tree is untouched.
func (s *Session) Copy(id string) bool {
	node := tree.Find(s.current, id)
	if node == nil {
		return false
	}
	s.clip.Put(node)
	return true
}

// Cut is copy followed by remove, as one user-visible action with one
// history entry.
func (s *Session) Cut(id string) bool {
	if !s.Copy(id) {
		return false
	}
	return s.commit(s.store.Remove(s.current, id))
}

// Paste clones the clipboard subtree (fresh IDs, so pasting twice never
// collides) and inserts it at the target. Empty clipboard is a no-op.
// Returns the pasted root's ID.
func (s *Session) Paste(parentID string, index int) (string, bool) {
	held := s.clip.Peek()
	if held == nil {
		return "", false
	}
	clone := held.Clone()
	if !s.commit(s.store.Insert(s.current, clone, parentID, index)) {
		return "", false
	}
	return clone.ID, true
}

// ClipboardEmpty reports whether paste would be a no-op.
func (s *Session) ClipboardEmpty() bool {
	return s.clip.Empty()
}

// SetTree replaces the whole tree (bulk load) and pushes one history entry.
func (s *Session) SetTree(t tree.Tree) {
	next := t.Copy()
	s.swap(next)
	s.log.Push(next)
}

// Undo restores the previous snapshot. No history push; selection is
// revalidated against the restored tree.
func (s *Session) Undo() bool {
	snapshot, ok := s.log.Undo()
	if !ok {
		return false
	}
	s.swap(snapshot)
	return true
}

// Redo restores the next snapshot.
func (s *Session) Redo() bool {
	snapshot, ok := s.log.Redo()
	if !ok {
		return false
	}
	s.swap(snapshot)
	return true
}

// CanUndo reports whether Undo would change the tree.
func (s *Session) CanUndo() bool {
	return s.log.CanUndo()
}

// CanRedo reports whether Redo would change the tree.
func (s *Session) CanRedo() bool {
	return s.log.CanRedo()
}

// HistoryLen returns the number of retained snapshots.
func (s *Session) HistoryLen() int {
	return s.log.Len()
}

// Select marks id as the selected node; empty clears.
func (s *Session) Select(id string) {
	if id != "" && !tree.Contains(s.current, id) {
		return
	}
	s.sel.Select(id)
}

// Hover marks id as the hovered node; empty clears.
func (s *Session) Hover(id string) {
	if id != "" && !tree.Contains(s.current, id) {
		return
	}
	s.sel.Hover(id)
}

// Selected returns the selected node's ID, if it still exists.
func (s *Session) Selected() (string, bool) {
	return s.sel.Selected()
}

// Hovered returns the hovered node's ID, if it still exists.
func (s *Session) Hovered() (string, bool) {
	return s.sel.Hovered()
}
