// Package selection tracks the selected and hovered node as weak references:
// plain IDs looked up against the current tree, never stored node handles.
// Revalidate runs after every tree change and clears whichever reference no
// longer resolves, so "removing the selected node clears the selection" falls
// out of one place instead of every mutating call site.
package selection

import "github.com/pagewright/canvas/internal/tree"

// Tracker holds the two nullable ID references.
type Tracker struct {
	selected string
	hovered  string
}

// Select records id as the current selection. An empty id clears it.
func (tr *Tracker) Select(id string) {
	tr.selected = id
}

// Hover records id as the currently hovered node. An empty id clears it.
func (tr *Tracker) Hover(id string) {
	tr.hovered = id
}

// Selected returns the selected ID, if any.
func (tr *Tracker) Selected() (string, bool) {
	return tr.selected, tr.selected != ""
}

// Hovered returns the hovered ID, if any.
func (tr *Tracker) Hovered() (string, bool) {
	return tr.hovered, tr.hovered != ""
}

// Revalidate clears any reference that no longer exists in t.
func (tr *Tracker) Revalidate(t tree.Tree) {
	if tr.selected != "" && !tree.Contains(t, tr.selected) {
		tr.selected = ""
	}
	if tr.hovered != "" && !tree.Contains(t, tr.hovered) {
		tr.hovered = ""
	}
}
