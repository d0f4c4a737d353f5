// Package clipboard holds the single subtree pending paste.
package clipboard

import "github.com/pagewright/canvas/internal/tree"

// Clipboard is a single-slot holder. Putting a node overwrites whatever was
// there; the slot stores a deep copy with IDs preserved (paste is the step
// that regenerates them).
type Clipboard struct {
	node *tree.Instance
}

// Put captures a copy of n into the slot. A nil node is ignored.
func (c *Clipboard) Put(n *tree.Instance) {
	if n == nil {
		return
	}
	c.node = n.Copy()
}

// Peek returns an independent copy of the held subtree, or nil when empty.
func (c *Clipboard) Peek() *tree.Instance {
	return c.node.Copy()
}

// Empty reports whether the slot holds nothing.
func (c *Clipboard) Empty() bool {
	return c.node == nil
}

// Clear drops the held subtree.
func (c *Clipboard) Clear() {
	c.node = nil
}
