// Package dnd tracks one in-flight drag gesture and turns a completed drop
// into a tree operation. The coordinator never mutates a tree before commit,
// so cancelling a gesture at any point is always safe.
package dnd

import "github.com/pagewright/canvas/internal/tree"

// Source says where the dragged payload came from.
type Source int

const (
	// SourcePalette drags a component template; dropping creates a fresh
	// instance.
	SourcePalette Source = iota
	// SourceCanvas drags an existing node; dropping relocates it.
	SourceCanvas
)

// Template is the palette payload: a component type plus its defaults, with
// the registry's container flag echoed so the drop can build a well-formed
// instance without a registry round trip.
type Template struct {
	Type      string
	Defaults  tree.Props
	Container bool
}

// Target identifies where a drop would land. A gap target carries an
// explicit (parent, index) pair: the space between two siblings or the
// single gap inside an empty container. An on-node target re-parents into
// the node, appending.
type Target struct {
	// NodeID is set for on-node targets.
	NodeID string
	// ParentID is the container the drop resolves into; empty means the
	// root sequence.
	ParentID string
	// Index is the insertion index for gap targets; -1 (append) for
	// on-node targets.
	Index int
	// Gap distinguishes gap targets from on-node targets.
	Gap bool
}

type state int

const (
	idle state = iota
	dragging
)

// Coordinator is the single-gesture state machine. It is driven by pointer
// events: Start* on gesture start, Hover* on every pointer move, then either
// Drop or Cancel.
type Coordinator struct {
	store *tree.Store

	state  state
	source Source
	tpl    Template
	node   *tree.Instance // canvas payload, captured by value at drag start
	target *Target
}

// NewCoordinator builds a coordinator committing drops through store.
func NewCoordinator(store *tree.Store) *Coordinator {
	return &Coordinator{store: store}
}

// Dragging reports whether a gesture is in flight.
func (c *Coordinator) Dragging() bool {
	return c.state == dragging
}

// Target returns the current legal drop target, if any.
func (c *Coordinator) Target() (Target, bool) {
	if c.state != dragging || c.target == nil {
		return Target{}, false
	}
	return *c.target, true
}

// StartPalette begins a gesture dragging a fresh template from the palette.
func (c *Coordinator) StartPalette(tpl Template) {
	c.state = dragging
	c.source = SourcePalette
	c.tpl = tpl
	c.node = nil
	c.target = nil
}

// StartCanvas begins a gesture dragging an existing node. The node's value
// is captured at drag start, so later tree changes elsewhere don't
// retroactively change what is being dragged. Returns false when the ID
// doesn't resolve.
func (c *Coordinator) StartCanvas(t tree.Tree, id string) bool {
	n := tree.Find(t, id)
	if n == nil {
		return false
	}
	c.state = dragging
	c.source = SourceCanvas
	c.node = n.Copy()
	c.target = nil
	return true
}

// HoverNode recomputes the target for a pointer position over a node. The
// node is a legal on-node target only when it is container-capable, is not
// the dragged node, and (for canvas drags) is not a descendant of the
// dragged node. An illegal hover clears the target so the UI can show a
// no-drop indicator.
func (c *Coordinator) HoverNode(t tree.Tree, nodeID string) bool {
	if c.state != dragging {
		return false
	}
	c.target = nil
	n := tree.Find(t, nodeID)
	if n == nil || !c.store.IsContainer(n.Type) {
		return false
	}
	if !c.legalParent(t, nodeID) {
		return false
	}
	c.target = &Target{NodeID: nodeID, ParentID: nodeID, Index: -1}
	return true
}

// HoverGap recomputes the target for a pointer position over the gap at
// index under parentID (empty parentID: the root sequence). Legality rules
// match HoverNode, applied to the gap's parent.
func (c *Coordinator) HoverGap(t tree.Tree, parentID string, index int) bool {
	if c.state != dragging {
		return false
	}
	c.target = nil
	if parentID != "" {
		p := tree.Find(t, parentID)
		if p == nil || !c.store.IsContainer(p.Type) {
			return false
		}
		if !c.legalParent(t, parentID) {
			return false
		}
	}
	c.target = &Target{ParentID: parentID, Index: index, Gap: true}
	return true
}

// Leave clears the target without ending the gesture (pointer moved off any
// drop zone).
func (c *Coordinator) Leave() {
	if c.state == dragging {
		c.target = nil
	}
}

// Drop ends the gesture. With no legal target the gesture is abandoned and
// the input tree returned as-is. Otherwise the payload is committed: palette
// templates become a fresh instance inserted at the target, canvas nodes are
// moved there. The second return value says a commit was attempted; the
// target may still have gone stale, in which case the store silently returns
// the tree unchanged.
func (c *Coordinator) Drop(t tree.Tree) (tree.Tree, bool) {
	target := c.target
	source := c.source
	tpl := c.tpl
	node := c.node
	c.reset()

	if target == nil {
		return t, false
	}
	switch source {
	case SourcePalette:
		fresh := tree.NewInstance(tpl.Type, tpl.Defaults, tpl.Container)
		return c.store.Insert(t, fresh, target.ParentID, target.Index), true
	default:
		return c.store.Move(t, node.ID, target.ParentID, target.Index), true
	}
}

// Cancel abandons the gesture, discarding payload and target. The tree is
// never touched.
func (c *Coordinator) Cancel() {
	c.reset()
}

func (c *Coordinator) reset() {
	c.state = idle
	c.node = nil
	c.tpl = Template{}
	c.target = nil
}

// legalParent applies the self/descendant guard for canvas drags: the drop
// parent may not be the dragged node or sit anywhere inside its subtree.
// Checked on hover so the UI can reject before commit, and enforced again by
// Store.Move at drop time.
func (c *Coordinator) legalParent(t tree.Tree, parentID string) bool {
	if c.source != SourceCanvas {
		return true
	}
	if parentID == c.node.ID {
		return false
	}
	return !tree.IsDescendant(t, c.node.ID, parentID)
}
