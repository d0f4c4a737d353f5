package tree

import "github.com/google/uuid"

// ContainerFunc reports whether a component type can hold children.
// It is supplied by the external component registry; the engine never looks
// past the type string to decide this.
type ContainerFunc func(componentType string) bool

// Props is one instance's settings. Updates replace the whole map; a Props
// value stored in a tree is never mutated in place.
type Props map[string]any

// Copy returns an independent shallow copy of the map. Values are shared,
// which is safe because props are replaced wholesale, never edited.
func (p Props) Copy() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Metadata is a descriptive bag attached by whoever built the node.
// The engine carries it through copies and never writes to it.
type Metadata struct {
	Tags      []string
	Container bool
	Version   string
}

// Instance is one node of the editable component tree.
//
// Children is nil for non-container nodes. For container-capable nodes it is
// non-nil even when empty; the two states are distinct (non-container vs
// empty container).
type Instance struct {
	ID       string
	Type     string
	Props    Props
	Children []*Instance
	Meta     *Metadata
}

// NewInstance builds a fresh node with a generated ID, as produced by a
// palette drop. defaults is copied, not aliased.
func NewInstance(componentType string, defaults Props, container bool) *Instance {
	n := &Instance{
		ID:    uuid.NewString(),
		Type:  componentType,
		Props: defaults.Copy(),
	}
	if container {
		n.Children = []*Instance{}
	}
	return n
}

// Copy deep-copies the node and its subtree, preserving every ID.
// Used for history snapshots and clipboard capture.
func (n *Instance) Copy() *Instance {
	if n == nil {
		return nil
	}
	out := &Instance{
		ID:    n.ID,
		Type:  n.Type,
		Props: n.Props.Copy(),
		Meta:  n.Meta,
	}
	if n.Children != nil {
		out.Children = make([]*Instance, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Copy()
		}
	}
	return out
}

// Clone deep-copies the node and its subtree, assigning a fresh ID to every
// node in the copy. The clone's ID set is disjoint from the source's, so
// inserting it anywhere keeps IDs unique.
func (n *Instance) Clone() *Instance {
	out := n.Copy()
	if out == nil {
		return nil
	}
	stack := []*Instance{out}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur.ID = uuid.NewString()
		stack = append(stack, cur.Children...)
	}
	return out
}
