package tree

import "reflect"

// Tree is the ordered forest of root-level instances. Order is display order.
//
// All traversals use an explicit work stack instead of recursion: document
// depth is user-controlled, and a pathological page must not be able to
// exhaust the call stack.
type Tree []*Instance

// Copy deep-copies the whole forest, preserving IDs.
func (t Tree) Copy() Tree {
	if t == nil {
		return nil
	}
	out := make(Tree, len(t))
	for i, n := range t {
		out[i] = n.Copy()
	}
	return out
}

// Count returns the number of nodes in the forest.
func Count(t Tree) int {
	n := 0
	Walk(t, func(*Instance, *Instance) bool {
		n++
		return true
	})
	return n
}

// Walk visits every node in pre-order, passing each node and its parent
// (nil for roots). Returning false stops the walk.
func Walk(t Tree, fn func(n, parent *Instance) bool) {
	type frame struct {
		node   *Instance
		parent *Instance
	}
	stack := make([]frame, 0, len(t))
	for i := len(t) - 1; i >= 0; i-- {
		stack = append(stack, frame{t[i], nil})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(f.node, f.parent) {
			return
		}
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.node})
		}
	}
}

// Find returns the node with the given ID, or nil.
func Find(t Tree, id string) *Instance {
	var found *Instance
	Walk(t, func(n, _ *Instance) bool {
		if n.ID == id {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindParent returns the parent of the node with the given ID. It returns
// nil both when the node sits at root level and when the ID is absent;
// callers that need the distinction check Contains first.
func FindParent(t Tree, id string) *Instance {
	var parent *Instance
	Walk(t, func(n, p *Instance) bool {
		if n.ID == id {
			parent = p
			return false
		}
		return true
	})
	return parent
}

// Contains reports whether the ID exists anywhere in the forest.
func Contains(t Tree, id string) bool {
	return Find(t, id) != nil
}

// IsDescendant reports whether id sits strictly below ancestorID.
func IsDescendant(t Tree, ancestorID, id string) bool {
	root := Find(t, ancestorID)
	if root == nil {
		return false
	}
	stack := append([]*Instance{}, root.Children...)
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.ID == id {
			return true
		}
		stack = append(stack, n.Children...)
	}
	return false
}

// IDs returns the set of every ID in the forest.
func IDs(t Tree) map[string]struct{} {
	out := make(map[string]struct{})
	Walk(t, func(n, _ *Instance) bool {
		out[n.ID] = struct{}{}
		return true
	})
	return out
}

// Equal reports structural equality of two forests: same shape, same IDs,
// types, props and metadata, same sibling order, and the same
// container-vs-absent children distinction. This is the comparison the
// rejected-vs-no-op contract is defined in terms of.
func Equal(a, b Tree) bool {
	if len(a) != len(b) {
		return false
	}
	type pair struct{ a, b *Instance }
	stack := make([]pair, 0, len(a))
	for i := range a {
		stack = append(stack, pair{a[i], b[i]})
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if p.a.ID != p.b.ID || p.a.Type != p.b.Type {
			return false
		}
		if !propsEqual(p.a.Props, p.b.Props) {
			return false
		}
		if !reflect.DeepEqual(p.a.Meta, p.b.Meta) {
			return false
		}
		if (p.a.Children == nil) != (p.b.Children == nil) {
			return false
		}
		if len(p.a.Children) != len(p.b.Children) {
			return false
		}
		for i := range p.a.Children {
			stack = append(stack, pair{p.a.Children[i], p.b.Children[i]})
		}
	}
	return true
}

func propsEqual(a, b Props) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || !reflect.DeepEqual(av, bv) {
			return false
		}
	}
	return true
}
