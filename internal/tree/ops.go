package tree

// Store owns the structural operations over a forest. Every operation is
// pure: it takes a tree plus arguments and returns a new tree, leaving the
// input untouched. No operation ever returns an error; a missing ID is a
// silent no-op and a structural violation returns the input tree unchanged.
// Callers that need to tell the two apart compare trees with Equal.
//
// The stale-ID policy is deliberate: a drag gesture can outlive its target,
// and "the node disappeared between hover and drop" must never crash the
// editor mid-gesture.
type Store struct {
	isContainer ContainerFunc
}

// NewStore builds a Store around the registry's capability predicate.
// A nil predicate treats every type as a leaf.
func NewStore(isContainer ContainerFunc) *Store {
	if isContainer == nil {
		isContainer = func(string) bool { return false }
	}
	return &Store{isContainer: isContainer}
}

// IsContainer exposes the capability predicate to collaborators
// (drag/drop legality checks, document loading).
func (s *Store) IsContainer(componentType string) bool {
	return s.isContainer(componentType)
}

// clampIndex maps an insertion index into [0, n]. Negative means append.
func clampIndex(index, n int) int {
	if index < 0 || index > n {
		return n
	}
	return index
}

// Insert splices a copy of node into the tree. An empty parentID targets the
// root sequence; otherwise the parent must exist and be container-capable.
// The insertion index is clamped to [0, len]; negative appends.
//
// No-op cases: nil node, a parent that no longer exists (stale drop target),
// a non-container parent, or any ID in node's subtree already present in the
// tree.
func (s *Store) Insert(t Tree, node *Instance, parentID string, index int) Tree {
	if node == nil || node.ID == "" {
		return t
	}
	existing := IDs(t)
	collision := false
	Walk(Tree{node}, func(n, _ *Instance) bool {
		if _, ok := existing[n.ID]; ok {
			collision = true
			return false
		}
		return true
	})
	if collision {
		return t
	}

	if parentID == "" {
		out := t.Copy()
		i := clampIndex(index, len(out))
		spliced := make(Tree, 0, len(out)+1)
		spliced = append(spliced, out[:i]...)
		spliced = append(spliced, node.Copy())
		spliced = append(spliced, out[i:]...)
		return spliced
	}

	target := Find(t, parentID)
	if target == nil {
		return t
	}
	if !s.isContainer(target.Type) {
		return t
	}

	out := t.Copy()
	parent := Find(out, parentID)
	i := clampIndex(index, len(parent.Children))
	kids := make([]*Instance, 0, len(parent.Children)+1)
	kids = append(kids, parent.Children[:i]...)
	kids = append(kids, node.Copy())
	kids = append(kids, parent.Children[i:]...)
	parent.Children = kids
	return out
}

// Remove filters the node with the given ID, and its whole subtree, out of
// the tree. Removing an absent ID returns the input unchanged.
func (s *Store) Remove(t Tree, id string) Tree {
	out, _ := s.Detach(t, id)
	return out
}

// Detach removes the node like Remove and also returns the detached subtree,
// which is what a move re-inserts. The detached node is independent of both
// the input and the output tree.
func (s *Store) Detach(t Tree, id string) (Tree, *Instance) {
	if id == "" || !Contains(t, id) {
		return t, nil
	}
	out := t.Copy()
	for i, n := range out {
		if n.ID == id {
			spliced := make(Tree, 0, len(out)-1)
			spliced = append(spliced, out[:i]...)
			spliced = append(spliced, out[i+1:]...)
			return spliced, n
		}
	}
	parent := FindParent(out, id)
	for i, c := range parent.Children {
		if c.ID == id {
			kids := make([]*Instance, 0, len(parent.Children)-1)
			kids = append(kids, parent.Children[:i]...)
			kids = append(kids, parent.Children[i+1:]...)
			parent.Children = kids
			return out, c
		}
	}
	return t, nil
}

// UpdateProps replaces the node's props with a shallow merge of the old map
// and partial: keys in partial win, other keys persist. The merged map is a
// fresh value; neither input map is touched. Updating an absent ID is a
// no-op.
func (s *Store) UpdateProps(t Tree, id string, partial Props) Tree {
	if !Contains(t, id) {
		return t
	}
	out := t.Copy()
	node := Find(out, id)
	merged := make(Props, len(node.Props)+len(partial))
	for k, v := range node.Props {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	node.Props = merged
	return out
}

// Move detaches the node and re-inserts it under newParentID at the clamped
// index, as one composite operation. An empty newParentID targets the root
// sequence.
//
// The move is rejected (input returned unchanged) when it would make a node
// its own ancestor: newParentID equal to id, or a descendant of id in the
// input tree. A target parent that has vanished, or is not
// container-capable, also makes the whole move a no-op; the node is never
// dropped by a half-applied move.
func (s *Store) Move(t Tree, id, newParentID string, index int) Tree {
	if id == "" || !Contains(t, id) {
		return t
	}
	if newParentID != "" {
		if newParentID == id || IsDescendant(t, id, newParentID) {
			return t
		}
		parent := Find(t, newParentID)
		if parent == nil || !s.isContainer(parent.Type) {
			return t
		}
	}
	detached, node := s.Detach(t, id)
	if node == nil {
		return t
	}
	return s.Insert(detached, node, newParentID, index)
}
