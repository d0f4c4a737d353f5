// Package doc converts between the wire form of a page (api.Document) and
// the engine's tree. It sits at the persistence boundary: the engine never
// sees a Document, and a Document never aliases live tree nodes.
//
// Loading is the constructor of record for bulk-set trees, so it enforces
// what the engine assumes: every node has an ID and a type, IDs are unique,
// and only container-capable types carry children.
package doc

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/ohler55/ojg/oj"
	"github.com/pagewright/canvas/api"
	"github.com/pagewright/canvas/internal/tree"
)

// SchemaVersion is written into saved documents.
const SchemaVersion = "v1"

// ToTree builds an engine tree from a document. Components without an ID get
// a generated one; a missing type, a duplicate ID, or children on a
// non-container type is an error.
func ToTree(d *api.Document, isContainer tree.ContainerFunc) (tree.Tree, error) {
	if isContainer == nil {
		isContainer = func(string) bool { return false }
	}
	seen := make(map[string]struct{})
	out := make(tree.Tree, 0, len(d.Nodes))
	for i := range d.Nodes {
		n, err := toInstance(&d.Nodes[i], isContainer, seen)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func toInstance(c *api.Component, isContainer tree.ContainerFunc, seen map[string]struct{}) (*tree.Instance, error) {
	if c.Type == "" {
		return nil, fmt.Errorf("component %q has no type", c.ID)
	}
	id := c.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, dup := seen[id]; dup {
		return nil, fmt.Errorf("duplicate component id %q", id)
	}
	seen[id] = struct{}{}

	n := &tree.Instance{ID: id, Type: c.Type, Props: tree.Props(c.Props).Copy()}
	if c.Meta != nil {
		n.Meta = &tree.Metadata{
			Tags:      c.Meta.Tags,
			Container: c.Meta.Container,
			Version:   c.Meta.Version,
		}
	}
	if !isContainer(c.Type) {
		if len(c.Children) > 0 {
			return nil, fmt.Errorf("component %q (type %s) is not a container but has children", id, c.Type)
		}
		return n, nil
	}
	n.Children = make([]*tree.Instance, 0, len(c.Children))
	for i := range c.Children {
		child, err := toInstance(&c.Children[i], isContainer, seen)
		if err != nil {
			return nil, err
		}
		n.Children = append(n.Children, child)
	}
	return n, nil
}

// FromTree builds the wire form of a tree.
func FromTree(t tree.Tree, title string) *api.Document {
	d := &api.Document{Version: SchemaVersion, Title: title, Nodes: make([]api.Component, 0, len(t))}
	for _, n := range t {
		d.Nodes = append(d.Nodes, fromInstance(n))
	}
	return d
}

func fromInstance(n *tree.Instance) api.Component {
	c := api.Component{ID: n.ID, Type: n.Type, Props: map[string]any(n.Props.Copy())}
	if n.Meta != nil {
		c.Meta = &api.Meta{Tags: n.Meta.Tags, Container: n.Meta.Container, Version: n.Meta.Version}
	}
	for _, child := range n.Children {
		c.Children = append(c.Children, fromInstance(child))
	}
	return c
}

// LoadFile reads a page document from a JSON file.
func LoadFile(path string) (*api.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document %s: %w", path, err)
	}
	var d api.Document
	if err := oj.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse document %s: %w", path, err)
	}
	return &d, nil
}

// SaveFile writes a page document as indented JSON.
func SaveFile(path string, d *api.Document) error {
	data, err := oj.Marshal(d, 2)
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	return nil
}
