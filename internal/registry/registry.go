// Package registry is the component catalog: the set of component types the
// palette offers, each with its container capability and default props. The
// engine consumes it only through the IsContainer predicate; everything else
// serves the palette and document loading.
package registry

import (
	"fmt"

	"github.com/pagewright/canvas/internal/tree"
)

// Definition describes one component type.
type Definition struct {
	// Type is the unique component kind tag.
	Type string
	// Label is the human-readable palette name.
	Label string
	// Container marks the type as able to hold children.
	Container bool
	// Defaults are the props a fresh instance starts with.
	Defaults tree.Props
	// Tags group components in the palette.
	Tags []string
}

// Registry maps component types to their definitions, preserving
// registration order for palette listing.
type Registry struct {
	defs  map[string]Definition
	order []string
}

// New builds a registry from the given definitions. Duplicate types are an
// error: the catalog is authored configuration, not runtime input.
func New(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[string]Definition, len(defs))}
	for _, d := range defs {
		if err := r.register(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Registry) register(d Definition) error {
	if d.Type == "" {
		return fmt.Errorf("component definition with empty type")
	}
	if _, dup := r.defs[d.Type]; dup {
		return fmt.Errorf("duplicate component type %q", d.Type)
	}
	r.defs[d.Type] = d
	r.order = append(r.order, d.Type)
	return nil
}

// IsContainer is the capability predicate handed to the tree store.
// Unknown types are leaves.
func (r *Registry) IsContainer(componentType string) bool {
	return r.defs[componentType].Container
}

// Lookup returns the definition for a type.
func (r *Registry) Lookup(componentType string) (Definition, bool) {
	d, ok := r.defs[componentType]
	return d, ok
}

// Definitions lists the catalog in registration order.
func (r *Registry) Definitions() []Definition {
	out := make([]Definition, 0, len(r.order))
	for _, typ := range r.order {
		out = append(out, r.defs[typ])
	}
	return out
}

// Fresh builds a new instance of the type with a generated ID, copied
// defaults, and metadata echoing the catalog entry. Returns false for an
// unknown type.
func (r *Registry) Fresh(componentType string) (*tree.Instance, bool) {
	d, ok := r.defs[componentType]
	if !ok {
		return nil, false
	}
	n := tree.NewInstance(d.Type, d.Defaults, d.Container)
	n.Meta = &tree.Metadata{Tags: d.Tags, Container: d.Container}
	return n, true
}

// Template returns the palette drag payload for a type.
func (r *Registry) Template(componentType string) (tree.Props, bool, bool) {
	d, ok := r.defs[componentType]
	if !ok {
		return nil, false, false
	}
	return d.Defaults.Copy(), d.Container, true
}

// Builtin is the default catalog used when no registry file is given.
func Builtin() *Registry {
	r, err := New(
		Definition{Type: "section", Label: "Section", Container: true, Tags: []string{"layout"}},
		Definition{Type: "columns", Label: "Columns", Container: true, Defaults: tree.Props{"count": 2}, Tags: []string{"layout"}},
		Definition{Type: "text", Label: "Text", Defaults: tree.Props{"content": "Edit me"}, Tags: []string{"content"}},
		Definition{Type: "heading", Label: "Heading", Defaults: tree.Props{"content": "Heading", "level": 2}, Tags: []string{"content"}},
		Definition{Type: "image", Label: "Image", Defaults: tree.Props{"src": "", "alt": ""}, Tags: []string{"media"}},
		Definition{Type: "button", Label: "Button", Defaults: tree.Props{"label": "Click", "href": "#"}, Tags: []string{"content"}},
	)
	if err != nil {
		panic(err) // built-in catalog is static; a duplicate here is a programming error
	}
	return r
}
