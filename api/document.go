package api

// Document is the wire form of one editable page: a title plus the ordered
// root sequence of component instances. The serialization format belongs to
// the persistence layer; the engine only sees the tree built from it.
type Document struct {
	// Version of the document schema.
	Version string `json:"version"`
	// Title of the page (informational, not used by the engine).
	Title string `json:"title,omitempty"`
	// Nodes is the root-level component sequence, in display order.
	Nodes []Component `json:"nodes,omitempty"`
}

// Component is the wire form of one component instance.
// Whether a type may carry children is decided by the component registry,
// not by the presence of the children key.
type Component struct {
	// ID must be unique across the whole document. Empty IDs are assigned
	// at load time.
	ID string `json:"id"`
	// Type is the component kind, resolved by the registry/renderer.
	Type string `json:"type"`
	// Props are the instance's own settings.
	Props map[string]any `json:"props,omitempty"`
	// Children, in display order. Only valid on container-capable types.
	Children []Component `json:"children,omitempty"`
	// Meta is an optional descriptive bag.
	Meta *Meta `json:"meta,omitempty"`
}

// Meta carries descriptive attributes for a component instance.
type Meta struct {
	Tags      []string `json:"tags,omitempty"`
	Container bool     `json:"container,omitempty"`
	Version   string   `json:"version,omitempty"`
}
