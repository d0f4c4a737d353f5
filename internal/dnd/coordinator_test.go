package dnd

import (
	"testing"

	"github.com/pagewright/canvas/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isSection(componentType string) bool {
	return componentType == "section"
}

func fixture() (*tree.Store, tree.Tree) {
	store := tree.NewStore(isSection)
	t := tree.Tree{
		&tree.Instance{ID: "A", Type: "text", Props: tree.Props{"content": "hello"}},
		&tree.Instance{ID: "B", Type: "section", Children: []*tree.Instance{
			{ID: "C", Type: "text"},
			{ID: "D", Type: "section", Children: []*tree.Instance{}},
		}},
	}
	return store, t
}

func TestPaletteDropOnNode(t *testing.T) {
	store, base := fixture()
	c := NewCoordinator(store)

	c.StartPalette(Template{Type: "text", Defaults: tree.Props{"content": "new"}})
	require.True(t, c.Dragging())
	require.True(t, c.HoverNode(base, "B"))

	out, committed := c.Drop(base)
	assert.True(t, committed)
	assert.False(t, c.Dragging())

	b := tree.Find(out, "B")
	require.Len(t, b.Children, 3)
	added := b.Children[2]
	assert.Equal(t, "text", added.Type)
	assert.Equal(t, "new", added.Props["content"])
	assert.NotEmpty(t, added.ID)
	// input tree untouched
	assert.Len(t, tree.Find(base, "B").Children, 2)
}

func TestPaletteDropIntoRootGap(t *testing.T) {
	store, base := fixture()
	c := NewCoordinator(store)

	c.StartPalette(Template{Type: "section", Container: true})
	require.True(t, c.HoverGap(base, "", 0))

	out, committed := c.Drop(base)
	assert.True(t, committed)
	require.Len(t, out, 3)
	assert.Equal(t, "section", out[0].Type)
	require.NotNil(t, out[0].Children, "container template lands as an empty container")
	assert.Empty(t, out[0].Children)
}

func TestCanvasDropMoves(t *testing.T) {
	store, base := fixture()
	c := NewCoordinator(store)

	require.True(t, c.StartCanvas(base, "A"))
	require.True(t, c.HoverGap(base, "B", 1))

	out, committed := c.Drop(base)
	assert.True(t, committed)
	b := tree.Find(out, "B")
	assert.Equal(t, []string{"C", "A", "D"}, ids(b.Children))
	assert.Len(t, out, 1)
}

func TestHoverNonContainerIllegal(t *testing.T) {
	store, base := fixture()
	c := NewCoordinator(store)

	c.StartPalette(Template{Type: "text"})
	assert.False(t, c.HoverNode(base, "A"), "on-node drop on a leaf is never legal")
	_, ok := c.Target()
	assert.False(t, ok)

	// only its sibling gaps accept the drop
	assert.True(t, c.HoverGap(base, "", 1))
	target, ok := c.Target()
	require.True(t, ok)
	assert.True(t, target.Gap)
	assert.Equal(t, 1, target.Index)
}

func TestHoverSelfAndDescendantIllegal(t *testing.T) {
	store, base := fixture()
	c := NewCoordinator(store)

	require.True(t, c.StartCanvas(base, "B"))
	assert.False(t, c.HoverNode(base, "B"), "self-drop")
	assert.False(t, c.HoverNode(base, "D"), "descendant drop")
	assert.False(t, c.HoverGap(base, "D", 0), "gap inside own subtree")
	assert.True(t, c.HoverGap(base, "", 0), "root gap stays legal")
}

func TestDropWithoutTargetAbandons(t *testing.T) {
	store, base := fixture()
	c := NewCoordinator(store)

	require.True(t, c.StartCanvas(base, "A"))
	require.True(t, c.HoverNode(base, "B"))
	c.Leave()

	out, committed := c.Drop(base)
	assert.False(t, committed)
	assert.True(t, tree.Equal(base, out))
	assert.False(t, c.Dragging())
}

func TestCancelNeverTouchesTree(t *testing.T) {
	store, base := fixture()
	c := NewCoordinator(store)

	require.True(t, c.StartCanvas(base, "A"))
	require.True(t, c.HoverNode(base, "B"))
	c.Cancel()

	assert.False(t, c.Dragging())
	_, ok := c.Target()
	assert.False(t, ok)
}

func TestStaleTargetDropIsSilentNoop(t *testing.T) {
	store, base := fixture()
	c := NewCoordinator(store)

	require.True(t, c.StartCanvas(base, "A"))
	require.True(t, c.HoverNode(base, "B"))

	// target vanishes between hover and drop
	shrunk := store.Remove(base, "B")
	out, committed := c.Drop(shrunk)
	assert.True(t, committed)
	assert.True(t, tree.Equal(shrunk, out))
}

func TestPayloadCapturedAtDragStart(t *testing.T) {
	store, base := fixture()
	c := NewCoordinator(store)

	require.True(t, c.StartCanvas(base, "A"))

	// a concurrent prop edit elsewhere doesn't change the dragged value
	edited := store.UpdateProps(base, "A", tree.Props{"content": "edited"})
	require.True(t, c.HoverGap(edited, "B", 0))
	out, _ := c.Drop(edited)

	moved := tree.Find(out, "B").Children[0]
	assert.Equal(t, "A", moved.ID)
	// the move relocates the live node, so the edit survives; the captured
	// payload only pins identity, per the move-not-copy contract
	assert.Equal(t, "edited", moved.Props["content"])
}

func TestStartCanvasUnknownID(t *testing.T) {
	store, base := fixture()
	c := NewCoordinator(store)
	assert.False(t, c.StartCanvas(base, "gone"))
	assert.False(t, c.Dragging())
}

func ids(ns []*tree.Instance) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.ID
	}
	return out
}
