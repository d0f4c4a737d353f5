package tree

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInstance(t *testing.T) {
	defaults := Props{"content": "hello"}
	n := NewInstance("text", defaults, false)

	require.NotEmpty(t, n.ID)
	assert.Equal(t, "text", n.Type)
	assert.Nil(t, n.Children)

	// defaults are copied, not aliased
	n.Props["content"] = "changed"
	assert.Equal(t, "hello", defaults["content"])

	c := NewInstance("section", nil, true)
	require.NotNil(t, c.Children)
	assert.Empty(t, c.Children)
	assert.NotEqual(t, n.ID, c.ID)
}

func TestCopy_PreservesIDsAndShape(t *testing.T) {
	src := section("box", text("c1"), section("inner"))
	dup := src.Copy()

	assert.True(t, Equal(Tree{src}, Tree{dup}))

	// deep: mutating the copy leaves the source alone
	dup.Children[0].Props["content"] = "changed"
	assert.Equal(t, "hello", src.Children[0].Props["content"])
}

func TestCopy_KeepsContainerDistinction(t *testing.T) {
	empty := section("box")
	leaf := text("a")

	assert.NotNil(t, empty.Copy().Children)
	assert.Nil(t, leaf.Copy().Children)
}

func TestClone_FreshIDsEverywhere(t *testing.T) {
	src := section("box", text("c1"), section("inner", text("c2")))
	dup := src.Clone()

	srcIDs := IDs(Tree{src})
	Walk(Tree{dup}, func(n, _ *Instance) bool {
		_, collides := srcIDs[n.ID]
		assert.False(t, collides, "clone reused id %s", n.ID)
		assert.NotEmpty(t, n.ID)
		return true
	})
	assert.Equal(t, Count(Tree{src}), Count(Tree{dup}))
	assert.Equal(t, "inner", dup.Children[1].Type)
}

func TestClone_MetadataCarried(t *testing.T) {
	src := &Instance{ID: "a", Type: "section", Meta: &Metadata{Container: true, Tags: []string{"hero"}}, Children: []*Instance{}}
	dup := src.Clone()
	require.NotNil(t, dup.Meta)
	assert.Equal(t, []string{"hero"}, dup.Meta.Tags)
}

func TestEqual_DistinguishesOrderAndShape(t *testing.T) {
	a := Tree{text("a"), text("b")}
	b := Tree{text("b"), text("a")}
	assert.False(t, Equal(a, b))

	// non-container vs empty container with same id/type
	withKids := Tree{&Instance{ID: "x", Type: "section", Children: []*Instance{}}}
	noKids := Tree{&Instance{ID: "x", Type: "section"}}
	assert.False(t, Equal(withKids, noKids))

	assert.True(t, Equal(a.Copy(), a))
}

func TestFindParent(t *testing.T) {
	base := Tree{section("box", text("c1")), text("a")}

	p := FindParent(base, "c1")
	require.NotNil(t, p)
	assert.Equal(t, "box", p.ID)

	assert.Nil(t, FindParent(base, "a"), "root node has no parent")
	assert.Nil(t, FindParent(base, "gone"))
}

func TestIsDescendant(t *testing.T) {
	base := Tree{section("A", section("B", text("C"))), text("D")}

	assert.True(t, IsDescendant(base, "A", "B"))
	assert.True(t, IsDescendant(base, "A", "C"))
	assert.False(t, IsDescendant(base, "B", "A"))
	assert.False(t, IsDescendant(base, "A", "A"), "a node is not its own descendant")
	assert.False(t, IsDescendant(base, "A", "D"))
}

func TestWalk_DeepTreeDoesNotRecurse(t *testing.T) {
	// build a 100k-deep chain; a recursive walk would blow the stack
	leaf := &Instance{ID: "leaf", Type: "section", Children: []*Instance{}}
	cur := leaf
	for i := 0; i < 100_000; i++ {
		cur = &Instance{ID: uniqueID(i), Type: "section", Children: []*Instance{cur}}
	}
	base := Tree{cur}

	assert.Equal(t, 100_001, Count(base))
	assert.True(t, IsDescendant(base, cur.ID, "leaf"))
	assert.NotNil(t, Find(base, "leaf"))
}

func uniqueID(i int) string {
	return "n" + strconv.Itoa(i)
}
