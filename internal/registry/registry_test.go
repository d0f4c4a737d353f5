package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pagewright/canvas/internal/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsContainer(t *testing.T) {
	r := Builtin()
	assert.True(t, r.IsContainer("section"))
	assert.False(t, r.IsContainer("text"))
	assert.False(t, r.IsContainer("unknown"), "unknown types are leaves")
}

func TestNewRejectsDuplicates(t *testing.T) {
	_, err := New(
		Definition{Type: "text"},
		Definition{Type: "text"},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	_, err = New(Definition{Type: ""})
	require.Error(t, err)
}

func TestFresh(t *testing.T) {
	r := Builtin()

	a, ok := r.Fresh("text")
	require.True(t, ok)
	b, ok := r.Fresh("text")
	require.True(t, ok)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Nil(t, a.Children)

	// defaults are per-instance copies
	a.Props["content"] = "changed"
	assert.Equal(t, "Edit me", b.Props["content"])

	c, ok := r.Fresh("section")
	require.True(t, ok)
	require.NotNil(t, c.Children)
	require.NotNil(t, c.Meta)
	assert.True(t, c.Meta.Container)

	_, ok = r.Fresh("unknown")
	assert.False(t, ok)
}

func TestDefinitionsKeepOrder(t *testing.T) {
	r, err := New(
		Definition{Type: "b"},
		Definition{Type: "a"},
		Definition{Type: "c"},
	)
	require.NoError(t, err)

	var types []string
	for _, d := range r.Definitions() {
		types = append(types, d.Type)
	}
	assert.Equal(t, []string{"b", "a", "c"}, types)
}

const sampleHCL = `
editor {
  history_limit = 100
}

component "hero" {
  label     = "Hero banner"
  container = true
  tags      = ["layout", "marketing"]
}

component "quote" {
  label    = "Quote"
  defaults = { content = "...", author = "unknown" }
}
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.hcl")
	require.NoError(t, os.WriteFile(path, []byte(sampleHCL), 0o644))

	r, cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 100, cfg.HistoryLimit)
	assert.True(t, r.IsContainer("hero"))
	assert.False(t, r.IsContainer("quote"))

	d, ok := r.Lookup("quote")
	require.True(t, ok)
	assert.Equal(t, "Quote", d.Label)
	assert.Equal(t, tree.Props{"content": "...", "author": "unknown"}, d.Defaults)

	hero, ok := r.Lookup("hero")
	require.True(t, ok)
	assert.Equal(t, []string{"layout", "marketing"}, hero.Tags)
}

func TestLoadFileErrors(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "missing.hcl"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte("component {}\n"), 0o644))
	_, _, err = LoadFile(path)
	require.Error(t, err)
}
