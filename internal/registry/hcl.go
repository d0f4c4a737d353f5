package registry

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/pagewright/canvas/internal/tree"
)

// Config carries the non-catalog settings a registry file may set.
type Config struct {
	// HistoryLimit overrides the editor's snapshot capacity; 0 keeps the
	// default.
	HistoryLimit int
}

// File format:
//
//	editor {
//	  history_limit = 100
//	}
//
//	component "text" {
//	  label    = "Text"
//	  defaults = { content = "Edit me" }
//	  tags     = ["content"]
//	}
//
//	component "section" {
//	  label     = "Section"
//	  container = true
//	}
type registryFile struct {
	Editor     *editorBlock     `hcl:"editor,block"`
	Components []componentBlock `hcl:"component,block"`
}

type editorBlock struct {
	HistoryLimit int `hcl:"history_limit,optional"`
}

type componentBlock struct {
	Type      string            `hcl:"type,label"`
	Label     string            `hcl:"label,optional"`
	Container bool              `hcl:"container,optional"`
	Defaults  map[string]string `hcl:"defaults,optional"`
	Tags      []string          `hcl:"tags,optional"`
}

// LoadFile reads a registry catalog from an HCL file.
func LoadFile(path string) (*Registry, Config, error) {
	var file registryFile
	if err := hclsimple.DecodeFile(path, nil, &file); err != nil {
		return nil, Config{}, fmt.Errorf("decode registry %s: %w", path, err)
	}

	defs := make([]Definition, 0, len(file.Components))
	for _, c := range file.Components {
		var defaults tree.Props
		if len(c.Defaults) > 0 {
			defaults = make(tree.Props, len(c.Defaults))
			for k, v := range c.Defaults {
				defaults[k] = v
			}
		}
		defs = append(defs, Definition{
			Type:      c.Type,
			Label:     c.Label,
			Container: c.Container,
			Defaults:  defaults,
			Tags:      c.Tags,
		})
	}
	r, err := New(defs...)
	if err != nil {
		return nil, Config{}, fmt.Errorf("registry %s: %w", path, err)
	}

	var cfg Config
	if file.Editor != nil {
		cfg.HistoryLimit = file.Editor.HistoryLimit
	}
	return r, cfg, nil
}
