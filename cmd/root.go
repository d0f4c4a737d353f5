package cmd

import (
	"fmt"
	"os"

	"github.com/pagewright/canvas/internal/registry"
	"github.com/spf13/cobra"
)

var registryPath string

func init() {
	rootCmd.PersistentFlags().StringVarP(&registryPath, "registry", "r", "", "Path to a component registry file (HCL)")
}

var rootCmd = &cobra.Command{
	Use:   "canvas",
	Short: "Canvas: the page-builder component-tree engine",
	Long: `Canvas owns the component tree behind a visual page builder:
insert, move, duplicate, cut/paste and undo/redo over a page document.`,
}

// catalog resolves the component registry: the --registry file when given,
// the built-in catalog otherwise.
func catalog() (*registry.Registry, registry.Config, error) {
	if registryPath == "" {
		return registry.Builtin(), registry.Config{}, nil
	}
	return registry.LoadFile(registryPath)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
