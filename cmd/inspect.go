package cmd

import (
	"fmt"
	"strings"

	"github.com/pagewright/canvas/internal/doc"
	"github.com/pagewright/canvas/internal/tree"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect [page.json]",
	Short: "Print the component outline of a page document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := catalog()
		if err != nil {
			return err
		}
		d, err := doc.LoadFile(args[0])
		if err != nil {
			return err
		}
		t, err := doc.ToTree(d, reg.IsContainer)
		if err != nil {
			return fmt.Errorf("build tree: %w", err)
		}

		if d.Title != "" {
			fmt.Printf("%s (%s)\n", d.Title, d.Version)
		}
		printOutline(t)
		fmt.Printf("%d nodes\n", tree.Count(t))
		return nil
	},
}

func printOutline(t tree.Tree) {
	type frame struct {
		node  *tree.Instance
		depth int
	}
	stack := make([]frame, 0, len(t))
	for i := len(t) - 1; i >= 0; i-- {
		stack = append(stack, frame{t[i], 0})
	}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		marker := ""
		if f.node.Children != nil {
			marker = fmt.Sprintf(" [%d]", len(f.node.Children))
		}
		fmt.Printf("%s%s%s  #%s\n", strings.Repeat("  ", f.depth), f.node.Type, marker, f.node.ID)
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{f.node.Children[i], f.depth + 1})
		}
	}
}
