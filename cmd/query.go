package cmd

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query [page.json] [jsonpath]",
	Short: "Run a JSONPath query against a page document",
	Long: `Evaluate a JSONPath expression over the raw document, e.g.

  canvas query page.json '$.nodes[*].type'
  canvas query page.json '$..children[?(@.type == "text")].props.content'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document %s: %w", args[0], err)
		}
		root, err := oj.Parse(data)
		if err != nil {
			return fmt.Errorf("parse document %s: %w", args[0], err)
		}
		x, err := jp.ParseString(args[1])
		if err != nil {
			return fmt.Errorf("invalid jsonpath '%s': %w", args[1], err)
		}
		for _, r := range x.Get(root) {
			fmt.Println(oj.JSON(r))
		}
		return nil
	},
}
