package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(paletteCmd)
}

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the component types the registry offers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, _, err := catalog()
		if err != nil {
			return err
		}
		for _, d := range reg.Definitions() {
			kind := "leaf"
			if d.Container {
				kind = "container"
			}
			label := d.Label
			if label == "" {
				label = d.Type
			}
			fmt.Printf("%-12s %-16s %-9s %s\n", d.Type, label, kind, strings.Join(d.Tags, ","))
		}
		return nil
	},
}
