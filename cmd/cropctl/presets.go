package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the crop presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.catalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, p := range catalog.Presets() {
				marker := "  "
				if i == catalog.SelectedIndex() {
					marker = "* "
				}
				fmt.Fprintf(out, "%s%d. %s\n", marker, i+1, p)
			}
			return nil
		},
	}
}
