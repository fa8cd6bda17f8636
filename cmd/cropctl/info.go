package main

import (
	"fmt"

	"github.com/dixieflatline76/Cropper/pkg/media"
	"github.com/spf13/cobra"
)

func newInfoCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE...",
		Short: "Show media dimensions and which presets fit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := ctx.catalog()
			if err != nil {
				return err
			}
			frames := media.NewFrameGrabber(ctx.tool(), media.ExecRunner{})
			out := cmd.OutOrStdout()

			var failed int
			for _, path := range args {
				preview, err := media.LoadPreview(cmd.Context(), path, frames)
				if err != nil {
					fmt.Fprintf(out, "%s: %v\n", path, err)
					failed++
					continue
				}
				fmt.Fprintf(out, "%s: %s %s\n", path, preview.Kind, preview.Surface)
				for _, p := range catalog.Presets() {
					fit := "fits"
					if !preview.Surface.Fits(p) {
						fit = "too large"
					}
					fmt.Fprintf(out, "  %-10s %s\n", p, fit)
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d files unreadable", failed, len(args))
			}
			return nil
		},
	}
}
