package main

import (
	"fmt"

	"github.com/dixieflatline76/Cropper/pkg/media"
	"github.com/spf13/cobra"
)

func newNextCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "next FILE",
		Short: "Print the video that follows FILE in its directory",
		Long: `Print the video that follows FILE in its directory.

Videos are ordered by file name. The command fails when FILE is the last video
or is not a video in that directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			next, ok := media.NextSibling(args[0])
			if !ok {
				return fmt.Errorf("no next video after %s", args[0])
			}
			fmt.Fprintln(cmd.OutOrStdout(), next)
			return nil
		},
	}
}
