package main

import (
	"fmt"
	"strings"

	"github.com/dixieflatline76/Cropper/asset"
	"github.com/dixieflatline76/Cropper/config"
	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/spf13/cobra"
)

// commandContext carries the settings shared by every subcommand.
type commandContext struct {
	cfg     *config.AppConfig
	presets string
	ffmpeg  string
}

// tool returns the video tool: the --ffmpeg flag, then config.
func (c *commandContext) tool() string {
	if c.ffmpeg != "" {
		return c.ffmpeg
	}
	return c.cfg.GetFFmpegPath()
}

// catalog returns the preset catalog, honoring --presets.
func (c *commandContext) catalog() (*crop.Catalog, error) {
	if strings.TrimSpace(c.presets) != "" {
		presets, err := crop.ParsePresetList(c.presets)
		if err != nil {
			return nil, err
		}
		c.cfg.SetPresets(presets)
	}
	return c.cfg.NewCatalog()
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{cfg: config.NewAppConfig(config.NewMemoryPreferences())}

	root := &cobra.Command{
		Use:   "cropctl",
		Short: "Crop images and videos to a fixed size, in place",
		Long: fmt.Sprintf(`Crop images and videos to a fixed size, in place.

Images are cropped in-process and written back in their own format. Videos are
cropped with ffmpeg (set --ffmpeg or $%s to pick the binary); audio is copied.

%s`, config.EnvFFmpeg, asset.NewManager().MustText("help.txt", "")),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&ctx.presets, "presets", "", "comma separated WIDTHxHEIGHT preset list (default: built-in list)")
	root.PersistentFlags().StringVar(&ctx.ffmpeg, "ffmpeg", "", "ffmpeg executable")

	root.AddCommand(
		newCropCommand(ctx),
		newInfoCommand(ctx),
		newNextCommand(),
		newPresetsCommand(ctx),
	)
	return root
}
