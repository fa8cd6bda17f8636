package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/dixieflatline76/Cropper/pkg/media"
	"github.com/dixieflatline76/Cropper/util"
	"github.com/dixieflatline76/Cropper/util/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type cropOptions struct {
	preset    string
	x, y      float64
	placement string
	cascade   string
	next      bool
	jobs      int
	failFast  bool
}

// cropJob crops files with one preset and position.
type cropJob struct {
	opts     cropOptions
	size     crop.Preset
	strategy media.Strategy
	catalog  *crop.Catalog
	service  *media.Service
	frames   media.FrameGrabber
	placer   *media.Placer

	mu  sync.Mutex
	out io.Writer
}

func newCropCommand(ctx *commandContext) *cobra.Command {
	opts := cropOptions{}

	cmd := &cobra.Command{
		Use:   "crop FILE...",
		Short: "Crop images and videos in place",
		Long: `Crop images and videos in place.

Every FILE is cropped to the --preset size with the region's top-left corner
at --x/--y. Positions are clamped so the region stays inside the media.
With --place smart or --place face the position is chosen from the content
instead. The original file is only replaced once the cropped result is
complete.`,
		Example: `  cropctl crop --preset 512x512 --x 100 --y 40 photo.jpg
  cropctl crop --preset 1080x1080 --place smart --next --jobs 2 clip01.mp4`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := newCropJob(ctx, opts, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return job.run(cmd.Context(), expandTargets(args, opts.next))
		},
	}

	cmd.Flags().StringVar(&opts.preset, "preset", "", "crop size as WIDTHxHEIGHT, or a 1-based index into the preset list")
	cmd.Flags().Float64Var(&opts.x, "x", 0, "left edge of the crop region")
	cmd.Flags().Float64Var(&opts.y, "y", 0, "top edge of the crop region")
	cmd.Flags().StringVar(&opts.placement, "place", media.PlaceNone.String(), "placement strategy: None, Smart or Face")
	cmd.Flags().StringVar(&opts.cascade, "face-cascade", "", "pigo face cascade file for --place face")
	cmd.Flags().BoolVar(&opts.next, "next", false, "also crop every video after each FILE in its directory")
	cmd.Flags().IntVarP(&opts.jobs, "jobs", "j", 1, "number of files cropped at once")
	cmd.Flags().BoolVar(&opts.failFast, "fail-fast", false, "stop at the first failed file")
	_ = cmd.MarkFlagRequired("preset")

	return cmd
}

func newCropJob(ctx *commandContext, opts cropOptions, out io.Writer) (*cropJob, error) {
	if opts.jobs < 1 {
		return nil, fmt.Errorf("--jobs must be at least 1, got %d", opts.jobs)
	}

	if !finite(opts.x) || !finite(opts.y) {
		return nil, fmt.Errorf("--x and --y must be finite numbers, got %v and %v", opts.x, opts.y)
	}
	strategy, err := media.ParseStrategy(opts.placement)
	if err != nil {
		return nil, fmt.Errorf("invalid --place: %w", err)
	}

	size, err := resolvePreset(ctx, opts.preset)
	if err != nil {
		return nil, err
	}
	catalog, err := crop.NewCatalog([]crop.Preset{size})
	if err != nil {
		return nil, err
	}

	cascadePath := opts.cascade
	if cascadePath == "" {
		cascadePath = ctx.cfg.GetFaceCascade()
	}
	var cascade []byte
	if cascadePath != "" {
		if cascade, err = os.ReadFile(cascadePath); err != nil {
			return nil, fmt.Errorf("reading face cascade: %w", err)
		}
	}
	placer, err := media.NewPlacer(cascade)
	if err != nil {
		return nil, err
	}

	tool := ctx.tool()
	return &cropJob{
		opts:     opts,
		size:     size,
		strategy: strategy,
		catalog:  catalog,
		service:  media.NewService(tool, media.ExecRunner{}),
		frames:   media.NewFrameGrabber(tool, media.ExecRunner{}),
		placer:   placer,
		out:      out,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// resolvePreset accepts either WIDTHxHEIGHT or a 1-based catalog index.
func resolvePreset(ctx *commandContext, value string) (crop.Preset, error) {
	if p, err := crop.ParsePreset(value); err == nil {
		return p, nil
	}
	index, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return crop.Preset{}, fmt.Errorf("invalid --preset %q: want WIDTHxHEIGHT or an index", value)
	}
	catalog, err := ctx.catalog()
	if err != nil {
		return crop.Preset{}, err
	}
	return catalog.Select(index - 1)
}

// expandTargets appends the following videos of each video target when next
// is set. Duplicates keep their first position.
func expandTargets(args []string, next bool) []string {
	seen := make(map[string]bool, len(args))
	var targets []string
	add := func(p string) bool {
		if seen[p] {
			return false
		}
		seen[p] = true
		targets = append(targets, p)
		return true
	}

	for _, arg := range args {
		add(arg)
		if !next || !media.IsVideo(arg) {
			continue
		}
		for cur := arg; ; {
			n, ok := media.NextSibling(cur)
			if !ok || !add(n) {
				break
			}
			cur = n
		}
	}
	return targets
}

func (j *cropJob) run(ctx context.Context, targets []string) error {
	var g *errgroup.Group
	if j.opts.failFast {
		g, ctx = errgroup.WithContext(ctx)
	} else {
		g = new(errgroup.Group)
	}
	g.SetLimit(j.opts.jobs)

	done := util.NewSafeCounter()
	failed := util.NewSafeCounter()

	for _, path := range targets {
		g.Go(func() error {
			if err := j.cropOne(ctx, path); err != nil {
				failed.Increment()
				j.printf("FAIL %s: %v\n", path, err)
				log.Printf("Crop failed for %s: %v", path, err)
				if j.opts.failFast {
					return err
				}
				return nil
			}
			done.Increment()
			return nil
		})
	}

	err := g.Wait()
	j.printf("%d cropped, %d failed\n", done.Value(), failed.Value())
	if err != nil {
		return err
	}
	if failed.Value() > 0 {
		return fmt.Errorf("%d of %d files failed", failed.Value(), len(targets))
	}
	return nil
}

// cropOne mirrors the interactive flow: load, position, commit, execute.
func (j *cropJob) cropOne(ctx context.Context, path string) error {
	preview, err := media.LoadPreview(ctx, path, j.frames)
	if err != nil {
		return err
	}

	session := crop.NewSession(j.catalog)
	if err := session.LoadMedia(preview.Surface); err != nil {
		return err
	}

	x, y := j.opts.x, j.opts.y
	if j.strategy != media.PlaceNone {
		if x, y, err = j.placer.Suggest(ctx, preview.Image, j.size, j.strategy); err != nil {
			return fmt.Errorf("placing region: %w", err)
		}
	}
	if _, _, err := session.ProposeMove(x, y); err != nil {
		return err
	}
	plan, err := session.Commit()
	if err != nil {
		return err
	}

	kind, err := j.service.Crop(ctx, path, plan)
	if err != nil {
		return err
	}
	j.printf("OK   %s (%s) %s\n", path, kind, plan)
	return nil
}

func (j *cropJob) printf(format string, args ...any) {
	j.mu.Lock()
	defer j.mu.Unlock()
	fmt.Fprintf(j.out, format, args...)
}
