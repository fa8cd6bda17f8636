package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// FFmpegFrameGrabber extracts the first video frame by asking the external
// tool to write it as PNG to stdout.
type FFmpegFrameGrabber struct {
	Tool   string
	Runner Runner
}

// FirstFrame implements FrameGrabber.
func (g *FFmpegFrameGrabber) FirstFrame(ctx context.Context, path string) (image.Image, error) {
	tool := g.Tool
	if tool == "" {
		tool = DefaultTool
	}
	runner := g.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	args := []string{
		"-v", "error",
		"-i", path,
		"-frames:v", "1",
		"-f", "image2pipe",
		"-vcodec", "png",
		"-",
	}
	stdout, stderr, err := runner.Run(ctx, tool, args)
	if err != nil {
		return nil, fmt.Errorf("reading first frame: %w: %s", err, strings.TrimSpace(string(stderr)))
	}
	if len(stdout) == 0 {
		return nil, fmt.Errorf("reading first frame: no frame decoded")
	}

	img, err := png.Decode(bytes.NewReader(stdout))
	if err != nil {
		return nil, fmt.Errorf("decoding first frame: %w", err)
	}
	return img, nil
}
