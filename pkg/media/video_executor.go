package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/dixieflatline76/Cropper/util/log"
)

// DefaultTool is the external video tool used when none is configured.
const DefaultTool = "ffmpeg"

// VideoExecutor crops every frame of a video by running the external tool
// into a temporary file and renaming it over the original.
type VideoExecutor struct {
	Tool   string
	Runner Runner

	rename func(oldpath, newpath string) error
}

// NewVideoExecutor returns a VideoExecutor for tool. An empty tool means DefaultTool.
func NewVideoExecutor(tool string, runner Runner) *VideoExecutor {
	if tool == "" {
		tool = DefaultTool
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &VideoExecutor{Tool: tool, Runner: runner, rename: os.Rename}
}

// TempPath returns the temporary output path used while cropping path.
func TempPath(path string) string {
	return path + "_temp_crop" + filepath.Ext(path)
}

// Args returns the tool arguments cropping input into output. Audio is
// stream-copied.
func Args(input, output string, plan crop.Plan) []string {
	return []string{
		"-y",
		"-i", input,
		"-vf", plan.FilterArg(),
		"-c:a", "copy",
		output,
	}
}

// Execute crops the video at path to plan. On tool failure the temporary
// output is removed, the original is untouched and a *crop.ToolError holding
// the tool's stderr is returned.
func (e *VideoExecutor) Execute(ctx context.Context, path string, plan crop.Plan) error {
	if plan.X < 0 || plan.Y < 0 || plan.Width <= 0 || plan.Height <= 0 {
		return fmt.Errorf("%w: invalid crop plan %s", crop.ErrCropWrite, plan)
	}
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("%w: %v", crop.ErrMediaUnreadable, err)
	}

	tmp := TempPath(path)
	args := Args(path, tmp, plan)
	log.Printf("Running: %s %s", e.Tool, strings.Join(args, " "))

	_, stderr, err := e.Runner.Run(ctx, e.Tool, args)
	if err != nil {
		removeTemp(tmp)
		return &crop.ToolError{Tool: e.Tool, Output: string(stderr), Err: err}
	}

	rename := e.rename
	if rename == nil {
		rename = os.Rename
	}
	if err := rename(tmp, path); err != nil {
		removeTemp(tmp)
		return fmt.Errorf("%w: replacing %s: %v", crop.ErrCropWrite, path, err)
	}
	return nil
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to remove temp file %s: %v", path, err)
	}
}
