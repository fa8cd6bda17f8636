//go:build !gocv

package media

// NewFrameGrabber returns the frame grabber used for video previews.
func NewFrameGrabber(tool string, runner Runner) FrameGrabber {
	return &FFmpegFrameGrabber{Tool: tool, Runner: runner}
}
