//go:build gocv

package media

import (
	"context"
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// NewFrameGrabber returns the frame grabber used for video previews. Builds
// tagged gocv decode the frame through OpenCV instead of the external tool.
func NewFrameGrabber(tool string, runner Runner) FrameGrabber {
	return gocvFrameGrabber{}
}

type gocvFrameGrabber struct{}

// FirstFrame implements FrameGrabber.
func (gocvFrameGrabber) FirstFrame(ctx context.Context, path string) (image.Image, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening video: %w", err)
	}
	defer vc.Close()

	mat := gocv.NewMat()
	defer mat.Close()

	if ok := vc.Read(&mat); !ok || mat.Empty() {
		return nil, errors.New("could not read video frame")
	}
	return mat.ToImage()
}
