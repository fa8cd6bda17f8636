package crop

import (
	"fmt"
	"image"
)

// Plan is the immutable crop applied to the media: origin and size in
// source pixel coordinates.
type Plan struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Rect returns the plan as left, upper, right, lower bounds.
func (p Plan) Rect() image.Rectangle {
	return image.Rect(p.X, p.Y, p.X+p.Width, p.Y+p.Height)
}

// Validate checks the plan against the bounds of the media it will be applied to.
func (p Plan) Validate(surface Surface) error {
	if p.X < 0 || p.Y < 0 || p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("invalid crop plan %s", p)
	}
	if p.X+p.Width > surface.Width || p.Y+p.Height > surface.Height {
		return fmt.Errorf("crop plan %s exceeds media %s", p, surface)
	}
	return nil
}

// FilterArg returns the video crop filter, parameters in width:height:x:y order.
func (p Plan) FilterArg() string {
	return fmt.Sprintf("crop=%d:%d:%d:%d", p.Width, p.Height, p.X, p.Y)
}

func (p Plan) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", p.Width, p.Height, p.X, p.Y)
}
