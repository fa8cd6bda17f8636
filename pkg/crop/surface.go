package crop

import (
	"fmt"
	"image"
)

// Surface is the pixel bounds of the currently loaded media.
type Surface struct {
	Width  int
	Height int
}

// NewSurface validates and returns a Surface.
func NewSurface(width, height int) (Surface, error) {
	if width <= 0 || height <= 0 {
		return Surface{}, fmt.Errorf("%w: invalid dimensions %dx%d", ErrMediaUnreadable, width, height)
	}
	return Surface{Width: width, Height: height}, nil
}

// SurfaceOf returns the Surface of a decoded image.
func SurfaceOf(img image.Image) (Surface, error) {
	if img == nil {
		return Surface{}, fmt.Errorf("%w: nil image", ErrMediaUnreadable)
	}
	b := img.Bounds()
	return NewSurface(b.Dx(), b.Dy())
}

// Fits reports whether a preset can be placed inside the surface.
func (s Surface) Fits(p Preset) bool {
	return p.Width <= s.Width && p.Height <= s.Height
}

func (s Surface) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
