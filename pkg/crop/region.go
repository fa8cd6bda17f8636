package crop

import (
	"fmt"
	"image"
	"math"
)

// Clamp returns the position closest to (x, y) at which a rectangle of the
// given size stays inside surface. The lower bound is applied before the
// upper bound, so a size that fits always yields a valid position. NaN is
// treated as the lower bound.
func Clamp(x, y float64, size Preset, surface Surface) (float64, float64) {
	if x < 0 || math.IsNaN(x) {
		x = 0
	}
	if y < 0 || math.IsNaN(y) {
		y = 0
	}
	if x+float64(size.Width) > float64(surface.Width) {
		x = float64(surface.Width - size.Width)
	}
	if y+float64(size.Height) > float64(surface.Height) {
		y = float64(surface.Height - size.Height)
	}
	return x, y
}

// Region is the fixed-size rectangle the operator drags over the media.
// Its position is clamped to the surface on every change.
type Region struct {
	size    Preset
	surface Surface
	x, y    float64
}

// NewRegion creates a region at the origin. Presets larger than the surface
// are rejected since no valid position exists for them.
func NewRegion(size Preset, surface Surface) (*Region, error) {
	if !surface.Fits(size) {
		return nil, fmt.Errorf("%w: %s does not fit %s", ErrPresetTooLarge, size, surface)
	}
	r := &Region{size: size, surface: surface}
	r.ProposeMove(0, 0)
	return r, nil
}

// ProposeMove clamps (x, y) and stores the result as the new position.
func (r *Region) ProposeMove(x, y float64) (float64, float64) {
	r.x, r.y = Clamp(x, y, r.size, r.surface)
	return r.x, r.y
}

// MoveBy proposes a move relative to the current position.
func (r *Region) MoveBy(dx, dy float64) (float64, float64) {
	return r.ProposeMove(r.x+dx, r.y+dy)
}

// Position returns the current top-left corner.
func (r *Region) Position() (float64, float64) {
	return r.x, r.y
}

// Size returns the fixed preset size.
func (r *Region) Size() Preset {
	return r.size
}

// Surface returns the bounds the region is confined to.
func (r *Region) Surface() Surface {
	return r.surface
}

// Plan freezes the region into a crop plan.
func (r *Region) Plan() Plan {
	return Plan{
		X:      int(r.x),
		Y:      int(r.y),
		Width:  r.size.Width,
		Height: r.size.Height,
	}
}

// Bounds returns the integer rectangle the region currently covers.
func (r *Region) Bounds() image.Rectangle {
	return r.Plan().Rect()
}
