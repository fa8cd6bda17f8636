package ui

import (
	"fyne.io/fyne/v2"
	"github.com/dixieflatline76/Cropper/pkg/crop"
)

// viewTransform maps media pixels onto the view. Media is shown whole,
// centered and never enlarged.
type viewTransform struct {
	scale  float32
	offset fyne.Position
}

// fitTransform fits surface inside box.
func fitTransform(surface crop.Surface, box fyne.Size) viewTransform {
	if surface.Width <= 0 || surface.Height <= 0 || box.Width <= 0 || box.Height <= 0 {
		return viewTransform{scale: 1}
	}
	scale := min(box.Width/float32(surface.Width), box.Height/float32(surface.Height), 1)
	shown := fyne.NewSize(float32(surface.Width)*scale, float32(surface.Height)*scale)
	return viewTransform{
		scale:  scale,
		offset: fyne.NewPos((box.Width-shown.Width)/2, (box.Height-shown.Height)/2),
	}
}

// toView converts a media position to a view position.
func (t viewTransform) toView(x, y float64) fyne.Position {
	return fyne.NewPos(t.offset.X+float32(x)*t.scale, t.offset.Y+float32(y)*t.scale)
}

// sizeOf converts a media size to a view size.
func (t viewTransform) sizeOf(width, height int) fyne.Size {
	return fyne.NewSize(float32(width)*t.scale, float32(height)*t.scale)
}

// toMediaDelta converts a drag delta in view units to media pixels.
func (t viewTransform) toMediaDelta(dx, dy float32) (float64, float64) {
	return float64(dx / t.scale), float64(dy / t.scale)
}

// toMedia converts a view position to a media position.
func (t viewTransform) toMedia(p fyne.Position) (float64, float64) {
	return float64((p.X - t.offset.X) / t.scale), float64((p.Y - t.offset.Y) / t.scale)
}
