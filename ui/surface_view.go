package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Cropper/pkg/crop"
)

var (
	viewBackground = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	regionStroke   = color.NRGBA{R: 0xff, A: 0xff}
	regionFill     = color.NRGBA{R: 0xff, A: 50}
)

// surfaceView shows the loaded media scaled to fit and the session's region
// on top of it. Drags move the region through the session, so what is drawn
// is always the clamped position.
type surfaceView struct {
	widget.BaseWidget

	session *crop.Session
	still   image.Image

	// onMoved is called after the region moved, with the clamped position.
	onMoved func(x, y float64)
}

func newSurfaceView(session *crop.Session) *surfaceView {
	v := &surfaceView{session: session}
	v.ExtendBaseWidget(v)
	return v
}

// SetImage replaces the displayed still. nil clears the view.
func (v *surfaceView) SetImage(img image.Image) {
	v.still = img
	v.Refresh()
}

func (v *surfaceView) transform() viewTransform {
	surface, _ := v.session.Surface()
	return fitTransform(surface, v.Size())
}

// Dragged implements fyne.Draggable.
func (v *surfaceView) Dragged(e *fyne.DragEvent) {
	dx, dy := v.transform().toMediaDelta(e.Dragged.DX, e.Dragged.DY)
	v.moveBy(dx, dy)
}

// DragEnd implements fyne.Draggable.
func (v *surfaceView) DragEnd() {}

// Tapped centers the region on the tapped point.
func (v *surfaceView) Tapped(e *fyne.PointEvent) {
	region := v.session.Region()
	if region == nil {
		return
	}
	x, y := v.transform().toMedia(e.Position)
	size := region.Size()
	v.moveTo(x-float64(size.Width)/2, y-float64(size.Height)/2)
}

func (v *surfaceView) moveBy(dx, dy float64) {
	x, y, err := v.session.MoveBy(dx, dy)
	if err != nil {
		return
	}
	v.Refresh()
	if v.onMoved != nil {
		v.onMoved(x, y)
	}
}

func (v *surfaceView) moveTo(x, y float64) {
	cx, cy, err := v.session.ProposeMove(x, y)
	if err != nil {
		return
	}
	v.Refresh()
	if v.onMoved != nil {
		v.onMoved(cx, cy)
	}
}

// CreateRenderer implements fyne.Widget.
func (v *surfaceView) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(viewBackground)

	img := canvas.NewImageFromImage(nil)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleFastest

	frame := canvas.NewRectangle(regionFill)
	frame.StrokeColor = regionStroke
	frame.StrokeWidth = 2

	r := &surfaceViewRenderer{view: v, background: bg, image: img, frame: frame}
	r.objects = []fyne.CanvasObject{bg, img, frame}
	return r
}

type surfaceViewRenderer struct {
	view       *surfaceView
	background *canvas.Rectangle
	image      *canvas.Image
	frame      *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *surfaceViewRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	surface, loaded := r.view.session.Surface()
	if !loaded || r.view.still == nil {
		r.image.Hide()
		r.frame.Hide()
		return
	}

	t := fitTransform(surface, size)
	r.image.Move(t.offset)
	r.image.Resize(t.sizeOf(surface.Width, surface.Height))
	r.image.Show()

	region := r.view.session.Region()
	if region == nil {
		r.frame.Hide()
		return
	}
	x, y := region.Position()
	preset := region.Size()
	r.frame.Move(t.toView(x, y))
	r.frame.Resize(t.sizeOf(preset.Width, preset.Height))
	r.frame.Show()
}

func (r *surfaceViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(320, 240)
}

func (r *surfaceViewRenderer) Refresh() {
	if r.image.Image != r.view.still {
		r.image.Image = r.view.still
		r.image.Refresh()
	}
	r.Layout(r.view.Size())
	canvas.Refresh(r.view)
}

func (r *surfaceViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *surfaceViewRenderer) Destroy() {}
