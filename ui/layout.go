package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Alignment specifies the horizontal alignment of a split row.
type Alignment int

const (
	alignLeft Alignment = iota
	alignOpposed
)

// SplitAlign is a namespace for the Alignment constants.
var SplitAlign = struct {
	Left    Alignment // Left packs both widgets from the left edge.
	Opposed Alignment // Opposed pins the second widget to the right edge.
}{
	Left:    alignLeft,
	Opposed: alignOpposed,
}

// splitLayout gives the first widget a fixed fraction of the row width.
type splitLayout struct {
	widget1   fyne.CanvasObject
	widget2   fyne.CanvasObject
	fraction  float32
	alignment Alignment
}

// MinSize calculates the minimum size.
func (s *splitLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	w1Size := s.widget1.MinSize()
	w2Size := s.widget2.MinSize()
	return fyne.NewSize(w1Size.Width+w2Size.Width, fyne.Max(w1Size.Height, w2Size.Height))
}

// Layout arranges the widgets.
func (s *splitLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	widget1Width, widget2Width := splitWidths(containerSize.Width, s.fraction)
	height := fyne.Max(s.widget1.MinSize().Height, s.widget2.MinSize().Height)

	s.widget1.Resize(fyne.NewSize(widget1Width, height))
	s.widget2.Resize(fyne.NewSize(widget2Width, height))

	widget2X := widget1Width
	if s.alignment == alignOpposed {
		widget2X = containerSize.Width - widget2Width
	}
	s.widget1.Move(fyne.NewPos(0, 0))
	s.widget2.Move(fyne.NewPos(widget2X, 0))
}

// splitWidths divides width by fraction, clamping fraction to [0, 1].
func splitWidths(width, fraction float32) (float32, float32) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	first := width * fraction
	return first, width - first
}

// NewSplitRowWithAlignment creates a split row whose first widget takes
// fraction of the width.
func NewSplitRowWithAlignment(widget1, widget2 fyne.CanvasObject, fraction float32, alignment Alignment) *fyne.Container {
	layout := &splitLayout{
		widget1:   widget1,
		widget2:   widget2,
		fraction:  fraction,
		alignment: alignment,
	}
	return container.New(layout, widget1, widget2)
}

// NewSplitRow creates a left aligned split row.
func NewSplitRow(widget1, widget2 fyne.CanvasObject, fraction float32) *fyne.Container {
	return NewSplitRowWithAlignment(widget1, widget2, fraction, alignLeft)
}
