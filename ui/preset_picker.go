package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Cropper/pkg/crop"
)

// presetPicker is a radio-style list of crop sizes. Unlike widget.RadioGroup
// it reports every tap, including one on the size already selected.
type presetPicker struct {
	box      *fyne.Container
	buttons  []*widget.Button
	selected int
	disabled bool

	onTapped func(index int)
}

func newPresetPicker(onTapped func(int)) *presetPicker {
	return &presetPicker{box: container.NewVBox(), selected: -1, onTapped: onTapped}
}

// SetPresets replaces the rows and marks selected without firing onTapped.
func (p *presetPicker) SetPresets(presets []crop.Preset, selected int) {
	p.buttons = make([]*widget.Button, len(presets))
	objects := make([]fyne.CanvasObject, len(presets))
	for i, preset := range presets {
		b := widget.NewButton(preset.String(), func() { p.tap(i) })
		b.Alignment = widget.ButtonAlignLeading
		if p.disabled {
			b.Disable()
		}
		p.buttons[i] = b
		objects[i] = b
	}
	p.box.Objects = objects
	p.SetSelected(selected)
	p.box.Refresh()
}

// SetSelected moves the mark without firing onTapped.
func (p *presetPicker) SetSelected(index int) {
	p.selected = index
	for i, b := range p.buttons {
		if i == index {
			b.SetIcon(theme.RadioButtonCheckedIcon())
			b.Importance = widget.HighImportance
		} else {
			b.SetIcon(theme.RadioButtonIcon())
			b.Importance = widget.LowImportance
		}
		b.Refresh()
	}
}

// Selected returns the marked row, or -1.
func (p *presetPicker) Selected() int {
	return p.selected
}

// Labels returns the row texts in order.
func (p *presetPicker) Labels() []string {
	labels := make([]string, len(p.buttons))
	for i, b := range p.buttons {
		labels[i] = b.Text
	}
	return labels
}

func (p *presetPicker) Enable() {
	p.disabled = false
	for _, b := range p.buttons {
		b.Enable()
	}
}

func (p *presetPicker) Disable() {
	p.disabled = true
	for _, b := range p.buttons {
		b.Disable()
	}
}

func (p *presetPicker) tap(index int) {
	if p.disabled {
		return
	}
	p.SetSelected(index)
	if p.onTapped != nil {
		p.onTapped(index)
	}
}
