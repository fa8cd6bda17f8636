package ui

import (
	"errors"
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/dixieflatline76/Cropper/pkg/media"
	"github.com/dixieflatline76/Cropper/util/log"
)

// requestOverwrite commits the region and, after confirmation, crops the
// loaded file in place. Without an active region it does nothing.
func (ca *CropperApp) requestOverwrite() {
	if ca.busy.Value() || ca.preview == nil {
		return
	}
	plan, err := ca.session.Commit()
	if err != nil {
		log.Debugf("Overwrite ignored: %v", err)
		return
	}

	path := ca.preview.Path
	video := ca.preview.Kind == media.KindVideo
	if !ca.cfg.GetConfirmOverwrite() {
		ca.runCrop(path, plan, video && ca.cfg.GetAdvanceNext())
		return
	}
	ca.confirmOverwrite(path, plan, video)
}

// confirmOverwrite asks before cropping. Videos get an extra choice that
// opens the next video afterwards; it is the default when advancing is on.
func (ca *CropperApp) confirmOverwrite(path string, plan crop.Plan, video bool) {
	msg := "confirm_image.txt"
	if video {
		msg = "confirm_video.txt"
	}
	content := widget.NewLabel(ca.assets.MustText(msg, "Overwrite the original file?"))

	d := dialog.NewCustomWithoutButtons("Confirm Overwrite", content, ca.window)
	choose := func(next bool) func() {
		return func() {
			ca.confirmDefault = nil
			d.Hide()
			ca.runCrop(path, plan, next)
		}
	}

	cancel := widget.NewButton("Cancel", func() {
		ca.confirmDefault = nil
		d.Hide()
	})
	overwrite := widget.NewButton("Overwrite", choose(false))
	buttons := []fyne.CanvasObject{cancel, overwrite}

	overwrite.Importance = widget.HighImportance
	ca.confirmDefault = choose(false)
	if video {
		next := widget.NewButton("Overwrite & Next", choose(true))
		buttons = append(buttons, next)
		if ca.cfg.GetAdvanceNext() {
			overwrite.Importance = widget.MediumImportance
			next.Importance = widget.HighImportance
			ca.confirmDefault = choose(true)
		}
	}

	d.SetButtons(buttons)
	d.SetOnClosed(func() { ca.confirmDefault = nil })
	d.Show()
}

// runCrop crops path in the background behind a modal progress dialog.
func (ca *CropperApp) runCrop(path string, plan crop.Plan, next bool) {
	if !ca.busy.TryAcquire() {
		return
	}
	ca.refreshControls()

	text := "Cropping image..."
	if media.IsVideo(path) {
		text = "Processing video with FFmpeg..."
	}
	bar := widget.NewProgressBarInfinite()
	progress := dialog.NewCustomWithoutButtons("Please Wait", container.NewVBox(widget.NewLabel(text), bar), ca.window)
	progress.Show()

	go func() {
		kind, err := ca.service.Crop(ca.ctx, path, plan)
		fyne.Do(func() {
			bar.Stop()
			progress.Hide()
			ca.busy.Release()
			ca.refreshControls()
			ca.afterCrop(path, kind, next, err)
		})
	}()
}

// afterCrop reports the result and decides what to show next: the next
// video, or the freshly cropped file.
func (ca *CropperApp) afterCrop(path string, kind media.Kind, next bool, err error) {
	if err != nil {
		ca.showCropError(err)
		return
	}

	open, notice := cropFollowUp(path, kind, next)
	ca.Open(open)
	if notice != "" {
		dialog.ShowInformation("Success", notice, ca.window)
	}
	if kind != media.KindVideo {
		ca.setStatus(fmt.Sprintf("%s cropped and saved", filepath.Base(path)))
	}
}

// cropFollowUp returns the file to open after a successful crop and the
// notice to show, if any. "Overwrite & Next" on the last video reloads it.
func cropFollowUp(path string, kind media.Kind, next bool) (open, notice string) {
	switch {
	case kind == media.KindVideo && next:
		if nextPath, ok := media.NextSibling(path); ok {
			return nextPath, ""
		}
		return path, noNextVideoMessage
	case kind == media.KindVideo:
		return path, "Video cropped and saved!"
	default:
		return path, ""
	}
}

func (ca *CropperApp) showCropError(err error) {
	var toolErr *crop.ToolError
	if errors.As(err, &toolErr) && toolErr.Output != "" {
		output := widget.NewLabel(toolErr.Output)
		output.Wrapping = fyne.TextWrapWord
		d := dialog.NewCustom("FFmpeg Error", "Close", container.NewVScroll(output), ca.window)
		d.Resize(fyne.NewSize(700, 400))
		d.Show()
		return
	}
	dialog.ShowError(err, ca.window)
}
