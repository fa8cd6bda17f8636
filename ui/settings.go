package ui

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Cropper/config"
	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/dixieflatline76/Cropper/pkg/media"
	"github.com/dixieflatline76/Cropper/ui/setting"
	"github.com/dixieflatline76/Cropper/util/log"
)

// placementOptions are the strategies offered for the Auto place button.
var placementOptions = []media.Strategy{media.PlaceSmart, media.PlaceFace}

// jpegQualities are the offered JPEG re-encode qualities.
var jpegQualities = []int{75, 85, 90, 95, 100}

// ShowSettings opens the preferences window.
func (ca *CropperApp) ShowSettings() {
	w := ca.app.NewWindow(fmt.Sprintf("%s Preferences", config.AppName))
	sm := NewSettingsManager(w)
	header := container.NewVBox()

	header.Add(sm.CreateSectionTitleLabel("Crop Preferences"))

	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:         "Crop sizes",
		InitialValue: crop.FormatPresetList(ca.cfg.GetPresets()),
		PlaceHolder:  crop.FormatPresetList(crop.DefaultPresets),
		Label:        sm.CreateSettingTitleLabel("Crop sizes:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Comma separated WIDTHxHEIGHT list, in pixels."),
		PostValidateCheck: func(s string) error {
			_, err := crop.ParsePresetList(s)
			return err
		},
		ApplyFunc: func(s string) {
			presets, err := crop.ParsePresetList(s)
			if err != nil {
				return
			}
			ca.cfg.SetPresets(presets)
			ca.cfg.SetSelectedPreset(0)
		},
		NeedsRefresh: true,
	}, header)

	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "Auto place",
		Options:      setting.StringOptions(placementOptions),
		InitialValue: strategyIndex(ca.placement()),
		Label:        sm.CreateSettingTitleLabel("Auto place:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Smart looks for detail and color. Face centers on the strongest face and needs a face cascade file."),
		ApplyFunc: func(i int) {
			ca.cfg.SetPlacement(placementOptions[i].String())
		},
	}, header)

	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "Confirm overwrite",
		InitialValue: ca.cfg.GetConfirmOverwrite(),
		Label:        sm.CreateSettingTitleLabel("Confirm before overwriting:"),
		ApplyFunc:    ca.cfg.SetConfirmOverwrite,
	}, header)

	sm.CreateBoolSetting(&setting.BoolConfig{
		Name:         "Advance to next",
		InitialValue: ca.cfg.GetAdvanceNext(),
		Label:        sm.CreateSettingTitleLabel("Open next video after crop:"),
		HelpContent:  sm.CreateSettingDescriptionLabel("Makes \"Overwrite & Next\" the default choice for videos."),
		ApplyFunc:    ca.cfg.SetAdvanceNext,
	}, header)

	sm.CreateSelectSetting(&setting.SelectConfig{
		Name:         "JPEG quality",
		Options:      qualityOptions(),
		InitialValue: qualityIndex(ca.cfg.GetJPEGQuality()),
		Label:        sm.CreateSettingTitleLabel("JPEG quality:"),
		ApplyFunc: func(i int) {
			ca.cfg.SetJPEGQuality(jpegQualities[i])
		},
		NeedsRefresh: true,
	}, header)

	header.Add(widget.NewSeparator())
	header.Add(sm.CreateSectionTitleLabel("Tools"))

	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:              "FFmpeg",
		InitialValue:      ca.cfg.GetFFmpegPath(),
		PlaceHolder:       "ffmpeg",
		Label:             sm.CreateSettingTitleLabel("FFmpeg executable:"),
		HelpContent:       sm.CreateSettingDescriptionLabel(fmt.Sprintf("Overridden by $%s when set.", config.EnvFFmpeg)),
		PostValidateCheck: checkExecutable,
		ApplyFunc:         ca.cfg.SetFFmpegPath,
		NeedsRefresh:      true,
	}, header)

	sm.CreateTextEntrySetting(&setting.TextEntrySettingConfig{
		Name:              "Face cascade",
		InitialValue:      ca.cfg.GetFaceCascade(),
		PlaceHolder:       "/path/to/facefinder",
		Label:             sm.CreateSettingTitleLabel("Face cascade file:"),
		HelpContent:       sm.CreateSettingDescriptionLabel(fmt.Sprintf("pigo cascade used by face placement. Overridden by $%s.", config.EnvFaceCascade)),
		PostValidateCheck: checkOptionalFile,
		ApplyFunc:         ca.cfg.SetFaceCascade,
		NeedsRefresh:      true,
	}, header)

	header.Add(widget.NewSeparator())
	sm.CreateButtonWithConfirmationSetting(&setting.ButtonWithConfirmationConfig{
		Name:           "Reset crop sizes",
		Label:          sm.CreateSettingTitleLabel("Crop sizes:"),
		ButtonText:     "Restore defaults",
		ConfirmTitle:   "Restore default crop sizes",
		ConfirmMessage: fmt.Sprintf("Replace the crop sizes with %s?", crop.FormatPresetList(crop.DefaultPresets)),
		OnPressed: func() {
			ca.cfg.SetPresets(crop.DefaultPresets)
			ca.cfg.SetSelectedPreset(0)
			ca.reloadSettings()
			w.Close()
		},
	}, header)

	sm.RegisterRefreshFunc(ca.reloadSettings)

	closeButton := widget.NewButton("Close", w.Close)
	footer := container.NewHBox(layout.NewSpacer(), sm.GetApplySettingsButton(), closeButton)

	w.SetContent(container.NewBorder(nil, footer, nil, nil, container.NewVScroll(header)))
	w.Resize(fyne.NewSize(760, 640))
	w.CenterOnScreen()
	w.Show()
}

// reloadSettings rebuilds the tools and the preset catalog from config.
// The loaded media stays, with a fresh region at the origin.
func (ca *CropperApp) reloadSettings() {
	if ca.busy.Value() {
		log.Printf("Settings applied while busy; tools reload on next change")
		return
	}
	ca.configureTools()

	catalog, err := ca.cfg.NewCatalog()
	if err != nil {
		log.Printf("Keeping current presets: %v", err)
		return
	}
	ca.session = crop.NewSession(catalog)
	ca.view.session = ca.session

	ca.presets.SetPresets(catalog.Presets(), catalog.SelectedIndex())

	ca.regionSeq++
	if ca.preview == nil {
		ca.reportRegion(nil)
		return
	}
	ca.reportRegion(ca.session.LoadMedia(ca.preview.Surface))
}

func strategyIndex(s media.Strategy) int {
	for i, o := range placementOptions {
		if o == s {
			return i
		}
	}
	return 0
}

func qualityOptions() []string {
	opts := make([]string, len(jpegQualities))
	for i, q := range jpegQualities {
		opts[i] = strconv.Itoa(q)
	}
	return opts
}

func qualityIndex(q int) int {
	for i, v := range jpegQualities {
		if v == q {
			return i
		}
	}
	return len(jpegQualities) - 2 // 95
}

// checkExecutable accepts a command name on PATH or a path to a program.
func checkExecutable(s string) error {
	if s == "" {
		return errors.New("executable is required")
	}
	if _, err := exec.LookPath(s); err != nil {
		return fmt.Errorf("not found: %s", s)
	}
	return nil
}

// checkOptionalFile accepts an empty value or an existing regular file.
func checkOptionalFile(s string) error {
	if s == "" {
		return nil
	}
	info, err := os.Stat(s)
	if err != nil {
		return fmt.Errorf("not found: %s", s)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", s)
	}
	return nil
}
