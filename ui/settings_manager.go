package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dixieflatline76/Cropper/ui/setting"
)

// SettingsManager handles UI elements for settings.
type SettingsManager struct {
	chgPrefsCallbacks map[string]func()
	refreshFlags      map[string]bool
	refreshFuncs      []func()
	applyButton       *widget.Button
	prefsWindow       fyne.Window
}

// NewSettingsManager creates a new SettingsManager.
func NewSettingsManager(window fyne.Window) *SettingsManager {
	sm := &SettingsManager{
		chgPrefsCallbacks: make(map[string]func()),
		refreshFlags:      make(map[string]bool),
		prefsWindow:       window,
	}
	sm.applyButton = widget.NewButton("Apply Changes", sm.apply)
	sm.applyButton.Disable()
	return sm
}

var _ setting.SettingsManager = (*SettingsManager)(nil)

// apply runs every pending change, then the refresh funcs once if any
// applied setting asked for a refresh.
func (sm *SettingsManager) apply() {
	sm.applyButton.Disable()

	for _, callback := range sm.chgPrefsCallbacks {
		callback()
	}
	sm.chgPrefsCallbacks = make(map[string]func())

	if len(sm.refreshFlags) > 0 {
		for _, rf := range sm.refreshFuncs {
			rf()
		}
		sm.refreshFlags = make(map[string]bool)
	}
	sm.checkAndEnableApply()
}

func (sm *SettingsManager) checkAndEnableApply() {
	if len(sm.refreshFlags) > 0 || len(sm.chgPrefsCallbacks) > 0 {
		sm.applyButton.Enable()
	} else {
		sm.applyButton.Disable()
	}
}

// track records or clears a pending change depending on whether the value
// differs from its initial state.
func (sm *SettingsManager) track(name string, changed, needsRefresh bool, apply func()) {
	if changed {
		sm.SetSettingChangedCallback(name, apply)
		if needsRefresh {
			sm.SetRefreshFlag(name)
		}
	} else {
		sm.RemoveSettingChangedCallback(name)
		if needsRefresh {
			sm.UnsetRefreshFlag(name)
		}
	}
	sm.checkAndEnableApply()
}

// GetApplySettingsButton returns the Apply Changes button.
func (sm *SettingsManager) GetApplySettingsButton() *widget.Button {
	return sm.applyButton
}

// CreateSelectSetting creates a select widget.
func (sm *SettingsManager) CreateSelectSetting(cfg *setting.SelectConfig, header *fyne.Container) {
	selectWidget := widget.NewSelect(cfg.Options, nil)
	selectWidget.SetSelectedIndex(cfg.InitialValue)

	header.Add(NewSplitRow(cfg.Label, selectWidget, labelFraction))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}

	selectWidget.OnChanged = func(string) {
		selectedIndex := selectWidget.SelectedIndex()
		sm.track(cfg.Name, selectedIndex != cfg.InitialValue, cfg.NeedsRefresh, func() {
			cfg.ApplyFunc(selectedIndex)
			cfg.InitialValue = selectedIndex
		})
	}
}

// CreateBoolSetting creates a boolean check setting.
func (sm *SettingsManager) CreateBoolSetting(cfg *setting.BoolConfig, header *fyne.Container) *widget.Check {
	check := widget.NewCheck("", nil)
	check.SetChecked(cfg.InitialValue)

	header.Add(NewSplitRow(cfg.Label, check, labelFraction))
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}

	check.OnChanged = func(b bool) {
		sm.track(cfg.Name, b != cfg.InitialValue, cfg.NeedsRefresh, func() {
			cfg.ApplyFunc(b)
			cfg.InitialValue = b
		})
	}
	return check
}

// CreateTextEntrySetting creates a text entry setting with a status line.
func (sm *SettingsManager) CreateTextEntrySetting(cfg *setting.TextEntrySettingConfig, header *fyne.Container) {
	entry := widget.NewEntry()
	entry.SetPlaceHolder(cfg.PlaceHolder)
	entry.SetText(cfg.InitialValue)
	if cfg.Validator != nil {
		entry.Validator = cfg.Validator
	}

	statusLabel := widget.NewLabel("")

	header.Add(NewSplitRow(cfg.Label, entry, labelFraction))
	if cfg.HelpContent != nil {
		header.Add(NewSplitRowWithAlignment(cfg.HelpContent, statusLabel, 2.0/3, SplitAlign.Opposed))
	} else {
		header.Add(NewSplitRow(widget.NewLabel(""), statusLabel, 2.0/3))
	}

	entry.OnChanged = func(s string) {
		err := entry.Validate()
		if err == nil && cfg.PostValidateCheck != nil {
			err = cfg.PostValidateCheck(s)
		}

		if err != nil {
			statusLabel.SetText(err.Error())
			statusLabel.Importance = widget.DangerImportance
			sm.track(cfg.Name, false, cfg.NeedsRefresh, nil)
		} else {
			statusLabel.SetText(fmt.Sprintf("%s OK", cfg.Name))
			statusLabel.Importance = widget.SuccessImportance
			sm.track(cfg.Name, s != cfg.InitialValue, cfg.NeedsRefresh, func() {
				cfg.ApplyFunc(entry.Text)
				cfg.InitialValue = entry.Text
			})
		}
		statusLabel.Refresh()
	}
}

// CreateButtonWithConfirmationSetting creates a button that asks before acting.
func (sm *SettingsManager) CreateButtonWithConfirmationSetting(cfg *setting.ButtonWithConfirmationConfig, header *fyne.Container) {
	button := widget.NewButton(cfg.ButtonText, func() {
		if cfg.ConfirmTitle == "" || cfg.ConfirmMessage == "" {
			cfg.OnPressed()
			return
		}
		dialog.ShowConfirm(cfg.ConfirmTitle, cfg.ConfirmMessage, func(b bool) {
			if b {
				cfg.OnPressed()
			}
		}, sm.prefsWindow)
	})

	if cfg.Label != nil {
		header.Add(NewSplitRow(cfg.Label, button, labelFraction))
	} else {
		header.Add(button)
	}
	if cfg.HelpContent != nil {
		header.Add(cfg.HelpContent)
	}
}

// SetSettingChangedCallback sets a callback function to be called when a setting changes.
func (sm *SettingsManager) SetSettingChangedCallback(settingName string, callback func()) {
	sm.chgPrefsCallbacks[settingName] = callback
}

// RemoveSettingChangedCallback removes a callback function associated with a specific setting.
func (sm *SettingsManager) RemoveSettingChangedCallback(settingName string) {
	delete(sm.chgPrefsCallbacks, settingName)
}

// SetRefreshFlag sets a flag to indicate that a specific setting needs a refresh.
func (sm *SettingsManager) SetRefreshFlag(settingName string) {
	sm.refreshFlags[settingName] = true
}

// UnsetRefreshFlag removes the refresh flag for a specific setting.
func (sm *SettingsManager) UnsetRefreshFlag(settingName string) {
	delete(sm.refreshFlags, settingName)
}

// RegisterRefreshFunc registers a function run after applied changes that need a refresh.
func (sm *SettingsManager) RegisterRefreshFunc(refreshFunc func()) {
	sm.refreshFuncs = append(sm.refreshFuncs, refreshFunc)
}

// GetSettingsWindow returns the window associated with the SettingsManager.
func (sm *SettingsManager) GetSettingsWindow() fyne.Window {
	return sm.prefsWindow
}

func settingLabel(text string, importance widget.Importance, style fyne.TextStyle) *widget.Label {
	label := widget.NewLabelWithStyle(text, fyne.TextAlignLeading, style)
	label.Wrapping = fyne.TextWrapWord
	label.Importance = importance
	return label
}

// CreateSectionTitleLabel creates the heading of a group of settings.
func (sm *SettingsManager) CreateSectionTitleLabel(desc string) *widget.Label {
	return settingLabel(desc, widget.HighImportance, fyne.TextStyle{Bold: true})
}

// CreateSettingTitleLabel creates the name label of one setting.
func (sm *SettingsManager) CreateSettingTitleLabel(desc string) *widget.Label {
	return settingLabel(desc, widget.MediumImportance, fyne.TextStyle{Bold: true})
}

// CreateSettingDescriptionLabel creates the help text under a setting.
func (sm *SettingsManager) CreateSettingDescriptionLabel(desc string) *widget.Label {
	return settingLabel(desc, widget.LowImportance, fyne.TextStyle{Italic: true})
}
