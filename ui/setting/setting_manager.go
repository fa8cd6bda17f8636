package setting

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// SettingsHelper creates the labels shared by every settings panel.
type SettingsHelper interface {
	CreateSectionTitleLabel(desc string) *widget.Label
	CreateSettingTitleLabel(desc string) *widget.Label
	CreateSettingDescriptionLabel(desc string) *widget.Label
}

// SelectConfig holds the configuration for a select widget.
type SelectConfig struct {
	Name         string
	Options      []string
	InitialValue int
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	ApplyFunc    func(int)
	NeedsRefresh bool
}

// BoolConfig holds configuration for a boolean check widget.
type BoolConfig struct {
	Name         string
	InitialValue bool
	Label        fyne.CanvasObject
	HelpContent  fyne.CanvasObject
	ApplyFunc    func(bool)
	NeedsRefresh bool
}

// TextEntrySettingConfig holds configuration for a text entry widget.
type TextEntrySettingConfig struct {
	Name              string
	InitialValue      string
	PlaceHolder       string
	Label             fyne.CanvasObject
	HelpContent       fyne.CanvasObject
	Validator         fyne.StringValidator
	PostValidateCheck func(string) error
	ApplyFunc         func(string)
	NeedsRefresh      bool
}

// ButtonWithConfirmationConfig holds configuration for a button guarded by a
// confirmation dialog.
type ButtonWithConfirmationConfig struct {
	Name           string
	Label          fyne.CanvasObject
	HelpContent    fyne.CanvasObject
	ButtonText     string
	ConfirmTitle   string
	ConfirmMessage string
	OnPressed      func()
}

// StringOptions converts a slice of fmt.Stringer to a slice of strings.
func StringOptions[T fmt.Stringer](options []T) []string {
	stringOptions := make([]string, 0, len(options))
	for _, option := range options {
		stringOptions = append(stringOptions, option.String())
	}
	return stringOptions
}

// SettingsManager builds settings widgets and batches their changes until
// the user applies them.
type SettingsManager interface {
	SettingsHelper

	CreateSelectSetting(cfg *SelectConfig, header *fyne.Container)
	CreateBoolSetting(cfg *BoolConfig, header *fyne.Container) *widget.Check
	CreateTextEntrySetting(cfg *TextEntrySettingConfig, header *fyne.Container)
	CreateButtonWithConfirmationSetting(cfg *ButtonWithConfirmationConfig, header *fyne.Container)

	GetApplySettingsButton() *widget.Button
	SetSettingChangedCallback(settingName string, callback func())
	RemoveSettingChangedCallback(settingName string)
	SetRefreshFlag(settingName string)
	UnsetRefreshFlag(settingName string)

	// RegisterRefreshFunc registers work to run once after applied changes
	// that set a refresh flag, like rebuilding the preset list.
	RegisterRefreshFunc(refreshFunc func())
	GetSettingsWindow() fyne.Window
}
