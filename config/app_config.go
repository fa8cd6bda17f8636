package config

import (
	"log"

	"fyne.io/fyne/v2"
	"github.com/dixieflatline76/Cropper/pkg/crop"
)

// AppConfig holds the application-wide configuration
type AppConfig struct {
	prefs fyne.Preferences
}

// NewAppConfig creates a new AppConfig instance
func NewAppConfig(p fyne.Preferences) *AppConfig {
	return &AppConfig{prefs: p}
}

// Preferences returns the underlying preference store.
func (c *AppConfig) Preferences() fyne.Preferences {
	return c.prefs
}

// PresetsKey is the key for the crop preset list, stored as WxH strings
const PresetsKey = "crop_presets"

// GetPresets returns the configured presets. A missing or malformed list
// falls back to crop.DefaultPresets.
func (c *AppConfig) GetPresets() []crop.Preset {
	values := c.prefs.StringListWithFallback(PresetsKey, nil)
	if len(values) == 0 {
		return defaultPresets()
	}
	presets, err := crop.ParsePresets(values)
	if err != nil {
		log.Printf("Ignoring stored presets %v: %v", values, err)
		return defaultPresets()
	}
	return presets
}

// SetPresets stores the preset list
func (c *AppConfig) SetPresets(presets []crop.Preset) {
	values := make([]string, len(presets))
	for i, p := range presets {
		values[i] = p.String()
	}
	c.prefs.SetStringList(PresetsKey, values)
}

func defaultPresets() []crop.Preset {
	return append([]crop.Preset(nil), crop.DefaultPresets...)
}

// SelectedPresetKey is the key for the index of the selected preset
const SelectedPresetKey = "selected_preset"

// GetSelectedPreset returns the stored preset index
func (c *AppConfig) GetSelectedPreset() int {
	return c.prefs.IntWithFallback(SelectedPresetKey, 0)
}

// SetSelectedPreset stores the preset index
func (c *AppConfig) SetSelectedPreset(index int) {
	c.prefs.SetInt(SelectedPresetKey, index)
}

// NewCatalog builds the preset catalog with the stored selection applied.
// A stale selection outside the list is ignored.
func (c *AppConfig) NewCatalog() (*crop.Catalog, error) {
	catalog, err := crop.NewCatalog(c.GetPresets())
	if err != nil {
		return nil, err
	}
	if _, err := catalog.Select(c.GetSelectedPreset()); err != nil {
		log.Printf("Stored preset selection ignored: %v", err)
	}
	return catalog, nil
}

// AdvanceNextKey is the key for moving to the next video after a crop
const AdvanceNextKey = "advance_next_video"

// GetAdvanceNext returns whether a video crop should open the next video
func (c *AppConfig) GetAdvanceNext() bool {
	return c.prefs.BoolWithFallback(AdvanceNextKey, true)
}

// SetAdvanceNext sets whether a video crop should open the next video
func (c *AppConfig) SetAdvanceNext(enabled bool) {
	c.prefs.SetBool(AdvanceNextKey, enabled)
}

// ConfirmOverwriteKey is the key for asking before a file is overwritten
const ConfirmOverwriteKey = "confirm_overwrite"

// GetConfirmOverwrite returns whether to confirm before overwriting
func (c *AppConfig) GetConfirmOverwrite() bool {
	return c.prefs.BoolWithFallback(ConfirmOverwriteKey, true)
}

// SetConfirmOverwrite sets whether to confirm before overwriting
func (c *AppConfig) SetConfirmOverwrite(enabled bool) {
	c.prefs.SetBool(ConfirmOverwriteKey, enabled)
}

// FFmpegPathKey is the key for the video tool executable
const FFmpegPathKey = "ffmpeg_path"

// GetFFmpegPath returns the video tool, preferring $CROPPER_FFMPEG
func (c *AppConfig) GetFFmpegPath() string {
	return getEnv(EnvFFmpeg, c.prefs.StringWithFallback(FFmpegPathKey, "ffmpeg"))
}

// SetFFmpegPath sets the video tool executable
func (c *AppConfig) SetFFmpegPath(path string) {
	c.prefs.SetString(FFmpegPathKey, path)
}

// PlacementKey is the key for the auto placement strategy name
const PlacementKey = "placement_strategy"

// GetPlacement returns the placement strategy name
func (c *AppConfig) GetPlacement() string {
	return c.prefs.StringWithFallback(PlacementKey, "Smart")
}

// SetPlacement sets the placement strategy name
func (c *AppConfig) SetPlacement(name string) {
	c.prefs.SetString(PlacementKey, name)
}

// FaceCascadeKey is the key for the pigo face cascade file
const FaceCascadeKey = "face_cascade_path"

// GetFaceCascade returns the face cascade path, preferring $CROPPER_FACE_CASCADE
func (c *AppConfig) GetFaceCascade() string {
	return getEnv(EnvFaceCascade, c.prefs.StringWithFallback(FaceCascadeKey, ""))
}

// SetFaceCascade sets the face cascade path
func (c *AppConfig) SetFaceCascade(path string) {
	c.prefs.SetString(FaceCascadeKey, path)
}

// LastDirKey is the key for the directory of the last opened file
const LastDirKey = "last_dir"

// GetLastDir returns the directory of the last opened file
func (c *AppConfig) GetLastDir() string {
	return c.prefs.StringWithFallback(LastDirKey, "")
}

// SetLastDir stores the directory of the last opened file
func (c *AppConfig) SetLastDir(dir string) {
	c.prefs.SetString(LastDirKey, dir)
}

// JPEGQualityKey is the key for the JPEG re-encode quality
const JPEGQualityKey = "jpeg_quality"

// GetJPEGQuality returns the JPEG quality, clamped to 1..100
func (c *AppConfig) GetJPEGQuality() int {
	q := c.prefs.IntWithFallback(JPEGQualityKey, 95)
	if q < 1 || q > 100 {
		return 95
	}
	return q
}

// SetJPEGQuality sets the JPEG quality
func (c *AppConfig) SetJPEGQuality(quality int) {
	c.prefs.SetInt(JPEGQualityKey, quality)
}
