package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppConfig(t *testing.T) {
	t.Setenv(EnvFFmpeg, "")
	t.Setenv(EnvFaceCascade, "")

	prefs := NewMemoryPreferences()
	cfg := NewAppConfig(prefs)

	t.Run("Presets", func(t *testing.T) {
		// Default should be the built-in list
		assert.Equal(t, crop.DefaultPresets, cfg.GetPresets())

		cfg.SetPresets([]crop.Preset{{Width: 300, Height: 200}, {Width: 64, Height: 64}})
		assert.Equal(t, []string{"300x200", "64x64"}, prefs.StringList(PresetsKey))
		assert.Equal(t, []crop.Preset{{Width: 300, Height: 200}, {Width: 64, Height: 64}}, cfg.GetPresets())

		prefs.SetStringList(PresetsKey, []string{"300x200", "banana"})
		assert.Equal(t, crop.DefaultPresets, cfg.GetPresets())

		prefs.RemoveValue(PresetsKey)
	})

	t.Run("DefaultsAreCopies", func(t *testing.T) {
		got := cfg.GetPresets()
		got[0] = crop.Preset{Width: 1, Height: 1}
		assert.NotEqual(t, got[0], crop.DefaultPresets[0])
	})

	t.Run("Catalog", func(t *testing.T) {
		cfg.SetSelectedPreset(2)
		catalog, err := cfg.NewCatalog()
		require.NoError(t, err)
		assert.Equal(t, 2, catalog.SelectedIndex())

		cfg.SetSelectedPreset(99)
		catalog, err = cfg.NewCatalog()
		require.NoError(t, err)
		assert.Equal(t, 0, catalog.SelectedIndex())
	})

	t.Run("AdvanceNext", func(t *testing.T) {
		// Default should be true
		assert.True(t, cfg.GetAdvanceNext())

		cfg.SetAdvanceNext(false)
		assert.False(t, cfg.GetAdvanceNext())
	})

	t.Run("ConfirmOverwrite", func(t *testing.T) {
		assert.True(t, cfg.GetConfirmOverwrite())

		cfg.SetConfirmOverwrite(false)
		assert.False(t, cfg.GetConfirmOverwrite())
	})

	t.Run("Placement", func(t *testing.T) {
		assert.Equal(t, "Smart", cfg.GetPlacement())

		cfg.SetPlacement("Face")
		assert.Equal(t, "Face", cfg.GetPlacement())
	})

	t.Run("LastDir", func(t *testing.T) {
		assert.Empty(t, cfg.GetLastDir())

		cfg.SetLastDir("/tmp/clips")
		assert.Equal(t, "/tmp/clips", cfg.GetLastDir())
	})

	t.Run("JPEGQuality", func(t *testing.T) {
		assert.Equal(t, 95, cfg.GetJPEGQuality())

		cfg.SetJPEGQuality(80)
		assert.Equal(t, 80, cfg.GetJPEGQuality())

		cfg.SetJPEGQuality(0)
		assert.Equal(t, 95, cfg.GetJPEGQuality())
	})
}

func TestAppConfig_EnvOverrides(t *testing.T) {
	cfg := NewAppConfig(NewMemoryPreferences())

	t.Setenv(EnvFFmpeg, "")
	assert.Equal(t, "ffmpeg", cfg.GetFFmpegPath())

	cfg.SetFFmpegPath("/opt/ffmpeg/bin/ffmpeg")
	assert.Equal(t, "/opt/ffmpeg/bin/ffmpeg", cfg.GetFFmpegPath())

	t.Setenv(EnvFFmpeg, "/usr/local/bin/ffmpeg")
	assert.Equal(t, "/usr/local/bin/ffmpeg", cfg.GetFFmpegPath())

	t.Setenv(EnvFaceCascade, "  ")
	cfg.SetFaceCascade("/data/facefinder")
	assert.Equal(t, "/data/facefinder", cfg.GetFaceCascade())

	t.Setenv(EnvFaceCascade, "/env/facefinder")
	assert.Equal(t, "/env/facefinder", cfg.GetFaceCascade())
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "cropper.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CROPPER_FFMPEG=/from/dotenv/ffmpeg\nCROPPER_FACE_CASCADE=/from/dotenv/cascade\n"), 0644))

	// Already-set variables win over the file.
	t.Setenv(EnvFaceCascade, "/from/shell")
	t.Setenv(EnvFFmpeg, "")
	require.NoError(t, os.Unsetenv(EnvFFmpeg))

	require.NoError(t, LoadEnv(filepath.Join(dir, "missing.env"), envFile))
	assert.Equal(t, "/from/dotenv/ffmpeg", os.Getenv(EnvFFmpeg))
	assert.Equal(t, "/from/shell", os.Getenv(EnvFaceCascade))
}

func TestMemoryPreferences(t *testing.T) {
	prefs := NewMemoryPreferences()

	calls := 0
	prefs.AddChangeListener(func() { calls++ })

	assert.Equal(t, 7, prefs.IntWithFallback("n", 7))
	prefs.SetInt("n", 3)
	assert.Equal(t, 3, prefs.Int("n"))

	// A value of another type reads as the fallback.
	assert.Equal(t, "x", prefs.StringWithFallback("n", "x"))

	prefs.SetFloatList("f", []float64{1.5})
	assert.Equal(t, []float64{1.5}, prefs.FloatList("f"))

	prefs.RemoveValue("n")
	assert.Zero(t, prefs.Int("n"))

	assert.Equal(t, 2, calls)
	assert.Len(t, prefs.ChangeListeners(), 1)
}
