package asset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssetManager(t *testing.T) {
	am := NewManager()

	t.Run("GetText", func(t *testing.T) {
		for _, name := range []string{"help.txt", "confirm_video.txt", "confirm_image.txt"} {
			text, err := am.GetText(name)
			assert.NoError(t, err, name)
			assert.NotEmpty(t, text, name)
			assert.NotEqual(t, '\n', rune(text[len(text)-1]), "trailing newline should be trimmed")
		}

		// Test loading a non-existent text file
		_, err := am.GetText("non_existent.txt")
		assert.Error(t, err)
	})

	t.Run("MustText", func(t *testing.T) {
		assert.Contains(t, am.MustText("confirm_video.txt", ""), "ffmpeg")
		assert.Equal(t, "fallback", am.MustText("non_existent.txt", "fallback"))
	})
}
