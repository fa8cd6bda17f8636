package media

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644))
	}
}

func TestNextSibling(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mp4", "b.mkv", "c.mov", "notes.txt", "poster.png")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "b2.mp4"), 0755))

	tests := []struct {
		name   string
		from   string
		want   string
		wantOK bool
	}{
		{"First", "a.mp4", "b.mkv", true},
		{"Middle", "b.mkv", "c.mov", true},
		{"Last", "c.mov", "", false},
		{"NotListed", "zzz.mp4", "", false},
		{"NotAVideo", "notes.txt", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NextSibling(filepath.Join(dir, tt.from))
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, filepath.Join(dir, tt.want), got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestNextSibling_CaseInsensitiveExtensions(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "A.MP4", "B.Mkv", "c.WEBM")

	got, ok := NextSibling(filepath.Join(dir, "A.MP4"))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "B.Mkv"), got)

	got, ok = NextSibling(filepath.Join(dir, "B.Mkv"))
	require.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "c.WEBM"), got)
}

func TestNextSibling_MissingDirectory(t *testing.T) {
	got, ok := NextSibling(filepath.Join(t.TempDir(), "missing", "a.mp4"))
	assert.False(t, ok)
	assert.Empty(t, got)
}
