package main

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImage(t *testing.T, path string, width, height int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), A: 255})
		}
	}
	require.NoError(t, imaging.Save(img, path))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CROPPER_FFMPEG", "")
	t.Setenv("CROPPER_FACE_CASCADE", "")

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCropCommand_Images(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.png")
	b := filepath.Join(dir, "b.jpg")
	writeImage(t, a, 300, 200)
	writeImage(t, b, 400, 300)

	out, err := execute(t, "crop", "--preset", "100x50", "--x", "250", "--y", "10", "-j", "2", a, b)
	require.NoError(t, err)
	assert.Contains(t, out, "2 cropped, 0 failed")

	for _, p := range []string{a, b} {
		img, err := imaging.Open(p)
		require.NoError(t, err)
		assert.Equal(t, 100, img.Bounds().Dx(), p)
		assert.Equal(t, 50, img.Bounds().Dy(), p)
	}

	// x=250 is clamped to 200 on the 300px wide image.
	img, err := imaging.Open(a)
	require.NoError(t, err)
	r, _, _, _ := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(200), r>>8)
}

func TestCropCommand_PresetIndex(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	writeImage(t, path, 100, 100)

	out, err := execute(t, "--presets", "20x10,40x30", "crop", "--preset", "2", path)
	require.NoError(t, err)
	assert.Contains(t, out, "40x30")

	img, err := imaging.Open(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 40, 30), img.Bounds())
}

func TestCropCommand_Failures(t *testing.T) {
	dir := t.TempDir()
	small := filepath.Join(dir, "small.png")
	ok := filepath.Join(dir, "ok.png")
	writeImage(t, small, 50, 50)
	writeImage(t, ok, 200, 200)

	before, err := os.ReadFile(small)
	require.NoError(t, err)

	out, err := execute(t, "crop", "--preset", "100x100", small, ok)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 files failed")
	assert.Contains(t, out, "FAIL "+small)
	assert.Contains(t, out, "1 cropped, 1 failed")

	after, err := os.ReadFile(small)
	require.NoError(t, err)
	assert.Equal(t, before, after, "rejected file must be untouched")
}

func TestCropCommand_BadFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	writeImage(t, path, 10, 10)

	_, err := execute(t, "crop", path)
	assert.Error(t, err, "missing --preset")

	_, err = execute(t, "crop", "--preset", "big", path)
	assert.Error(t, err)

	_, err = execute(t, "crop", "--preset", "5x5", "--jobs", "0", path)
	assert.Error(t, err)

	_, err = execute(t, "crop", "--preset", "9", path)
	assert.Error(t, err, "index outside the preset list")
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "--presets", "640x480; 1280x720", "presets")
	require.NoError(t, err)
	assert.Equal(t, "* 1. 640x480\n  2. 1280x720\n", out)

	_, err = execute(t, "--presets", "nope", "presets")
	assert.Error(t, err)
}

func TestNextCommand(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mkv", "a.mp4", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	out, err := execute(t, "next", filepath.Join(dir, "a.mp4"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "b.mkv")+"\n", out)

	_, err = execute(t, "next", filepath.Join(dir, "b.mkv"))
	assert.Error(t, err)
}

func TestExpandTargets(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"1.mp4", "2.mov", "3.webm", "x.png"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	join := func(n string) string { return filepath.Join(dir, n) }

	assert.Equal(t, []string{join("2.mov")}, expandTargets([]string{join("2.mov")}, false))
	assert.Equal(t,
		[]string{join("2.mov"), join("3.webm"), join("x.png"), join("1.mp4")},
		expandTargets([]string{join("2.mov"), join("x.png"), join("1.mp4")}, true))
}

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	writeImage(t, path, 300, 200)

	out, err := execute(t, "--presets", "100x100,250x250", "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, path+": image 300x200")
	assert.Contains(t, out, "100x100    fits")
	assert.Contains(t, out, "250x250    too large")

	_, err = execute(t, "info", filepath.Join(dir, "missing.png"))
	assert.Error(t, err)
}

func TestCropCommand_RejectsBadPlacementInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.png")
	writeImage(t, path, 200, 200)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = execute(t, "crop", "--preset", "50x50", "--place", "smrt", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"smrt"`)

	_, err = execute(t, "crop", "--preset", "50x50", "--x", "NaN", path)
	assert.Error(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "nothing is cropped when the flags are invalid")

	out, err := execute(t, "crop", "--preset", "50x50", "--place", "NONE", "--x", "20", path)
	require.NoError(t, err)
	assert.Contains(t, out, "OK   "+path)
}
