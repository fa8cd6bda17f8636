package ui

import (
	"image"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoadedView(t *testing.T, surface crop.Surface, box fyne.Size) (*surfaceView, *crop.Session) {
	t.Helper()
	test.NewTempApp(t)

	catalog, err := crop.NewCatalog(crop.DefaultPresets)
	require.NoError(t, err)
	s := crop.NewSession(catalog)
	require.NoError(t, s.LoadMedia(surface))

	v := newSurfaceView(s)
	v.SetImage(image.NewNRGBA(image.Rect(0, 0, surface.Width, surface.Height)))
	v.Resize(box)
	return v, s
}

func TestSurfaceView_DragScalesAndClamps(t *testing.T) {
	// 2000x1000 shown in 1000x500: one view unit is two media pixels.
	v, s := newLoadedView(t, crop.Surface{Width: 2000, Height: 1000}, fyne.NewSize(1000, 500))

	var movedX, movedY float64
	v.onMoved = func(x, y float64) { movedX, movedY = x, y }

	v.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(50, 20)})
	x, y := s.Region().Position()
	assert.InDelta(t, 100, x, 1e-6)
	assert.InDelta(t, 40, y, 1e-6)
	assert.Equal(t, x, movedX)
	assert.Equal(t, y, movedY)

	v.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(5000, 5000)})
	x, y = s.Region().Position()
	assert.InDelta(t, 2000-512, x, 1e-6)
	assert.InDelta(t, 1000-512, y, 1e-6)

	v.DragEnd()
	plan, err := s.Commit()
	require.NoError(t, err)
	assert.Equal(t, crop.Plan{X: 1488, Y: 488, Width: 512, Height: 512}, plan)
}

func TestSurfaceView_TapCentersRegion(t *testing.T) {
	v, s := newLoadedView(t, crop.Surface{Width: 2000, Height: 1000}, fyne.NewSize(1000, 500))

	v.Tapped(&fyne.PointEvent{Position: fyne.NewPos(500, 250)})
	x, y := s.Region().Position()
	assert.InDelta(t, 1000-256, x, 1e-6)
	assert.InDelta(t, 500-256, y, 1e-6)

	// Near the corner the centered region is clamped back inside.
	v.Tapped(&fyne.PointEvent{Position: fyne.NewPos(1, 1)})
	x, y = s.Region().Position()
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestSurfaceView_NoRegionIgnoresInput(t *testing.T) {
	test.NewTempApp(t)

	catalog, err := crop.NewCatalog([]crop.Preset{{Width: 1024, Height: 1024}})
	require.NoError(t, err)
	s := crop.NewSession(catalog)
	assert.ErrorIs(t, s.LoadMedia(crop.Surface{Width: 800, Height: 600}), crop.ErrPresetTooLarge)

	v := newSurfaceView(s)
	v.Resize(fyne.NewSize(400, 300))

	called := false
	v.onMoved = func(float64, float64) { called = true }
	v.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(10, 10)})
	v.Tapped(&fyne.PointEvent{Position: fyne.NewPos(10, 10)})

	assert.False(t, called)
	assert.Nil(t, s.Region())
	assert.Equal(t, crop.StateMediaLoaded, s.State())
}
