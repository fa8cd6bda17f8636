package media

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spotImage is a flat gray canvas with one busy, saturated patch.
func spotImage(width, height int, spot image.Rectangle) image.Image {
	img := imaging.New(width, height, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	for y := spot.Min.Y; y < spot.Max.Y; y++ {
		for x := spot.Min.X; x < spot.Max.X; x++ {
			c := color.NRGBA{R: 230, G: 40, B: 40, A: 255}
			if (x/4+y/4)%2 == 0 {
				c = color.NRGBA{R: 250, G: 200, B: 120, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestParseStrategy(t *testing.T) {
	for name, want := range map[string]Strategy{"smart": PlaceSmart, "Face": PlaceFace, " None ": PlaceNone} {
		got, err := ParseStrategy(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	for _, s := range Strategies {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	for _, name := range []string{"smrt", "", "faces"} {
		_, err := ParseStrategy(name)
		assert.ErrorIs(t, err, ErrUnknownStrategy, name)
	}
}

func TestPlacer_None(t *testing.T) {
	p, err := NewPlacer(nil)
	require.NoError(t, err)
	assert.False(t, p.HasFaceDetection())

	x, y, err := p.Suggest(context.Background(), spotImage(400, 300, image.Rect(0, 0, 1, 1)), crop.Preset{Width: 100, Height: 100}, PlaceNone)
	require.NoError(t, err)
	assert.Zero(t, x)
	assert.Zero(t, y)
}

func TestPlacer_SmartClampsIntoSurface(t *testing.T) {
	p, err := NewPlacer(nil)
	require.NoError(t, err)

	img := spotImage(600, 400, image.Rect(420, 240, 540, 360))
	size := crop.Preset{Width: 200, Height: 200}
	surface, err := crop.SurfaceOf(img)
	require.NoError(t, err)

	x, y, err := p.Suggest(context.Background(), img, size, PlaceSmart)
	require.NoError(t, err)

	cx, cy := crop.Clamp(x, y, size, surface)
	assert.GreaterOrEqual(t, cx, 0.0)
	assert.GreaterOrEqual(t, cy, 0.0)
	assert.LessOrEqual(t, cx+float64(size.Width), float64(surface.Width))
	assert.LessOrEqual(t, cy+float64(size.Height), float64(surface.Height))
}

func TestPlacer_FaceWithoutCascadeFallsBackToSmart(t *testing.T) {
	p, err := NewPlacer(nil)
	require.NoError(t, err)

	img := spotImage(600, 400, image.Rect(60, 40, 180, 160))
	size := crop.Preset{Width: 200, Height: 200}

	fx, fy, err := p.Suggest(context.Background(), img, size, PlaceFace)
	require.NoError(t, err)
	sx, sy, err := p.Suggest(context.Background(), img, size, PlaceSmart)
	require.NoError(t, err)

	assert.Equal(t, sx, fx)
	assert.Equal(t, sy, fy)
}

func TestResizer(t *testing.T) {
	r := &resizer{resampler: imaging.Lanczos}
	out := r.Resize(imaging.New(100, 50, color.White), 40, 20)
	assert.Equal(t, image.Rect(0, 0, 40, 20), out.Bounds())
}
