package crop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClamp_StaysInside(t *testing.T) {
	surfaces := []Surface{{512, 512}, {1000, 800}, {1920, 1080}, {720, 1280}}
	sizes := []Preset{{1, 1}, {512, 512}, {720, 720}, {100, 300}}
	positions := []float64{-1e9, -513, -1, -0.5, 0, 0.25, 17, 288, 499.9, 1000, 1e9}

	for _, s := range surfaces {
		for _, p := range sizes {
			if !s.Fits(p) {
				continue
			}
			for _, px := range positions {
				for _, py := range positions {
					x, y := Clamp(px, py, p, s)
					assert.GreaterOrEqual(t, x, 0.0)
					assert.GreaterOrEqual(t, y, 0.0)
					assert.LessOrEqual(t, x, float64(s.Width-p.Width), "surface %s size %s px %v", s, p, px)
					assert.LessOrEqual(t, y, float64(s.Height-p.Height), "surface %s size %s py %v", s, p, py)
				}
			}
		}
	}
}

func TestClamp_Idempotent(t *testing.T) {
	s := Surface{1000, 800}
	p := Preset{512, 512}

	x, y := Clamp(100, 50, p, s)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)

	x2, y2 := Clamp(x, y, p, s)
	assert.Equal(t, x, x2)
	assert.Equal(t, y, y2)
}

func TestClamp_PerAxis(t *testing.T) {
	s := Surface{1000, 800}
	p := Preset{512, 512}

	x, y := Clamp(-20, 9999, p, s)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 288.0, y)

	x, y = Clamp(700, -3, p, s)
	assert.Equal(t, 488.0, x)
	assert.Equal(t, 0.0, y)
}

func TestClamp_NonFinite(t *testing.T) {
	s := Surface{1000, 800}
	p := Preset{512, 512}

	x, y := Clamp(math.NaN(), math.NaN(), p, s)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)

	x, y = Clamp(math.Inf(1), math.Inf(-1), p, s)
	assert.Equal(t, 488.0, x)
	assert.Equal(t, 0.0, y)

	r, err := NewRegion(p, s)
	require.NoError(t, err)
	r.ProposeMove(300, math.NaN())
	assert.Equal(t, Plan{X: 300, Y: 0, Width: 512, Height: 512}, r.Plan())
}

func TestNewRegion_RejectsOversizedPreset(t *testing.T) {
	_, err := NewRegion(Preset{1024, 1024}, Surface{800, 600})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPresetTooLarge)

	// One axis too large is enough.
	_, err = NewRegion(Preset{512, 700}, Surface{800, 600})
	assert.ErrorIs(t, err, ErrPresetTooLarge)
}

func TestNewRegion_ExactFit(t *testing.T) {
	r, err := NewRegion(Preset{800, 600}, Surface{800, 600})
	require.NoError(t, err)

	x, y := r.ProposeMove(40, 40)
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
}

func TestRegion_MoveByAccumulates(t *testing.T) {
	r, err := NewRegion(Preset{512, 512}, Surface{1000, 800})
	require.NoError(t, err)

	r.MoveBy(10.5, 4.25)
	r.MoveBy(10.5, 4.25)
	x, y := r.Position()
	assert.Equal(t, 21.0, x)
	assert.Equal(t, 8.5, y)

	// Dragging far past the edge pins to the edge, and dragging back moves from there.
	r.MoveBy(5000, 0)
	r.MoveBy(-10, 0)
	x, _ = r.Position()
	assert.Equal(t, 478.0, x)
}

func TestRegion_PlanTruncates(t *testing.T) {
	r, err := NewRegion(Preset{512, 512}, Surface{1000, 800})
	require.NoError(t, err)

	r.ProposeMove(100.99, 50.7)
	plan := r.Plan()
	assert.Equal(t, Plan{X: 100, Y: 50, Width: 512, Height: 512}, plan)
	assert.Equal(t, int(math.Trunc(100.99)), plan.X)
	assert.Equal(t, 612, r.Bounds().Max.X)
}
