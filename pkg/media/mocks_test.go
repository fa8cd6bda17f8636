package media

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/stretchr/testify/mock"
)

// MockRunner implements Runner for testing
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, name string, args []string) ([]byte, []byte, error) {
	ret := m.Called(name, args)
	var stdout, stderr []byte
	if v := ret.Get(0); v != nil {
		stdout = v.([]byte)
	}
	if v := ret.Get(1); v != nil {
		stderr = v.([]byte)
	}
	return stdout, stderr, ret.Error(2)
}

// MockExecutor implements Executor for testing
type MockExecutor struct {
	mock.Mock
}

func (m *MockExecutor) Execute(ctx context.Context, path string, plan crop.Plan) error {
	args := m.Called(path, plan)
	return args.Error(0)
}

// patternImage returns an opaque image whose pixels encode their coordinates.
func patternImage(t *testing.T, width, height int) *image.NRGBA {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: uint8(x/256 + y/256*4), A: 255})
		}
	}
	return img
}
