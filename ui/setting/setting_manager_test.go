package setting

import (
	"testing"

	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/stretchr/testify/assert"
)

type mockStringer struct {
	val string
}

func (m mockStringer) String() string {
	return m.val
}

func TestStringOptions(t *testing.T) {
	tests := []struct {
		name     string
		input    []mockStringer
		expected []string
	}{
		{
			name:     "Empty slice",
			input:    []mockStringer{},
			expected: []string{},
		},
		{
			name:     "Single item",
			input:    []mockStringer{{val: "Option 1"}},
			expected: []string{"Option 1"},
		},
		{
			name:     "Multiple items",
			input:    []mockStringer{{val: "Option 1"}, {val: "Option 2"}, {val: "Option 3"}},
			expected: []string{"Option 1", "Option 2", "Option 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StringOptions(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestStringOptions_Presets(t *testing.T) {
	assert.Equal(t, []string{"512x512", "720x1280"}, StringOptions([]crop.Preset{{Width: 512, Height: 512}, {Width: 720, Height: 1280}}))
}
