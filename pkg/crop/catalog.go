package crop

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Preset is one fixed crop size the operator may select.
type Preset struct {
	Width  int
	Height int
}

func (p Preset) String() string {
	return fmt.Sprintf("%dx%d", p.Width, p.Height)
}

// DefaultPresets is the preset list used when nothing is configured.
var DefaultPresets = []Preset{
	{512, 512},
	{768, 768},
	{1024, 1024},
	{720, 1280},
	{1280, 720},
}

// ParsePreset parses a "WxH" string such as "1280x720".
func ParsePreset(s string) (Preset, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), "x")
	if len(parts) != 2 {
		return Preset{}, fmt.Errorf("invalid preset %q: expected WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Preset{}, fmt.Errorf("invalid preset width %q: %w", parts[0], err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Preset{}, fmt.Errorf("invalid preset height %q: %w", parts[1], err)
	}
	if w <= 0 || h <= 0 {
		return Preset{}, fmt.Errorf("invalid preset %q: dimensions must be positive", s)
	}
	return Preset{Width: w, Height: h}, nil
}

// ParsePresets parses a list of "WxH" strings, keeping their order.
func ParsePresets(values []string) ([]Preset, error) {
	presets := make([]Preset, 0, len(values))
	for _, v := range values {
		p, err := ParsePreset(v)
		if err != nil {
			return nil, err
		}
		presets = append(presets, p)
	}
	return presets, nil
}

// ParsePresetList parses a comma or space separated list such as
// "512x512, 1280x720". An empty list is an error.
func ParsePresetList(s string) ([]Preset, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) == 0 {
		return nil, fmt.Errorf("no presets in %q", s)
	}
	return ParsePresets(fields)
}

// FormatPresetList is the inverse of ParsePresetList.
func FormatPresetList(presets []Preset) string {
	parts := make([]string, len(presets))
	for i, p := range presets {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

// Catalog is the fixed, ordered list of presets plus the current selection.
type Catalog struct {
	presets  []Preset
	selected int
}

// NewCatalog copies presets into a new Catalog with the first entry selected.
func NewCatalog(presets []Preset) (*Catalog, error) {
	if len(presets) == 0 {
		return nil, fmt.Errorf("catalog needs at least one preset")
	}
	own := make([]Preset, len(presets))
	for i, p := range presets {
		if p.Width <= 0 || p.Height <= 0 {
			return nil, fmt.Errorf("preset %d (%s) has non-positive dimensions", i, p)
		}
		own[i] = p
	}
	return &Catalog{presets: own}, nil
}

// Select makes the preset at index current and returns it.
func (c *Catalog) Select(index int) (Preset, error) {
	if index < 0 || index >= len(c.presets) {
		return Preset{}, fmt.Errorf("%w: index %d not in [0,%d)", ErrInvalidSelection, index, len(c.presets))
	}
	c.selected = index
	return c.presets[index], nil
}

// Selected returns the current preset.
func (c *Catalog) Selected() Preset {
	return c.presets[c.selected]
}

// SelectedIndex returns the index of the current preset.
func (c *Catalog) SelectedIndex() int {
	return c.selected
}

// Presets returns a copy of the preset list.
func (c *Catalog) Presets() []Preset {
	out := make([]Preset, len(c.presets))
	copy(out, c.presets)
	return out
}

// Len returns the number of presets.
func (c *Catalog) Len() int {
	return len(c.presets)
}
