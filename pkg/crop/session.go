package crop

import (
	"fmt"
)

// State is the lifecycle state of a Session.
type State int

const (
	// StateNoMedia means nothing has been loaded yet.
	StateNoMedia State = iota
	// StateMediaLoaded means a surface is loaded but no region exists.
	StateMediaLoaded
	// StateRegionActive means a surface is loaded and a region can be dragged.
	StateRegionActive
)

func (s State) String() string {
	switch s {
	case StateNoMedia:
		return "no media"
	case StateMediaLoaded:
		return "media loaded"
	case StateRegionActive:
		return "region active"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Session owns the preset catalog and the single active region of one
// editing window. It is not safe for concurrent use; the host drives it from
// its UI goroutine.
type Session struct {
	catalog *Catalog
	surface Surface
	loaded  bool
	region  *Region
}

// NewSession creates a session over the given catalog.
func NewSession(catalog *Catalog) *Session {
	return &Session{catalog: catalog}
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	switch {
	case !s.loaded:
		return StateNoMedia
	case s.region == nil:
		return StateMediaLoaded
	default:
		return StateRegionActive
	}
}

// Catalog returns the session's catalog.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}

// Surface returns the loaded surface and whether one is loaded.
func (s *Session) Surface() (Surface, bool) {
	return s.surface, s.loaded
}

// Region returns the active region, or nil.
func (s *Session) Region() *Region {
	return s.region
}

// LoadMedia replaces the surface and recreates the region at the origin.
// When the selected preset does not fit, the media stays loaded without a
// region and ErrPresetTooLarge is returned.
func (s *Session) LoadMedia(surface Surface) error {
	if surface.Width <= 0 || surface.Height <= 0 {
		return fmt.Errorf("%w: invalid surface %s", ErrMediaUnreadable, surface)
	}
	s.surface = surface
	s.loaded = true
	return s.resetRegion()
}

// ChangePreset selects a catalog entry and recreates the region at the origin.
// Selecting the already selected preset still recreates the region.
func (s *Session) ChangePreset(index int) error {
	if !s.loaded {
		return ErrNoMedia
	}
	if _, err := s.catalog.Select(index); err != nil {
		return err
	}
	return s.resetRegion()
}

func (s *Session) resetRegion() error {
	s.region = nil
	r, err := NewRegion(s.catalog.Selected(), s.surface)
	if err != nil {
		return err
	}
	s.region = r
	return nil
}

// ProposeMove clamps and applies a drag position to the active region.
func (s *Session) ProposeMove(x, y float64) (float64, float64, error) {
	if s.region == nil {
		return 0, 0, s.regionErr()
	}
	cx, cy := s.region.ProposeMove(x, y)
	return cx, cy, nil
}

// MoveBy applies a relative drag to the active region.
func (s *Session) MoveBy(dx, dy float64) (float64, float64, error) {
	if s.region == nil {
		return 0, 0, s.regionErr()
	}
	cx, cy := s.region.MoveBy(dx, dy)
	return cx, cy, nil
}

// Commit derives the crop plan from the active region. The state is unchanged.
func (s *Session) Commit() (Plan, error) {
	if s.region == nil {
		return Plan{}, s.regionErr()
	}
	return s.region.Plan(), nil
}

// Unload returns the session to the no-media state.
func (s *Session) Unload() {
	s.region = nil
	s.loaded = false
	s.surface = Surface{}
}

func (s *Session) regionErr() error {
	if !s.loaded {
		return ErrNoMedia
	}
	return ErrNoRegion
}
