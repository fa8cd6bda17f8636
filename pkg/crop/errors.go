package crop

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection is returned when a preset index is outside the catalog.
	ErrInvalidSelection = errors.New("invalid preset selection")
	// ErrMediaUnreadable is returned when media cannot be opened or decoded.
	ErrMediaUnreadable = errors.New("media unreadable")
	// ErrCropWrite is returned when the cropped result cannot be written back.
	ErrCropWrite = errors.New("crop write failed")
	// ErrExternalTool is returned when the external video tool fails or is missing.
	ErrExternalTool = errors.New("external tool failed")
	// ErrNoMedia is returned by session operations that need loaded media.
	ErrNoMedia = errors.New("no media loaded")
	// ErrNoRegion is returned by session operations that need an active region.
	ErrNoRegion = errors.New("no active crop region")
	// ErrPresetTooLarge is returned when a preset does not fit inside the surface.
	ErrPresetTooLarge = errors.New("preset larger than media")
	// ErrPathBusy is returned when a crop is already running on the same path.
	ErrPathBusy = errors.New("crop already in progress for path")
	// ErrUnsupportedMedia is returned for files that are neither image nor video.
	ErrUnsupportedMedia = errors.New("unsupported media type")
)

// ToolError carries the diagnostic output of a failed external tool run.
// It matches both ErrExternalTool and the underlying process error.
type ToolError struct {
	Tool   string
	Output string
	Err    error
}

func (e *ToolError) Error() string {
	if e.Output == "" {
		return fmt.Sprintf("%s: %v", e.Tool, e.Err)
	}
	return fmt.Sprintf("%s: %v\n%s", e.Tool, e.Err, e.Output)
}

// Unwrap exposes both the sentinel and the process error to errors.Is/As.
func (e *ToolError) Unwrap() []error {
	return []error{ErrExternalTool, e.Err}
}
