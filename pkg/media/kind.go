package media

import (
	"path/filepath"
	"strings"
)

// Kind classifies a file by how it is cropped.
type Kind int

const (
	// KindUnknown is any file Cropper does not handle.
	KindUnknown Kind = iota
	// KindImage is cropped in-process.
	KindImage
	// KindVideo is cropped by the external tool.
	KindVideo
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindVideo:
		return "video"
	default:
		return "unknown"
	}
}

// ImageExtensions lists the image extensions Cropper opens.
var ImageExtensions = []string{".png", ".jpg", ".jpeg", ".bmp", ".gif", ".tif", ".tiff", ".webp"}

// VideoExtensions lists the video extensions Cropper opens and walks in batch mode.
var VideoExtensions = []string{".mp4", ".mkv", ".avi", ".mov", ".webm"}

// KindOf classifies path by its extension, ignoring case.
func KindOf(path string) Kind {
	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case hasExt(ImageExtensions, ext):
		return KindImage
	case hasExt(VideoExtensions, ext):
		return KindVideo
	default:
		return KindUnknown
	}
}

// IsVideo reports whether path has a recognized video extension.
func IsVideo(path string) bool {
	return KindOf(path) == KindVideo
}

func hasExt(list []string, ext string) bool {
	for _, e := range list {
		if e == ext {
			return true
		}
	}
	return false
}
