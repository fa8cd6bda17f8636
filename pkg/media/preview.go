package media

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Cropper/pkg/crop"
	_ "golang.org/x/image/webp" // Register WebP decoder for previews
)

// Preview is a decoded still of the loaded media: the image itself, or the
// first frame of a video.
type Preview struct {
	Path    string
	Kind    Kind
	Image   image.Image
	Surface crop.Surface
}

// FrameGrabber decodes the first frame of a video.
type FrameGrabber interface {
	FirstFrame(ctx context.Context, path string) (image.Image, error)
}

// LoadPreview decodes the media at path. Errors wrap crop.ErrMediaUnreadable
// so callers can keep their previous state and report the failure.
func LoadPreview(ctx context.Context, path string, frames FrameGrabber) (*Preview, error) {
	kind := KindOf(path)

	var (
		img image.Image
		err error
	)
	switch kind {
	case KindImage:
		img, err = imaging.Open(path)
	case KindVideo:
		if frames == nil {
			return nil, fmt.Errorf("%w: no frame grabber for %s", crop.ErrMediaUnreadable, path)
		}
		img, err = frames.FirstFrame(ctx, path)
	default:
		return nil, fmt.Errorf("%w: %s", crop.ErrUnsupportedMedia, path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", crop.ErrMediaUnreadable, path, err)
	}

	surface, err := crop.SurfaceOf(img)
	if err != nil {
		return nil, err
	}
	return &Preview{Path: path, Kind: kind, Image: img, Surface: surface}, nil
}
