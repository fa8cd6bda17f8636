package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/google/uuid"
)

// DefaultJPEGQuality is used when re-encoding JPEG files.
const DefaultJPEGQuality = 95

// ImageExecutor crops an image file in place.
type ImageExecutor struct {
	JPEGQuality int

	rename func(oldpath, newpath string) error
}

// NewImageExecutor returns an ImageExecutor with default settings.
func NewImageExecutor() *ImageExecutor {
	return &ImageExecutor{JPEGQuality: DefaultJPEGQuality, rename: os.Rename}
}

// Execute crops the image at path to plan and overwrites it in the same
// format. The result is written to a temporary file that replaces path only
// once fully written, so a failure at any step leaves the original intact.
func (e *ImageExecutor) Execute(ctx context.Context, path string, plan crop.Plan) error {
	if err := checkContext(ctx); err != nil {
		return err
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", crop.ErrCropWrite, path, err)
	}

	src, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", crop.ErrMediaUnreadable, path, err)
	}
	surface, err := crop.SurfaceOf(src)
	if err != nil {
		return err
	}
	if err := plan.Validate(surface); err != nil {
		return fmt.Errorf("%w: %v", crop.ErrCropWrite, err)
	}

	cropped := imaging.Crop(src, plan.Rect().Add(src.Bounds().Min))

	if err := checkContext(ctx); err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: stat %s: %v", crop.ErrCropWrite, path, err)
	}

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", crop.ErrCropWrite, err)
	}

	quality := e.JPEGQuality
	if quality <= 0 {
		quality = DefaultJPEGQuality
	}
	err = imaging.Encode(f, cropped, format, imaging.JPEGQuality(quality))
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: encoding %s: %v", crop.ErrCropWrite, path, err)
	}

	rename := e.rename
	if rename == nil {
		rename = os.Rename
	}
	if err := rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("%w: replacing %s: %v", crop.ErrCropWrite, path, err)
	}
	return nil
}

func checkContext(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
