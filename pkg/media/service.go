package media

import (
	"context"
	"fmt"
	"time"

	"github.com/dixieflatline76/Cropper/pkg/crop"
	"github.com/dixieflatline76/Cropper/util/log"
)

// Executor applies a crop plan to a file in place.
type Executor interface {
	Execute(ctx context.Context, path string, plan crop.Plan) error
}

// Service picks the executor for a file and serializes crops per path.
type Service struct {
	images Executor
	videos Executor
	locks  *PathLocker
}

// NewService wires the image and video executors. A nil runner means ExecRunner.
func NewService(tool string, runner Runner) *Service {
	return NewServiceWith(NewImageExecutor(), NewVideoExecutor(tool, runner))
}

// NewServiceWith builds a Service around explicit executors.
func NewServiceWith(images, videos Executor) *Service {
	return &Service{images: images, videos: videos, locks: NewPathLocker()}
}

// Crop applies plan to path. A second Crop on the same path while the first
// is still running fails with crop.ErrPathBusy.
func (s *Service) Crop(ctx context.Context, path string, plan crop.Plan) (Kind, error) {
	kind := KindOf(path)

	var exec Executor
	switch kind {
	case KindImage:
		exec = s.images
	case KindVideo:
		exec = s.videos
	default:
		return kind, fmt.Errorf("%w: %s", crop.ErrUnsupportedMedia, path)
	}

	unlock, err := s.locks.TryLock(path)
	if err != nil {
		return kind, err
	}
	defer unlock()

	start := time.Now()
	log.Printf("Cropping %s %s to %s", kind, path, plan)
	if err := exec.Execute(ctx, path, plan); err != nil {
		log.Printf("Crop of %s failed: %v", path, err)
		return kind, err
	}
	log.Debugf("Crop of %s finished in %v", path, time.Since(start).Round(time.Millisecond))
	return kind, nil
}

// Busy reports whether a crop is running on path.
func (s *Service) Busy(path string) bool {
	return s.locks.Held(path)
}
