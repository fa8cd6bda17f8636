package media

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dixieflatline76/Cropper/pkg/crop"
)

// PathLocker guarantees at most one crop per file at a time.
type PathLocker struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewPathLocker creates an empty PathLocker.
func NewPathLocker() *PathLocker {
	return &PathLocker{held: make(map[string]struct{})}
}

// TryLock claims path. It fails with crop.ErrPathBusy if the path is already
// claimed. The returned func releases the claim and is safe to call twice.
func (l *PathLocker) TryLock(path string) (func(), error) {
	key := lockKey(path)

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, busy := l.held[key]; busy {
		return nil, fmt.Errorf("%w: %s", crop.ErrPathBusy, path)
	}
	l.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			delete(l.held, key)
			l.mu.Unlock()
		})
	}, nil
}

// Held reports whether path is currently claimed.
func (l *PathLocker) Held(path string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.held[lockKey(path)]
	return ok
}

func lockKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}
