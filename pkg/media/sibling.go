package media

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dixieflatline76/Cropper/util/log"
)

// NextSibling returns the video that follows path in its directory, in
// lexicographic order of file names. It returns false when path is the last
// video, is not among the listed videos, or the directory cannot be read.
func NextSibling(path string) (string, bool) {
	dir := filepath.Dir(path)
	name := filepath.Base(path)

	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Printf("NextSibling: failed to list %s: %v", dir, err)
		return "", false
	}

	videos := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if hasExt(VideoExtensions, strings.ToLower(filepath.Ext(entry.Name()))) {
			videos = append(videos, entry.Name())
		}
	}
	sort.Strings(videos)

	for i, v := range videos {
		if v != name {
			continue
		}
		if i+1 < len(videos) {
			return filepath.Join(dir, videos[i+1]), true
		}
		return "", false
	}
	return "", false
}
