// Package track loads recorded activities from GPX and FIT files into
// the domain model.
package track

import (
	"fmt"
	"path/filepath"
	"strings"

	"track2text/internal/domain"
)

// Load parses the activity file at path, picking the decoder from the
// file extension. The returned track always has at least one point.
func Load(path string) (domain.Track, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gpx":
		return loadGPX(path)
	case ".fit":
		return loadFIT(path)
	}
	return domain.Track{}, fmt.Errorf("load track: unsupported file type %q", filepath.Ext(path))
}
