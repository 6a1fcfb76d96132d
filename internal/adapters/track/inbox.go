package track

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// FindNewest returns the most recently modified supported activity file
// in dir. The inbox workflow: drop an export into the directory, run the
// tool, the latest file wins.
func FindNewest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read inbox %q: %w", dir, err)
	}

	var newest string
	var newestMod time.Time

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext != ".gpx" && ext != ".fit" {
			continue
		}

		info, err := e.Info()
		if err != nil {
			return "", fmt.Errorf("stat inbox file %q: %w", e.Name(), err)
		}

		if newest == "" || info.ModTime().After(newestMod) {
			newest = filepath.Join(dir, e.Name())
			newestMod = info.ModTime()
		}
	}

	if newest == "" {
		return "", fmt.Errorf("no GPX or FIT files in %q", dir)
	}

	return newest, nil
}
