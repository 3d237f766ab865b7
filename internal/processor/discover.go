package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Discover lists the videos directly inside dir, sorted by name. Hidden
// entries and directories are ignored.
func Discover(dir string, isVideo func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || !isVideo(name) {
			continue
		}
		paths = append(paths, filepath.Join(dir, name))
	}
	return paths, nil
}
