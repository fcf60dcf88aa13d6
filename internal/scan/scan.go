// Package scan lists the component files of a single stage directory.
package scan

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern selects React component files.
const DefaultPattern = "*.tsx"

// Entry is one file selected for migration.
type Entry struct {
	// Name is the base name, used in status lines.
	Name string
	// Path is Name joined to the scanned directory.
	Path string
}

// List returns the files directly inside dir whose name matches pattern.
// Entries keep the order os.ReadDir returns them in. Sub-directories are
// skipped even when their name matches.
func List(dir, pattern string) ([]Entry, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid file pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var entries []Entry

	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}

		ok, err := doublestar.Match(pattern, de.Name())
		if err != nil {
			return nil, fmt.Errorf("matching %s against %q: %w", de.Name(), pattern, err)
		}

		if !ok {
			continue
		}

		entries = append(entries, Entry{
			Name: de.Name(),
			Path: filepath.Join(dir, de.Name()),
		})
	}

	return entries, nil
}
