// Package browse holds the state machine behind the directory browser:
// the snapshot of the current directory, the selection into it, and the
// transitions the key handlers call. Nothing in this package writes to
// the filesystem or touches the terminal.
package browse

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scan reads the immediate children of dir and returns them sorted with
// directories first, then case-insensitively by name. The sort is
// stable, so names differing only in case keep their enumeration order.
//
// If dir itself cannot be opened the result is an empty listing plus the
// error. Failures on individual children never abort the scan: an
// unreadable stat just leaves that entry's Size and ModTime unset.
func Scan(dir string, showHidden bool) ([]Entry, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		name := de.Name()
		if !showHidden && strings.HasPrefix(name, ".") {
			continue
		}

		e := Entry{
			Name:  name,
			Path:  filepath.Join(dir, name),
			IsDir: de.IsDir(),
		}

		// Metadata can fail on its own (permissions, dangling
		// symlinks); the entry stays listed with what we have.
		if info, err := de.Info(); err == nil {
			if info.Mode().IsRegular() {
				size := info.Size()
				e.Size = &size
			}
			mod := info.ModTime()
			e.ModTime = &mod
		}

		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].IsDir != entries[j].IsDir {
			return entries[i].IsDir
		}
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	return entries, nil
}
