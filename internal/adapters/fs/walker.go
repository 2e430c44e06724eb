// Package fs provides file system adapters for staging snapshots and walking workspaces.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/lintsync/internal/core/domain"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields the files under root as slash separated paths relative to root.
// VCS metadata, the lintsync work directory and names matching an ignore pattern
// are skipped. Unreadable directories are skipped silently.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() && path != root {
					return filepath.SkipDir
				}
				return err
			}
			if path == root {
				return nil
			}

			if skip, action := w.skip(d, ignores); skip {
				return action
			}
			if d.IsDir() {
				return nil
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				return nil //nolint:nilerr // path is always under root
			}
			if !yield(filepath.ToSlash(rel)) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// skip reports whether an entry is excluded. For directories the action is
// filepath.SkipDir, for files it is nil.
func (w *Walker) skip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() {
		switch name {
		case ".git", ".jj", ".hg", ".svn", domain.WorkDirName:
			return true, filepath.SkipDir
		}
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}
	return false, nil
}
