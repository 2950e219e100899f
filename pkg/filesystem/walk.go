package filesystem

import (
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dotfiles/pkg/types"
)

// WalkFunc is called once per directory, before any of its sub-directories,
// with the entries split into directories and everything else (files and
// symlinks, including symlinks to directories). It returns the
// sub-directories to descend into, which lets callers prune.
type WalkFunc func(dir string, dirs, files []fs.DirEntry) ([]fs.DirEntry, error)

// WalkErrFunc decides what to do when a directory cannot be read. Returning
// nil skips that directory; returning an error aborts the walk.
type WalkErrFunc func(dir string, err error) error

// Walk traverses root top-down through fsys. Entries are visited in the
// order ReadDir returns them. Symlinks are never followed.
func Walk(fsys types.FS, root string, fn WalkFunc, onErr WalkErrFunc) error {
	entries, err := fsys.ReadDir(root)
	if err != nil {
		if onErr == nil {
			return err
		}
		return onErr(root, err)
	}

	var dirs, files []fs.DirEntry
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry)
		} else {
			files = append(files, entry)
		}
	}

	descend, err := fn(root, dirs, files)
	if err != nil {
		return err
	}

	for _, dir := range descend {
		if err := Walk(fsys, filepath.Join(root, dir.Name()), fn, onErr); err != nil {
			return err
		}
	}
	return nil
}
