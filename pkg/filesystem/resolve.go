package filesystem

import (
	"path/filepath"

	"github.com/arthur-debert/dotfiles/pkg/types"
)

// Physical returns path with every symlinked directory resolved. The
// longest existing prefix is resolved and the missing remainder appended,
// so paths that do not exist yet (a mirror destination, a directory a dry
// run did not create) still map to where they would live on disk.
func Physical(fsys types.FS, path string) string {
	path = filepath.Clean(path)
	if resolved, err := fsys.EvalSymlinks(path); err == nil {
		return resolved
	}

	parent := filepath.Dir(path)
	if parent == path {
		return path
	}
	return filepath.Join(Physical(fsys, parent), filepath.Base(path))
}

// Location resolves the directories leading to path but not path itself,
// so a symlink maps to where the link lives rather than to its target.
func Location(fsys types.FS, path string) string {
	path = filepath.Clean(path)
	return filepath.Join(Physical(fsys, filepath.Dir(path)), filepath.Base(path))
}
