package dotfiles

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/arthur-debert/dotfiles/pkg/paths"
)

// LinkState classifies what occupies a home path
type LinkState int

const (
	// LinkMissing means nothing is there, not even a dangling symlink
	LinkMissing LinkState = iota

	// LinkNotSymlink means a regular file or directory
	LinkNotSymlink

	// LinkSynchronized means a symlink resolving to the expected mirror path
	LinkSynchronized

	// LinkForeign means a symlink to something else that exists
	LinkForeign

	// LinkBroken means a symlink to something else whose target does not resolve
	LinkBroken
)

func (s LinkState) String() string {
	switch s {
	case LinkMissing:
		return "missing"
	case LinkNotSymlink:
		return "not-symlink"
	case LinkSynchronized:
		return "synchronized"
	case LinkForeign:
		return "foreign"
	case LinkBroken:
		return "broken"
	}
	return "unknown"
}

// linkState classifies homePath against the mirror path it should link to.
// A link pointing at mirrorPath is synchronized even when the mirror file
// is gone; callers needing the mirror side check it themselves.
func (m *Manager) linkState(homePath, mirrorPath string) (LinkState, error) {
	info, err := m.fs.Lstat(homePath)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return LinkMissing, nil
		}
		return LinkMissing, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", homePath)
	}

	if info.Mode()&fs.ModeSymlink == 0 {
		return LinkNotSymlink, nil
	}

	target, err := m.fs.Readlink(homePath)
	if err != nil {
		return LinkMissing, errors.Wrapf(err, errors.ErrFileAccess, "cannot read symlink %s", homePath)
	}

	// Judge the link the way the kernel follows it: from its physical directory
	resolved := paths.ResolveLink(filesystem.Location(m.fs, homePath), target)
	if filesystem.Location(m.fs, resolved) == filesystem.Location(m.fs, mirrorPath) {
		return LinkSynchronized, nil
	}

	broken, err := m.isDangling(homePath)
	if err != nil {
		return LinkMissing, err
	}
	if broken {
		return LinkBroken, nil
	}
	return LinkForeign, nil
}

// isDangling reports whether the symlink at path fails to resolve
func (m *Manager) isDangling(path string) (bool, error) {
	_, err := m.fs.Stat(path)
	switch {
	case err == nil:
		return false, nil
	case stderrors.Is(err, fs.ErrNotExist), stderrors.Is(err, syscall.ELOOP), stderrors.Is(err, syscall.ENOTDIR):
		return true, nil
	default:
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve symlink %s", path)
	}
}

// exists reports whether anything, including a dangling symlink, is at path
func (m *Manager) exists(path string) (bool, error) {
	_, err := m.fs.Lstat(path)
	if err == nil {
		return true, nil
	}
	if stderrors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", path)
}

// linkTarget returns the relative target a symlink at homePath needs to
// reach mirrorPath. Both sides are resolved to their physical directories
// so the target holds when a home directory like ~/.config is itself a
// symlink to a directory elsewhere.
func (m *Manager) linkTarget(homePath, mirrorPath string) (string, error) {
	linkDir := filesystem.Physical(m.fs, filepath.Dir(homePath))
	return paths.LinkTarget(linkDir, filesystem.Location(m.fs, mirrorPath))
}
