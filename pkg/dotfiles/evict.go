package dotfiles

import (
	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/types"
)

// Evict removes a dotfile symlink and moves the mirror file back to the
// home path. It is the inverse of Adopt.
//
// Skipped when nothing is at the path, it is not a symlink, or it links
// somewhere other than its mirror path. A missing mirror file is an error
// and leaves the link in place.
func (m *Manager) Evict(path string) (types.Outcome, error) {
	home, mirror, err := m.locate(path)
	if err != nil {
		return types.Outcome{}, err
	}
	logger := m.logger.With().Str("path", home).Str("mirror", mirror).Logger()

	state, err := m.linkState(home, mirror)
	if err != nil {
		return types.Outcome{}, err
	}

	switch state {
	case LinkMissing:
		return types.Skipped(home, mirror, types.SkipDoesNotExist), nil
	case LinkNotSymlink:
		return types.Skipped(home, mirror, types.SkipNotSymlink), nil
	case LinkForeign, LinkBroken:
		logger.Debug().Stringer("state", state).Msg("Symlink does not point at the mirror")
		return types.Skipped(home, mirror, types.SkipNotDotfile), nil
	}

	present, err := m.exists(mirror)
	if err != nil {
		return types.Outcome{}, err
	}
	if !present {
		return types.Outcome{}, errors.Newf(errors.ErrMirrorMissing, "%s links to %s, which does not exist", home, mirror).
			WithDetail("path", home).
			WithDetail("mirror", mirror)
	}

	if info, err := m.fs.Stat(home); err == nil && info.IsDir() {
		logger.Debug().Msg("Removing directory symlink")
	} else {
		logger.Debug().Msg("Removing file symlink")
	}
	if err := m.fs.Remove(home); err != nil {
		return types.Outcome{}, errors.Wrapf(err, errors.ErrFileRemove, "cannot remove symlink %s", home)
	}

	logger.Info().Msg("Moving out of dotfiles")
	if err := m.fs.Rename(mirror, home); err != nil {
		return types.Outcome{}, errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to %s", mirror, home)
	}

	return types.Synchronized(home, mirror), nil
}

// EvictAll evicts each path in order, with the same batch semantics as AdoptAll
func (m *Manager) EvictAll(paths []string) ([]types.Outcome, error) {
	return m.each(paths, m.Evict)
}
