package dotfiles

import (
	"path/filepath"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/types"
)

// Adopt moves a home file or directory into the mirror tree and leaves a
// relative symlink in its place.
//
// Skipped when the path is already a dotfile, is some other symlink, or
// its mirror destination is taken. A failure after the move leaves the
// file in the mirror without a link; Setup restores the link.
func (m *Manager) Adopt(path string) (types.Outcome, error) {
	src, mirror, err := m.locate(path)
	if err != nil {
		return types.Outcome{}, err
	}
	logger := m.logger.With().Str("path", src).Str("mirror", mirror).Logger()

	state, err := m.linkState(src, mirror)
	if err != nil {
		return types.Outcome{}, err
	}

	switch state {
	case LinkMissing:
		return types.Outcome{}, errors.Newf(errors.ErrFileAccess, "%s does not exist", src).
			WithDetail("path", src)
	case LinkSynchronized:
		logger.Debug().Msg("Already a dotfile")
		return types.Skipped(src, mirror, types.SkipAlreadyDotfile), nil
	case LinkForeign, LinkBroken:
		logger.Debug().Stringer("state", state).Msg("Source is a symlink")
		return types.Skipped(src, mirror, types.SkipIsSymlink), nil
	}

	taken, err := m.exists(mirror)
	if err != nil {
		return types.Outcome{}, err
	}
	if taken {
		logger.Debug().Msg("Mirror destination exists")
		return types.Skipped(src, mirror, types.SkipDestinationExists), nil
	}

	if err := m.fs.MkdirAll(filepath.Dir(mirror), 0755); err != nil {
		return types.Outcome{}, errors.Wrapf(err, errors.ErrDirCreate, "cannot create %s", filepath.Dir(mirror))
	}

	target, err := m.linkTarget(src, mirror)
	if err != nil {
		return types.Outcome{}, err
	}

	logger.Info().Msg("Moving into dotfiles")
	if err := m.fs.Rename(src, mirror); err != nil {
		return types.Outcome{}, errors.Wrapf(err, errors.ErrFileMove, "cannot move %s to %s", src, mirror)
	}

	logger.Debug().Str("target", target).Msg("Creating symlink")
	if err := m.fs.Symlink(target, src); err != nil {
		return types.Outcome{}, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s -> %s", src, target).
			WithDetail("mirror", mirror)
	}

	return types.Synchronized(src, mirror), nil
}

// AdoptAll adopts each path in order. Skips are collected and the batch
// continues; the first error stops it and is returned with the outcomes
// collected so far.
func (m *Manager) AdoptAll(paths []string) ([]types.Outcome, error) {
	return m.each(paths, m.Adopt)
}

// locate turns a user supplied path into its absolute home path and the
// mirror path it maps to
func (m *Manager) locate(path string) (string, string, error) {
	abs, err := m.paths.Absolute(path)
	if err != nil {
		return "", "", err
	}
	if abs == m.paths.Home() {
		return "", "", errors.New(errors.ErrOutsideRoot, "the home directory itself cannot be a dotfile").
			WithDetail("path", abs)
	}

	mirror, err := m.paths.ToMirror(abs)
	if err != nil {
		return "", "", err
	}
	return abs, mirror, nil
}

func (m *Manager) each(paths []string, op func(string) (types.Outcome, error)) ([]types.Outcome, error) {
	outcomes := make([]types.Outcome, 0, len(paths))
	for _, path := range paths {
		outcome, err := op(path)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, outcome)
	}
	return outcomes, nil
}
