package dotfiles

import (
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/arthur-debert/dotfiles/pkg/logging"
)

// Setup reconciles the home directory with the mirror tree: every mirror
// file gets its symlink, then dangling symlinks are swept from home.
func (m *Manager) Setup() error {
	done := logging.LogOperationStart(m.logger, "setup")
	defer done()

	m.progress("Creating symlinks to dotfiles ...")
	if err := m.UpdateSymlinks(); err != nil {
		return err
	}

	m.progress("Removing broken dotfiles symlinks ...")
	return m.RemoveBrokenSymlinks()
}

// UpdateSymlinks walks the mirror tree top-down. At each level it first
// creates the home counterparts of sub-directories, then links every file,
// then descends. Running it twice changes nothing the second time.
func (m *Manager) UpdateSymlinks() error {
	root := m.paths.MirrorRoot()
	if ok, err := m.exists(root); err != nil {
		return err
	} else if !ok {
		m.logger.Warn().Str("mirror", root).Msg("Mirror root does not exist, nothing to link")
		return nil
	}

	return filesystem.Walk(m.fs, root, func(dir string, dirs, files []fs.DirEntry) ([]fs.DirEntry, error) {
		var descend []fs.DirEntry
		for _, entry := range dirs {
			if m.paths.IsIgnored(entry.Name()) {
				continue
			}
			walk, err := m.ensureDir(filepath.Join(dir, entry.Name()))
			if err != nil {
				return nil, err
			}
			if walk {
				descend = append(descend, entry)
			}
		}

		for _, entry := range files {
			if m.paths.IsIgnored(entry.Name()) {
				continue
			}
			if err := m.ensureLink(filepath.Join(dir, entry.Name())); err != nil {
				return nil, err
			}
		}
		return descend, nil
	}, nil)
}

// ensureDir makes the home counterpart of a mirror directory exist and
// reports whether the walk should descend into it
func (m *Manager) ensureDir(mirrorDir string) (bool, error) {
	home, err := m.paths.ToHome(mirrorDir)
	if err != nil {
		return false, err
	}

	info, err := m.fs.Lstat(home)
	if stderrors.Is(err, fs.ErrNotExist) {
		m.logger.Debug().Str("path", home).Msg("mkdir")
		if err := m.fs.Mkdir(home, 0755); err != nil {
			return false, errors.Wrapf(err, errors.ErrDirCreate, "cannot create directory %s", home)
		}
		return true, nil
	}
	if err != nil {
		return false, errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", home)
	}

	if info.Mode()&fs.ModeSymlink != 0 {
		state, err := m.linkState(home, mirrorDir)
		if err != nil {
			return false, err
		}
		if state == LinkSynchronized {
			m.logger.Trace().Str("path", home).Msg("Directory is an adopted dotfile")
			return false, nil
		}
		// A symlink to some other directory is used as a directory
		if target, err := m.fs.Stat(home); err == nil && target.IsDir() {
			return true, nil
		}
	} else if info.IsDir() {
		m.logger.Trace().Str("path", home).Msg("skipping mkdir, exists")
		return true, nil
	}

	return false, errors.Newf(errors.ErrConflict,
		"cannot create directory %s: it already exists and is not a directory", home).
		WithDetail("path", home).
		WithDetail("mirror", mirrorDir)
}

// ensureLink makes the home counterpart of a mirror file a symlink to it.
// An existing link is kept only if its stored target is exactly the
// expected relative target.
func (m *Manager) ensureLink(mirrorFile string) error {
	home, err := m.paths.ToHome(mirrorFile)
	if err != nil {
		return err
	}
	target, err := m.linkTarget(home, mirrorFile)
	if err != nil {
		return err
	}
	logger := m.logger.With().Str("path", home).Str("target", target).Logger()

	info, err := m.fs.Lstat(home)
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
	case err != nil:
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot inspect %s", home)
	case info.Mode()&fs.ModeSymlink == 0:
		return errors.Newf(errors.ErrConflict,
			"cannot create symlink %s: it already exists and is not a symlink", home).
			WithDetail("path", home).
			WithDetail("mirror", mirrorFile)
	default:
		current, err := m.fs.Readlink(home)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileAccess, "cannot read symlink %s", home)
		}
		if current == target {
			logger.Trace().Msg("skipping symlink, exists")
			return nil
		}
		logger.Debug().Str("previous", current).Msg("overwriting symlink")
		if err := m.fs.Remove(home); err != nil {
			return errors.Wrapf(err, errors.ErrFileRemove, "cannot remove symlink %s", home)
		}
	}

	logger.Debug().Msg("symlink")
	if err := m.fs.Symlink(target, home); err != nil {
		return errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s -> %s", home, target)
	}
	return nil
}

// RemoveBrokenSymlinks walks the home directory, skipping ignored entries
// and the repository tree, and removes every symlink whose target does not
// resolve. Nothing else is touched. Unreadable directories are skipped.
func (m *Manager) RemoveBrokenSymlinks() error {
	repo := m.paths.RepoRoot()
	excluded := map[string]bool{repo: true, filesystem.Physical(m.fs, repo): true}

	removed := 0
	err := filesystem.Walk(m.fs, m.paths.Home(), func(dir string, dirs, files []fs.DirEntry) ([]fs.DirEntry, error) {
		for _, entry := range files {
			if entry.Type()&fs.ModeSymlink == 0 || m.paths.IsIgnored(entry.Name()) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			broken, err := m.isDangling(path)
			if err != nil {
				m.logger.Warn().Err(err).Str("path", path).Msg("Cannot resolve symlink, leaving it")
				continue
			}
			if !broken {
				continue
			}

			m.logger.Debug().Str("path", path).Msg("Removing broken symlink")
			if err := m.fs.Remove(path); err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileRemove, "cannot remove broken symlink %s", path)
			}
			removed++
		}

		var descend []fs.DirEntry
		for _, entry := range dirs {
			sub := filepath.Join(dir, entry.Name())
			if m.paths.IsIgnored(entry.Name()) || excluded[sub] {
				continue
			}
			descend = append(descend, entry)
		}
		return descend, nil
	}, func(dir string, err error) error {
		m.logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read directory, skipping")
		return nil
	})
	if err != nil {
		return err
	}

	m.logger.Info().Int("removed", removed).Msg("Broken symlink sweep finished")
	return nil
}
