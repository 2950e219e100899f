package dotfiles

import (
	"github.com/arthur-debert/dotfiles/pkg/config"
	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/arthur-debert/dotfiles/pkg/git"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/arthur-debert/dotfiles/pkg/paths"
	"github.com/arthur-debert/dotfiles/pkg/types"
	"github.com/rs/zerolog"
)

// Manager performs the dotfiles operations for one configuration
type Manager struct {
	paths    *paths.Paths
	fs       types.FS
	git      *git.Client
	logger   zerolog.Logger
	progress func(string)
}

type settings struct {
	fs       types.FS
	runner   git.Runner
	logger   *zerolog.Logger
	dryRun   bool
	progress func(string)
}

// Option customizes a Manager
type Option func(*settings)

// WithFS replaces the OS filesystem
func WithFS(fsys types.FS) Option {
	return func(s *settings) { s.fs = fsys }
}

// WithRunner replaces the git executable runner
func WithRunner(runner git.Runner) Option {
	return func(s *settings) { s.runner = runner }
}

// WithLogger sets the logger
func WithLogger(logger zerolog.Logger) Option {
	return func(s *settings) { s.logger = &logger }
}

// WithDryRun logs filesystem mutations and git commands instead of
// performing them
func WithDryRun(dryRun bool) Option {
	return func(s *settings) { s.dryRun = dryRun }
}

// WithProgress receives the coarse progress messages of Setup and the
// sync operations ("Pulling dotfiles ...")
func WithProgress(fn func(string)) Option {
	return func(s *settings) { s.progress = fn }
}

// New creates a Manager for cfg
func New(cfg *config.Config, opts ...Option) (*Manager, error) {
	p, err := paths.New(cfg.PathsOptions())
	if err != nil {
		return nil, err
	}

	s := settings{}
	for _, opt := range opts {
		opt(&s)
	}

	logger := logging.GetLogger("dotfiles")
	if s.logger != nil {
		logger = *s.logger
	}

	fsys := s.fs
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	runner := s.runner
	if runner == nil {
		runner = git.NewExecRunner(cfg.Git.Binary, logger)
	}

	if s.dryRun {
		fsys = filesystem.NewDryRun(fsys, logger)
		runner = git.NewDryRunRunner(logger)
	}

	progress := s.progress
	if progress == nil {
		progress = func(string) {}
	}

	return &Manager{
		paths: p,
		fs:    fsys,
		git: git.New(runner, git.Options{
			Dir:           p.RepoRoot(),
			Remote:        cfg.Git.Remote,
			Branch:        cfg.Git.Branch,
			CommitMessage: cfg.Git.CommitMessage,
		}),
		logger:   logger,
		progress: progress,
	}, nil
}

// RequireExists checks that something, even a dangling symlink, is at
// path. A missing path is INVALID_INPUT; failing to look is FILE_ACCESS.
func (m *Manager) RequireExists(path string) error {
	abs, err := m.paths.Absolute(path)
	if err != nil {
		return err
	}

	ok, err := m.exists(abs)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Newf(errors.ErrInvalidInput, "%s does not exist", path).WithDetail("path", abs)
	}
	return nil
}

// Paths returns the path mapping used by the manager
func (m *Manager) Paths() *paths.Paths {
	return m.paths
}
