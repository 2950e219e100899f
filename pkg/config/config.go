package config

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/paths"
	"github.com/pelletier/go-toml/v2"
)

// Config is the resolved configuration
type Config struct {
	// DataRoot is the base data directory holding the repository
	DataRoot string `koanf:"data_root" toml:"data_root"`

	// HomeDir is the live home directory all home paths are relative to
	HomeDir string `koanf:"home_dir" toml:"home_dir"`

	// RepoName is the repository directory name under DataRoot
	RepoName string `koanf:"repo_name" toml:"repo_name"`

	// MirrorName is the mirror directory name inside the repository
	MirrorName string `koanf:"mirror_name" toml:"mirror_name"`

	// Ignore lists entry names excluded from every walk
	Ignore []string `koanf:"ignore" toml:"ignore"`

	Git GitConfig `koanf:"git" toml:"git"`
}

// GitConfig configures the version-control collaborator
type GitConfig struct {
	Binary        string `koanf:"binary" toml:"binary"`
	Remote        string `koanf:"remote" toml:"remote"`
	Branch        string `koanf:"branch" toml:"branch"`
	CommitMessage string `koanf:"commit_message" toml:"commit_message"`
}

// RepoRoot returns the repository directory
func (c *Config) RepoRoot() string {
	return filepath.Join(c.DataRoot, c.RepoName)
}

// MirrorRoot returns the mirror tree root
func (c *Config) MirrorRoot() string {
	return filepath.Join(c.RepoRoot(), c.MirrorName)
}

// PathsOptions returns the anchors for paths.New
func (c *Config) PathsOptions() paths.Options {
	return paths.Options{
		HomeDir:    c.HomeDir,
		RepoRoot:   c.RepoRoot(),
		MirrorRoot: c.MirrorRoot(),
		Ignore:     c.Ignore,
	}
}

// Validate checks the resolved values
func (c *Config) Validate() error {
	if !filepath.IsAbs(c.DataRoot) {
		return errors.Newf(errors.ErrConfigValid, "data_root must be an absolute path, got %q", c.DataRoot)
	}
	if !filepath.IsAbs(c.HomeDir) {
		return errors.Newf(errors.ErrConfigValid, "home_dir must be an absolute path, got %q", c.HomeDir)
	}

	for key, name := range map[string]string{"repo_name": c.RepoName, "mirror_name": c.MirrorName} {
		if name == "" || name == "." || name == ".." || strings.ContainsRune(name, filepath.Separator) {
			return errors.Newf(errors.ErrConfigValid, "%s must be a plain directory name, got %q", key, name)
		}
	}

	for key, value := range map[string]string{
		"git.binary":         c.Git.Binary,
		"git.remote":         c.Git.Remote,
		"git.branch":         c.Git.Branch,
		"git.commit_message": c.Git.CommitMessage,
	} {
		if strings.TrimSpace(value) == "" {
			return errors.Newf(errors.ErrConfigValid, "%s must not be empty", key)
		}
	}

	return nil
}

// TOML renders the configuration as a TOML document
func (c *Config) TOML() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to render configuration")
	}
	return out, nil
}
