package filesystem

import (
	"io/fs"

	"github.com/arthur-debert/dotfiles/pkg/types"
	"github.com/rs/zerolog"
)

// dryRunFS reads through to the wrapped filesystem and only logs mutations
type dryRunFS struct {
	base   types.FS
	logger zerolog.Logger
}

// NewDryRun wraps base so that every mutating call is logged instead of performed
func NewDryRun(base types.FS, logger zerolog.Logger) types.FS {
	return &dryRunFS{base: base, logger: logger}
}

func (d *dryRunFS) Stat(name string) (fs.FileInfo, error) {
	return d.base.Stat(name)
}

func (d *dryRunFS) Lstat(name string) (fs.FileInfo, error) {
	return d.base.Lstat(name)
}

func (d *dryRunFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return d.base.ReadDir(name)
}

func (d *dryRunFS) Readlink(name string) (string, error) {
	return d.base.Readlink(name)
}

func (d *dryRunFS) EvalSymlinks(path string) (string, error) {
	return d.base.EvalSymlinks(path)
}

func (d *dryRunFS) Rename(oldpath, newpath string) error {
	d.logger.Info().Str("from", oldpath).Str("to", newpath).Msg("dry-run: would move")
	return nil
}

func (d *dryRunFS) Remove(name string) error {
	d.logger.Info().Str("path", name).Msg("dry-run: would remove")
	return nil
}

func (d *dryRunFS) Mkdir(path string, perm fs.FileMode) error {
	d.logger.Info().Str("path", path).Msg("dry-run: would mkdir")
	return nil
}

func (d *dryRunFS) MkdirAll(path string, perm fs.FileMode) error {
	d.logger.Info().Str("path", path).Msg("dry-run: would mkdir -p")
	return nil
}

func (d *dryRunFS) Symlink(oldname, newname string) error {
	d.logger.Info().Str("target", oldname).Str("link", newname).Msg("dry-run: would symlink")
	return nil
}
