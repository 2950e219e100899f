// pkg/testutil/environment.go
// DEPENDENCIES: config, paths, filesystem
// PURPOSE: Orchestrate isolated home/data-root test environments

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotfiles/pkg/config"
	"github.com/arthur-debert/dotfiles/pkg/filesystem"
	"github.com/arthur-debert/dotfiles/pkg/paths"
	"github.com/stretchr/testify/require"
)

// TestEnvironment provides a complete test environment with all dependencies.
//
// Layout under a temp dir:
//
//	<root>/home                 home directory
//	<root>/dotfiles             repository root (data root is <root>)
//	<root>/dotfiles/home        mirror root
type TestEnvironment struct {
	Root     string
	HomeDir  string
	DataRoot string

	Config *config.Config
	Paths  *paths.Paths
	FS     *RecordingFS

	t *testing.T
}

// NewTestEnvironment creates the directory layout and sets HOME and
// XDG_DATA_HOME to match it
func NewTestEnvironment(t *testing.T) *TestEnvironment {
	t.Helper()

	root := t.TempDir()
	// Resolve so lexical comparisons hold on systems where TMPDIR is a symlink
	root, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)

	env := &TestEnvironment{
		Root:     root,
		HomeDir:  filepath.Join(root, "home"),
		DataRoot: root,
		t:        t,
	}

	env.Config = &config.Config{
		DataRoot:   env.DataRoot,
		HomeDir:    env.HomeDir,
		RepoName:   paths.DefaultRepoName,
		MirrorName: paths.DefaultMirrorName,
		Ignore:     []string{".git"},
		Git: config.GitConfig{
			Binary:        "git",
			Remote:        "origin",
			Branch:        "main",
			CommitMessage: "[dotfiles] automatic commit",
		},
	}
	require.NoError(t, env.Config.Validate())

	require.NoError(t, os.MkdirAll(env.HomeDir, 0755))
	require.NoError(t, os.MkdirAll(env.Config.MirrorRoot(), 0755))

	env.Paths, err = paths.New(env.Config.PathsOptions())
	require.NoError(t, err)

	env.FS = NewRecordingFS(filesystem.NewOS())

	t.Setenv("HOME", env.HomeDir)
	t.Setenv("XDG_DATA_HOME", env.DataRoot)

	return env
}

// HomePath returns the absolute path of rel under the home directory
func (env *TestEnvironment) HomePath(rel string) string {
	return filepath.Join(env.HomeDir, rel)
}

// MirrorPath returns the absolute path of rel under the mirror root
func (env *TestEnvironment) MirrorPath(rel string) string {
	return filepath.Join(env.Config.MirrorRoot(), rel)
}

// WriteHomeFile creates a regular file under the home directory
func (env *TestEnvironment) WriteHomeFile(rel, content string) string {
	env.t.Helper()
	return writeFile(env.t, env.HomePath(rel), content)
}

// WriteMirrorFile creates a regular file under the mirror root
func (env *TestEnvironment) WriteMirrorFile(rel, content string) string {
	env.t.Helper()
	return writeFile(env.t, env.MirrorPath(rel), content)
}

// MkdirHome creates a directory (and parents) under the home directory
func (env *TestEnvironment) MkdirHome(rel string) string {
	env.t.Helper()
	path := env.HomePath(rel)
	require.NoError(env.t, os.MkdirAll(path, 0755))
	return path
}

// MkdirMirror creates a directory (and parents) under the mirror root
func (env *TestEnvironment) MkdirMirror(rel string) string {
	env.t.Helper()
	path := env.MirrorPath(rel)
	require.NoError(env.t, os.MkdirAll(path, 0755))
	return path
}

// SymlinkHome creates a symlink at rel under the home directory storing target verbatim
func (env *TestEnvironment) SymlinkHome(target, rel string) string {
	env.t.Helper()
	path := env.HomePath(rel)
	require.NoError(env.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(env.t, os.Symlink(target, path))
	return path
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
