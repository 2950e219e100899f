package dotfiles_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotfiles/pkg/dotfiles"
	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateSymlinks_CreatesTree(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteMirrorFile(".bashrc", "bash")
	env.WriteMirrorFile(".config/app/conf", "conf")
	env.WriteMirrorFile(".git/HEAD", "ref: refs/heads/main\n")
	env.WriteMirrorFile(".config/.git", "gitdir: elsewhere\n")
	m := newManager(t, env)

	require.NoError(t, m.UpdateSymlinks())

	testutil.AssertSymlink(t, env.HomePath(".bashrc"), "../dotfiles/home/.bashrc")
	testutil.AssertDir(t, env.HomePath(".config"))
	testutil.AssertDir(t, env.HomePath(".config/app"))
	testutil.AssertSymlink(t, env.HomePath(".config/app/conf"), "../../../dotfiles/home/.config/app/conf")
	testutil.AssertNotExists(t, env.HomePath(".git"))
	testutil.AssertNotExists(t, env.HomePath(".config/.git"))
}

func TestUpdateSymlinks_Idempotent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteMirrorFile(".bashrc", "")
	env.WriteMirrorFile(".config/app/conf", "")
	env.WriteMirrorFile(".local/bin/tool", "")
	env.MkdirMirror(".cache")
	m := newManager(t, env)

	require.NoError(t, m.UpdateSymlinks())
	assert.NotEmpty(t, env.FS.Mutations())

	env.FS.Reset()
	require.NoError(t, m.UpdateSymlinks())
	assert.Empty(t, env.FS.Mutations())
}

func TestUpdateSymlinks_SkipsAdoptedDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteHomeFile(".vim/vimrc", "")
	env.WriteHomeFile(".vim/colors/dark.vim", "")
	m := newManager(t, env)

	_, err := m.Adopt(env.HomePath(".vim"))
	require.NoError(t, err)

	env.FS.Reset()
	require.NoError(t, m.UpdateSymlinks())
	assert.Empty(t, env.FS.Mutations())
	testutil.AssertSymlink(t, env.HomePath(".vim"), "../dotfiles/home/.vim")
}

func TestUpdateSymlinks_ReplacesOtherTargets(t *testing.T) {
	tests := []struct {
		name   string
		target func(env *testutil.TestEnvironment) string
	}{
		{"foreign", func(env *testutil.TestEnvironment) string {
			env.WriteHomeFile("old-bashrc", "")
			return "old-bashrc"
		}},
		{"dangling", func(env *testutil.TestEnvironment) string { return "../nowhere/.bashrc" }},
		{"absolute_to_mirror", func(env *testutil.TestEnvironment) string { return env.MirrorPath(".bashrc") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t)
			env.WriteMirrorFile(".bashrc", "")
			env.SymlinkHome(tt.target(env), ".bashrc")
			m := newManager(t, env)

			require.NoError(t, m.UpdateSymlinks())
			testutil.AssertSymlink(t, env.HomePath(".bashrc"), "../dotfiles/home/.bashrc")
		})
	}
}

func TestUpdateSymlinks_Conflicts(t *testing.T) {
	tests := []struct {
		name  string
		setup func(env *testutil.TestEnvironment)
		path  string
	}{
		{
			name: "regular_file_at_link_path",
			setup: func(env *testutil.TestEnvironment) {
				env.WriteMirrorFile(".bashrc", "repo")
				env.WriteHomeFile(".bashrc", "local")
			},
			path: ".bashrc",
		},
		{
			name: "directory_at_link_path",
			setup: func(env *testutil.TestEnvironment) {
				env.WriteMirrorFile(".profile", "repo")
				env.MkdirHome(".profile")
			},
			path: ".profile",
		},
		{
			name: "file_at_directory_path",
			setup: func(env *testutil.TestEnvironment) {
				env.WriteMirrorFile(".config/app/conf", "repo")
				env.WriteHomeFile(".config", "local")
			},
			path: ".config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t)
			tt.setup(env)
			m := newManager(t, env)

			err := m.UpdateSymlinks()
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConflict), "got %v", err)
			assert.Equal(t, env.HomePath(tt.path), errors.GetErrorDetails(err)["path"])

			info, statErr := os.Lstat(env.HomePath(tt.path))
			require.NoError(t, statErr)
			assert.Zero(t, info.Mode()&os.ModeSymlink, "conflicting entry must be left alone")
		})
	}
}

func TestUpdateSymlinks_MissingMirrorRoot(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	require.NoError(t, os.RemoveAll(env.Config.MirrorRoot()))
	m := newManager(t, env)

	assert.NoError(t, m.UpdateSymlinks())
	assert.Empty(t, env.FS.Mutations())
}

func TestRemoveBrokenSymlinks(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteHomeFile("configDir", "")
	valid := env.SymlinkHome("configDir", ".valid")
	plain := env.WriteHomeFile(".plain", "")
	dead := env.SymlinkHome("missing", ".dead")
	nested := env.SymlinkHome("../../nowhere", "a/b/.dead")
	loop := env.SymlinkHome(".loop", ".loop")
	ignored := env.SymlinkHome("missing", "project/.git/dead")
	m := newManager(t, env)

	require.NoError(t, m.RemoveBrokenSymlinks())

	testutil.AssertNotExists(t, dead)
	testutil.AssertNotExists(t, nested)
	testutil.AssertNotExists(t, loop)
	testutil.AssertSymlink(t, valid, "configDir")
	testutil.AssertSymlink(t, ignored, "missing")
	testutil.AssertRegularFile(t, plain, "")
	testutil.AssertDir(t, env.HomePath("a/b"))

	assert.ElementsMatch(t, []string{
		"remove " + dead,
		"remove " + nested,
		"remove " + loop,
	}, env.FS.Mutations())
}

func TestRemoveBrokenSymlinks_SkipsRepositoryInsideHome(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	cfg := *env.Config
	cfg.DataRoot = env.HomePath(".local/share")
	require.NoError(t, os.MkdirAll(cfg.MirrorRoot(), 0755))

	inRepo := filepath.Join(cfg.MirrorRoot(), ".dead")
	require.NoError(t, os.Symlink("missing", inRepo))
	outside := env.SymlinkHome("missing", ".dead")

	m, err := dotfiles.New(&cfg, dotfiles.WithFS(env.FS))
	require.NoError(t, err)

	require.NoError(t, m.RemoveBrokenSymlinks())
	testutil.AssertSymlink(t, inRepo, "missing")
	testutil.AssertNotExists(t, outside)
}

func TestRemoveBrokenSymlinks_UnreadableDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	locked := env.MkdirHome("locked")
	env.SymlinkHome("missing", "locked/.inner")
	dead := env.SymlinkHome("missing", ".dead")

	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0755) })

	m := newManager(t, env)
	require.NoError(t, m.RemoveBrokenSymlinks())
	testutil.AssertNotExists(t, dead)
}

func TestSetup_NestedScenario(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	env.WriteMirrorFile(".bashrc", "bash")
	env.WriteMirrorFile(".config/app/conf", "conf")
	stale := env.SymlinkHome("../dotfiles/home/.oldrc", ".oldrc")

	var progress []string
	m := newManager(t, env, dotfiles.WithProgress(func(msg string) { progress = append(progress, msg) }))

	require.NoError(t, m.Setup())

	testutil.AssertSymlink(t, env.HomePath(".bashrc"), "../dotfiles/home/.bashrc")
	testutil.AssertSymlink(t, env.HomePath(".config/app/conf"), "../../../dotfiles/home/.config/app/conf")
	testutil.AssertNotExists(t, stale)

	assert.Equal(t, []string{
		"Creating symlinks to dotfiles ...",
		"Removing broken dotfiles symlinks ...",
	}, progress)

	// Directories before files at each level, parents before children,
	// linking before sweeping
	assert.Equal(t, []string{
		"mkdir " + env.HomePath(".config"),
		"symlink " + env.HomePath(".bashrc") + " -> ../dotfiles/home/.bashrc",
		"mkdir " + env.HomePath(".config/app"),
		"symlink " + env.HomePath(".config/app/conf") + " -> ../../../dotfiles/home/.config/app/conf",
		"remove " + stale,
	}, env.FS.Mutations())
}

func TestSetup_EveryMirrorFileResolvesToItself(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	files := []string{".bashrc", ".config/app/conf", ".config/other", ".local/share/x/y/z", ".ssh/config"}
	for _, f := range files {
		env.WriteMirrorFile(f, f)
	}
	m := newManager(t, env)
	require.NoError(t, m.Setup())

	for _, f := range files {
		home, err := m.Paths().ToHome(env.MirrorPath(f))
		require.NoError(t, err)
		back, err := m.Paths().ToMirror(home)
		require.NoError(t, err)
		assert.Equal(t, env.MirrorPath(f), back)

		homeInfo, err := os.Stat(home)
		require.NoError(t, err)
		mirrorInfo, err := os.Stat(env.MirrorPath(f))
		require.NoError(t, err)
		assert.True(t, os.SameFile(homeInfo, mirrorInfo), "%s does not resolve to its mirror file", home)
	}
}

func TestSetup_UnderSymlinkedDirectory(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	configDir := filepath.Join(env.Root, "a", "b", "c", "config")
	require.NoError(t, os.MkdirAll(configDir, 0755))
	env.SymlinkHome(configDir, ".config")
	env.WriteMirrorFile(".config/app/conf", "conf")
	env.WriteMirrorFile(".config/bar", "bar")

	// Computed from the lexical parent, this target dangles on disk
	lexical := env.SymlinkHome("../../dotfiles/home/.config/bar", ".config/bar")
	m := newManager(t, env)

	require.NoError(t, m.Setup())

	conf := env.HomePath(".config/app/conf")
	testutil.AssertSymlink(t, conf, "../../../../../dotfiles/home/.config/app/conf")
	testutil.AssertSymlink(t, lexical, "../../../../dotfiles/home/.config/bar")
	testutil.AssertDir(t, filepath.Join(configDir, "app"))
	testutil.AssertSymlink(t, env.HomePath(".config"), configDir)

	for path, want := range map[string]string{conf: "conf", lexical: "bar"} {
		data, err := os.ReadFile(path)
		require.NoError(t, err, "%s must resolve", path)
		assert.Equal(t, want, string(data))
	}

	env.FS.Reset()
	require.NoError(t, m.Setup())
	assert.Empty(t, env.FS.Mutations())
}
