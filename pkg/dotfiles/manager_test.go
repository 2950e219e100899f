package dotfiles_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/dotfiles/pkg/dotfiles"
	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newManager builds a manager on the environment's recording filesystem
func newManager(t *testing.T, env *testutil.TestEnvironment, opts ...dotfiles.Option) *dotfiles.Manager {
	t.Helper()

	opts = append([]dotfiles.Option{
		dotfiles.WithFS(env.FS),
		dotfiles.WithLogger(zerolog.Nop()),
	}, opts...)

	m, err := dotfiles.New(env.Config, opts...)
	require.NoError(t, err)
	return m
}

func TestNew_InvalidConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	cfg := *env.Config
	cfg.HomeDir = "relative/home"

	_, err := dotfiles.New(&cfg)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestNew_PathsFollowConfig(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	m := newManager(t, env)

	assert.Equal(t, env.HomeDir, m.Paths().Home())
	assert.Equal(t, env.Config.RepoRoot(), m.Paths().RepoRoot())
	assert.Equal(t, env.Config.MirrorRoot(), m.Paths().MirrorRoot())
}

func TestLinkStateString(t *testing.T) {
	assert.Equal(t, "missing", dotfiles.LinkMissing.String())
	assert.Equal(t, "not-symlink", dotfiles.LinkNotSymlink.String())
	assert.Equal(t, "synchronized", dotfiles.LinkSynchronized.String())
	assert.Equal(t, "foreign", dotfiles.LinkForeign.String())
	assert.Equal(t, "broken", dotfiles.LinkBroken.String())
}

func TestDryRun_MakesNoChanges(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	bashrc := env.WriteHomeFile(".bashrc", "export EDITOR=vi\n")
	env.WriteMirrorFile(".config/app/conf", "x=1\n")
	m := newManager(t, env, dotfiles.WithDryRun(true))

	outcome, err := m.Adopt(bashrc)
	require.NoError(t, err)
	assert.False(t, outcome.IsSkipped())

	require.NoError(t, m.Setup())

	assert.Empty(t, env.FS.Mutations())
	testutil.AssertRegularFile(t, bashrc, "export EDITOR=vi\n")
	testutil.AssertNotExists(t, env.MirrorPath(".bashrc"))
	testutil.AssertNotExists(t, env.HomePath(".config"))
}

func TestRequireExists(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	present := env.WriteHomeFile(".present", "")
	dangling := env.SymlinkHome("missing", ".dangling")
	m := newManager(t, env)

	assert.NoError(t, m.RequireExists(present))
	assert.NoError(t, m.RequireExists(dangling))

	err := m.RequireExists(env.HomePath(".absent"))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	env.FS.Fail("lstat", fs.ErrPermission)
	err = m.RequireExists(present)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess), "got %v", err)
	assert.True(t, stderrors.Is(err, fs.ErrPermission))
}
