package git_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/git"
	"github.com/arthur-debert/dotfiles/pkg/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FixedArgumentLists(t *testing.T) {
	ctx := context.Background()
	opts := git.Options{
		Dir:           "/data/dotfiles",
		Remote:        "origin",
		Branch:        "main",
		CommitMessage: "[dotfiles] automatic commit",
	}

	tests := []struct {
		name string
		call func(*git.Client, context.Context) error
		args []string
	}{
		{"fetch", (*git.Client).Fetch, []string{"fetch"}},
		{"pull", (*git.Client).Pull, []string{"pull", "--autostash", "--rebase", "origin", "main"}},
		{"add", (*git.Client).AddAll, []string{"add", "."}},
		{"commit", (*git.Client).Commit, []string{"commit", "-m", "[dotfiles] automatic commit"}},
		{"push", (*git.Client).Push, []string{"push"}},
		{"diff", (*git.Client).Diff, []string{"diff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := testutil.NewMockRunner()
			runner.ExpectRun("/data/dotfiles", tt.args...).Return(nil)

			client := git.New(runner, opts)
			require.NoError(t, tt.call(client, ctx))

			runner.AssertExpectations(t)
		})
	}
}

func TestClient_PropagatesRunnerError(t *testing.T) {
	runner := testutil.NewMockRunner()
	failure := errors.New(errors.ErrGitCommand, "git push failed")
	runner.ExpectRun("/repo", "push").Return(failure)

	err := git.New(runner, git.Options{Dir: "/repo"}).Push(context.Background())
	assert.Equal(t, failure, err)
}

func TestExecRunner(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("requires /bin/sh")
	}
	dir := t.TempDir()

	t.Run("runs_in_dir_and_passes_output_through", func(t *testing.T) {
		var stdout bytes.Buffer
		runner := git.NewExecRunner("/bin/sh", zerolog.Nop())
		runner.Stdout = &stdout

		require.NoError(t, runner.Run(context.Background(), dir, "-c", "pwd"))

		want, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)
		got, err := filepath.EvalSymlinks(string(bytes.TrimSpace(stdout.Bytes())))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("non_zero_exit_is_git_command_error", func(t *testing.T) {
		runner := git.NewExecRunner("/bin/sh", zerolog.Nop())
		runner.Stdout = &bytes.Buffer{}
		runner.Stderr = &bytes.Buffer{}

		err := runner.Run(context.Background(), dir, "-c", "exit 3")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrGitCommand))
		assert.Equal(t, 3, errors.GetErrorDetails(err)["exit_code"])
	})

	t.Run("missing_binary_is_git_command_error", func(t *testing.T) {
		runner := git.NewExecRunner(filepath.Join(dir, "no-such-git"), zerolog.Nop())

		err := runner.Run(context.Background(), dir, "status")
		assert.True(t, errors.IsErrorCode(err, errors.ErrGitCommand))
	})
}

func TestDryRunRunner(t *testing.T) {
	runner := git.NewDryRunRunner(zerolog.Nop())
	client := git.New(runner, git.Options{Dir: filepath.Join(t.TempDir(), "missing")})

	assert.NoError(t, client.Fetch(context.Background()))
	assert.NoError(t, client.Push(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, client.Diff(ctx), context.Canceled)
}
