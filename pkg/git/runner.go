package git

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/arthur-debert/dotfiles/pkg/logging"
	"github.com/rs/zerolog"
)

// Runner executes a git command in dir and waits for it to exit
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) error
}

// ExecRunner is the default Runner, delegating to os/exec
type ExecRunner struct {
	Binary string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	logger zerolog.Logger
}

// NewExecRunner creates a runner for binary wired to the process's
// standard streams
func NewExecRunner(binary string, logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{
		Binary: binary,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, dir string, args ...string) error {
	logging.LogCommand(r.logger, r.Binary, args)

	cmd := exec.CommandContext(ctx, r.Binary, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		gitErr := errors.Wrapf(err, errors.ErrGitCommand, "%s %s failed", r.Binary, strings.Join(args, " ")).
			WithDetail("args", args).
			WithDetail("dir", dir)

		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			gitErr = gitErr.WithDetail("exit_code", exitErr.ExitCode())
		}
		return gitErr
	}
	return nil
}

// dryRunRunner logs git invocations without running them
type dryRunRunner struct {
	logger zerolog.Logger
}

// NewDryRunRunner returns a Runner that only logs what it would run
func NewDryRunRunner(logger zerolog.Logger) Runner {
	return &dryRunRunner{logger: logger}
}

func (r *dryRunRunner) Run(ctx context.Context, dir string, args ...string) error {
	r.logger.Info().Str("dir", dir).Strs("args", args).Msg("dry-run: would run git")
	return ctx.Err()
}
