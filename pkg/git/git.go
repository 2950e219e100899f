package git

import (
	"context"
)

// Options are the fixed parameters of the sync commands
type Options struct {
	// Dir is the working directory, the repository root
	Dir           string
	Remote        string
	Branch        string
	CommitMessage string
}

// Client runs the fixed git command sequences used by sync
type Client struct {
	runner Runner
	opts   Options
}

// New creates a Client
func New(runner Runner, opts Options) *Client {
	return &Client{runner: runner, opts: opts}
}

// Fetch runs `git fetch`
func (c *Client) Fetch(ctx context.Context) error {
	return c.run(ctx, "fetch")
}

// Pull runs `git pull --autostash --rebase <remote> <branch>`
func (c *Client) Pull(ctx context.Context) error {
	return c.run(ctx, "pull", "--autostash", "--rebase", c.opts.Remote, c.opts.Branch)
}

// AddAll runs `git add .`
func (c *Client) AddAll(ctx context.Context) error {
	return c.run(ctx, "add", ".")
}

// Commit runs `git commit -m <message>`
func (c *Client) Commit(ctx context.Context) error {
	return c.run(ctx, "commit", "-m", c.opts.CommitMessage)
}

// Push runs `git push`
func (c *Client) Push(ctx context.Context) error {
	return c.run(ctx, "push")
}

// Diff runs `git diff`
func (c *Client) Diff(ctx context.Context) error {
	return c.run(ctx, "diff")
}

func (c *Client) run(ctx context.Context, args ...string) error {
	return c.runner.Run(ctx, c.opts.Dir, args...)
}
