package dotfiles

import (
	"context"

	"github.com/arthur-debert/dotfiles/pkg/logging"
)

// Update pulls the repository from its remote and reconciles the home
// directory. A failed git step aborts before Setup runs.
func (m *Manager) Update(ctx context.Context) error {
	done := logging.LogOperationStart(m.logger, "update")
	defer done()

	m.progress("Pulling dotfiles ...")
	if err := m.git.Fetch(ctx); err != nil {
		return err
	}
	if err := m.git.Pull(ctx); err != nil {
		return err
	}

	return m.Setup()
}

// Push commits every change in the repository and pushes it. An empty
// commit fails like any other git error.
func (m *Manager) Push(ctx context.Context) error {
	done := logging.LogOperationStart(m.logger, "push")
	defer done()

	m.progress("Pushing dotfiles ...")
	if err := m.git.AddAll(ctx); err != nil {
		return err
	}
	if err := m.git.Commit(ctx); err != nil {
		return err
	}
	return m.git.Push(ctx)
}

// Sync runs Update then Push
func (m *Manager) Sync(ctx context.Context) error {
	if err := m.Update(ctx); err != nil {
		return err
	}
	return m.Push(ctx)
}

// Diff shows the uncommitted changes in the repository
func (m *Manager) Diff(ctx context.Context) error {
	return m.git.Diff(ctx)
}
