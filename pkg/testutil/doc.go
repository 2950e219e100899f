// Package testutil provides utilities for testing dotfiles components.
//
// Key components:
//   - TestEnvironment: an isolated home directory and data root in a temp
//     dir, with a Config and Paths pointing at them
//   - RecordingFS: a types.FS wrapper that records every mutation, used to
//     prove idempotence ("the second run changes nothing")
//   - MockRunner: a testify mock for git.Runner
//
// All tests run against the real filesystem under t.TempDir(); symlink
// semantics are the subject under test, so there is no in-memory FS.
package testutil
