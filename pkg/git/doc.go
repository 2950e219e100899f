// Package git drives the git executable for the sync commands.
//
// Every call is a fixed argument list run in the repository root with
// stdout and stderr passed through to the user. A non-zero exit is
// returned as a GIT_COMMAND error; callers stop their sequence on it.
//
// The Runner interface is the seam for tests: Client only decides which
// commands to run, ExecRunner actually runs them.
package git
