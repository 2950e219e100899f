package types

import "fmt"

// OutcomeKind is the result category of a per-path operation
type OutcomeKind string

const (
	// OutcomeSynchronized means the home path is now (or is no longer) a
	// managed symlink, as the operation intended
	OutcomeSynchronized OutcomeKind = "synchronized"

	// OutcomeSkipped means a precondition did not hold and nothing was touched
	OutcomeSkipped OutcomeKind = "skipped"
)

// SkipReason identifies which precondition caused a skip
type SkipReason string

const (
	// Adoption skips
	SkipAlreadyDotfile    SkipReason = "already_dotfile"
	SkipIsSymlink         SkipReason = "is_symlink"
	SkipDestinationExists SkipReason = "destination_exists"

	// Eviction skips
	SkipDoesNotExist SkipReason = "does_not_exist"
	SkipNotSymlink   SkipReason = "not_symlink"
	SkipNotDotfile   SkipReason = "not_dotfile"
)

// Outcome is the result of adopting or evicting a single path. Fatal
// conditions are returned as errors alongside a zero Outcome.
type Outcome struct {
	Kind OutcomeKind

	// Path is the home path the operation was asked to handle
	Path string

	// MirrorPath is the corresponding path in the mirror tree
	MirrorPath string

	// Reason is set when Kind is OutcomeSkipped
	Reason SkipReason
}

// Synchronized builds a successful outcome
func Synchronized(path, mirrorPath string) Outcome {
	return Outcome{Kind: OutcomeSynchronized, Path: path, MirrorPath: mirrorPath}
}

// Skipped builds a skip outcome
func Skipped(path, mirrorPath string, reason SkipReason) Outcome {
	return Outcome{Kind: OutcomeSkipped, Path: path, MirrorPath: mirrorPath, Reason: reason}
}

// IsSkipped reports whether the operation was skipped
func (o Outcome) IsSkipped() bool {
	return o.Kind == OutcomeSkipped
}

// Message returns the user-facing explanation for a skip
func (o Outcome) Message() string {
	switch o.Reason {
	case SkipAlreadyDotfile:
		return fmt.Sprintf("%s already a dotfile", o.Path)
	case SkipIsSymlink:
		return fmt.Sprintf("%s is a symlink", o.Path)
	case SkipDestinationExists:
		return fmt.Sprintf("%s already exists", o.MirrorPath)
	case SkipDoesNotExist:
		return fmt.Sprintf("%s does not exist", o.Path)
	case SkipNotSymlink:
		return fmt.Sprintf("%s is not a symlink", o.Path)
	case SkipNotDotfile:
		return fmt.Sprintf("%s is not a dotfile", o.Path)
	}
	return string(o.Kind)
}
