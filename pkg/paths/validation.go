package paths

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/dotfiles/pkg/errors"
)

// ValidatePath rejects paths that can never name a dotfile: empty
// strings, embedded null bytes and paths over the common filesystem limit.
func ValidatePath(path string) error {
	if path == "" {
		return errors.New(errors.ErrInvalidInput, "path cannot be empty")
	}

	// Check for null bytes
	if strings.Contains(path, "\x00") {
		return errors.New(errors.ErrInvalidInput, "path contains null bytes")
	}

	// Check path length (common filesystem limit)
	if len(path) > 4096 {
		return errors.New(errors.ErrInvalidInput, "path exceeds maximum length")
	}

	return nil
}

// ContainsPath checks if child is parent or lies beneath it.
// Both paths must already be clean and absolute.
func ContainsPath(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
