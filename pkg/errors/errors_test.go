// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/arthur-debert/dotfiles/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "conflict_error",
			code:    errors.ErrConflict,
			message: "~/.config is a file",
			wantStr: "[CONFLICT] ~/.config is a file",
		},
		{
			name:    "config_error",
			code:    errors.ErrConfigLoad,
			message: "XDG_DATA_HOME is not set",
			wantStr: "[CONFIG_LOAD] XDG_DATA_HOME is not set",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrGitCommand, "git %s exited with status %d", "push", 128)
	assert.Equal(t, "git push exited with status 128", err.Message)
}

func TestWrap(t *testing.T) {
	t.Run("wraps_cause", func(t *testing.T) {
		cause := fs.ErrNotExist
		err := errors.Wrap(cause, errors.ErrMirrorMissing, "mirror file is gone")

		require.NotNil(t, err)
		assert.True(t, stderrors.Is(err, fs.ErrNotExist))
		assert.Contains(t, err.Error(), "[MIRROR_MISSING] mirror file is gone")
	})

	t.Run("nil_cause_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "unused"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "unused %d", 1))
	})
}

func TestIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("outer: %w", errors.New(errors.ErrConflict, "first"))

	assert.True(t, stderrors.Is(err, errors.New(errors.ErrConflict, "other message")))
	assert.False(t, stderrors.Is(err, errors.New(errors.ErrFileMove, "first")))
}

func TestCodeHelpers(t *testing.T) {
	err := errors.New(errors.ErrOutsideRoot, "outside").WithDetail("path", "/etc/passwd")
	wrapped := fmt.Errorf("adopt: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrOutsideRoot))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrConflict))
	assert.Equal(t, errors.ErrOutsideRoot, errors.GetErrorCode(wrapped))
	assert.Equal(t, "/etc/passwd", errors.GetErrorDetails(wrapped)["path"])

	plain := stderrors.New("plain")
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(plain))
	assert.Nil(t, errors.GetErrorDetails(plain))
}
