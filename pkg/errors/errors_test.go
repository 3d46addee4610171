// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/dotboot/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "clone_error",
			code:    errors.ErrGitClone,
			message: "clone failed",
			wantStr: "[GIT_CLONE] clone failed",
		},
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "invalid configuration",
			wantStr: "[INVALID_INPUT] invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrSymlinkCreate, "cannot link %s to %s", ".tmux.conf", "tmux/tmux.conf")

	want := "cannot link .tmux.conf to tmux/tmux.conf"
	if err.Message != want {
		t.Errorf("Newf() message = %q, want %q", err.Message, want)
	}
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("exit status 128")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrSubmoduleSync, "submodule update failed")

		if err.Code != errors.ErrSubmoduleSync {
			t.Errorf("Wrap() code = %v, want %v", err.Code, errors.ErrSubmoduleSync)
		}

		if err.Wrapped != baseErr {
			t.Error("Wrap() should preserve wrapped error")
		}

		wantStr := "[SUBMODULE_SYNC] submodule update failed: exit status 128"
		if got := err.Error(); got != wantStr {
			t.Errorf("Error() = %q, want %q", got, wantStr)
		}
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		if err := errors.Wrap(nil, errors.ErrInternal, "internal error"); err != nil {
			t.Error("Wrap(nil) should return nil")
		}
		if err := errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"); err != nil {
			t.Error("Wrapf(nil) should return nil")
		}
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrLinkRemove, "cannot remove").
		WithDetail("path", "/home/u/.tmux.conf").
		WithDetail("kind", "directory")

	if err.Details["path"] != "/home/u/.tmux.conf" {
		t.Errorf("WithDetail() path = %v", err.Details["path"])
	}
	if err.Details["kind"] != "directory" {
		t.Errorf("WithDetail() kind = %v", err.Details["kind"])
	}

	if got := errors.GetErrorDetails(err); got["kind"] != "directory" {
		t.Errorf("GetErrorDetails() kind = %v", got["kind"])
	}
	if errors.GetErrorDetails(stderrors.New("plain")) != nil {
		t.Error("GetErrorDetails() should be nil for plain errors")
	}
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrGitClone, "error 1")
	err2 := errors.New(errors.ErrGitClone, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	t.Run("same_code_is_equal", func(t *testing.T) {
		if !err1.Is(err2) {
			t.Error("Is() should return true for same code")
		}
	})

	t.Run("different_code_not_equal", func(t *testing.T) {
		if err1.Is(err3) {
			t.Error("Is() should return false for different codes")
		}
	})

	t.Run("works_with_errors_Is", func(t *testing.T) {
		if !stderrors.Is(err1, err2) {
			t.Error("errors.Is() should work with BootError")
		}
	})
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrDirCreate, "mkdir"),
			code:     errors.ErrDirCreate,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrDirCreate, "mkdir"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_error",
			err:      errors.Wrap(stderrors.New("base"), errors.ErrFileAccess, "denied"),
			code:     errors.ErrFileAccess,
			expected: true,
		},
		{
			name:     "non_boot_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrGitClone,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrGitClone,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.IsErrorCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected errors.ErrorCode
	}{
		{"boot_error", errors.New(errors.ErrUsernameResolve, "no user"), errors.ErrUsernameResolve},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown},
		{"nil_error", nil, errors.ErrUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	rootCause := stderrors.New("root cause")
	cmdErr := errors.Wrap(rootCause, errors.ErrCommandFailed, "git exited with status 128")
	cloneErr := errors.Wrap(cmdErr, errors.ErrGitClone, "failed to clone dotfiles")

	t.Run("top_level_has_correct_code", func(t *testing.T) {
		if !errors.IsErrorCode(cloneErr, errors.ErrGitClone) {
			t.Error("Top level should have ErrGitClone code")
		}
	})

	t.Run("can_find_middle_error", func(t *testing.T) {
		var bootErr *errors.BootError
		if !stderrors.As(cloneErr.Unwrap(), &bootErr) {
			t.Fatal("middle error should be a BootError")
		}
		if bootErr.Code != errors.ErrCommandFailed {
			t.Errorf("middle code = %v, want %v", bootErr.Code, errors.ErrCommandFailed)
		}
	})

	t.Run("can_find_root_cause", func(t *testing.T) {
		if !stderrors.Is(cloneErr, rootCause) {
			t.Error("Should find root cause with errors.Is")
		}
	})
}
