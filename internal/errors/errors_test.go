package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_WithError(t *testing.T) {
	baseErr := errors.New("exit status 128")
	appErr := ErrGitLog.WithError(baseErr)

	if appErr.Err != baseErr {
		t.Errorf("Expected underlying error to be %v, got %v", baseErr, appErr.Err)
	}

	if appErr.Type != TypeGit {
		t.Errorf("Expected type %s, got %s", TypeGit, appErr.Type)
	}
}

func TestAppError_WithContext(t *testing.T) {
	appErr := ErrGitLog.WithContext("branch", "main").WithContext("stderr", "unknown revision")

	if appErr.Context["branch"] != "main" {
		t.Errorf("Expected branch context 'main', got %v", appErr.Context["branch"])
	}

	if ErrGitLog.Context != nil {
		t.Error("Original error should not have context")
	}
}

func TestAppError_Error_Format(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		contains []string
	}{
		{
			name:     "Simple error without underlying error",
			err:      ErrNoCommits,
			contains: []string{"EMPTY_RESULT", "No commits found"},
		},
		{
			name: "Error with context including stderr",
			err: ErrGitLog.WithError(errors.New("exit status 128")).
				WithContext("stderr", "fatal: bad revision 'nope'"),
			contains: []string{
				"GIT",
				"Failed to read git log",
				"exit status 128",
				"bad revision",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, substr := range tt.contains {
				if !strings.Contains(errMsg, substr) {
					t.Errorf("Expected error message to contain %q, got: %s", substr, errMsg)
				}
			}
		})
	}
}

func TestAppError_Is(t *testing.T) {
	baseErr := errors.New("base error")
	appErr := ErrGitLog.WithError(baseErr).WithContext("branch", "dev")

	if !errors.Is(appErr, baseErr) {
		t.Error("errors.Is should reach the wrapped error")
	}
	if !errors.Is(appErr, ErrGitLog) {
		t.Error("errors.Is should match the sentinel after WithError/WithContext")
	}
	if errors.Is(appErr, ErrNoCommits) {
		t.Error("errors.Is should not match a different sentinel")
	}
	if !errors.Is(fmt.Errorf("wrapped: %w", ErrNoCommits), ErrNoCommits) {
		t.Error("errors.Is should see through fmt wrapping")
	}
}

func TestExitCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitSuccess},
		{name: "git failure", err: ErrGitLog.WithError(errors.New("boom")), want: ExitGitFailure},
		{name: "no commits", err: ErrNoCommits, want: ExitNoCommits},
		{name: "wrapped no commits", err: fmt.Errorf("generate: %w", ErrNoCommits), want: ExitNoCommits},
		{name: "configuration", err: ErrInvalidFormat, want: ExitInvalidArguments},
		{name: "plain error", err: errors.New("other"), want: ExitGitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeOf(tt.err); got != tt.want {
				t.Errorf("ExitCodeOf() = %d, want %d", got, tt.want)
			}
		})
	}
}
