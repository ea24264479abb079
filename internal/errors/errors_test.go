package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestScaffoldError_Error(t *testing.T) {
	tests := []struct {
		name    string
		err     *ScaffoldError
		wantMsg string
	}{
		{
			name:    "without cause",
			err:     New(ExitGeneralError, "something went wrong"),
			wantMsg: "something went wrong",
		},
		{
			name:    "with cause",
			err:     Wrap(ExitGeneralError, "operation failed", fmt.Errorf("underlying error")),
			wantMsg: "operation failed: underlying error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
		})
	}
}

func TestScaffoldError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ExitGeneralError, "wrapped", cause)

	if unwrapped := err.Unwrap(); unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	errNoCause := New(ExitGeneralError, "no cause")
	if unwrapped := errNoCause.Unwrap(); unwrapped != nil {
		t.Errorf("Unwrap() = %v, want nil", unwrapped)
	}
}

func TestConstructors(t *testing.T) {
	cause := fmt.Errorf("boom")

	tests := []struct {
		name     string
		err      *ScaffoldError
		wantCode int
		wantMsg  string
	}{
		{"project exists", ProjectExists("alpha"), ExitProjectExists, "project 'alpha' already exists"},
		{"project not found", ProjectNotFound("alpha"), ExitProjectNotFound, "project 'alpha' does not exist"},
		{"environment failed", EnvironmentFailed(cause), ExitEnvironmentFailed, "error creating virtual environment"},
		{"config", ConfigError("bad config", cause), ExitConfigError, "bad config"},
		{"filesystem", FilesystemError("creating project folder", cause), ExitFilesystemError, "error creating project folder"},
		{"validation", ValidationError("name required"), ExitGeneralError, "name required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %d, want %d", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMsg)
			}
		})
	}
}

func TestNavigateExit(t *testing.T) {
	if err := NavigateExit(NavigateExisting); err != nil {
		t.Errorf("NavigateExit(existing) = %v, want nil", err)
	}

	for _, code := range []int{NavigateCreated, NavigateCancelled} {
		err := NavigateExit(code)
		if err == nil {
			t.Fatalf("NavigateExit(%d) = nil", code)
		}
		if got := GetExitCode(err); got != code {
			t.Errorf("GetExitCode() = %d, want %d", got, code)
		}
		if !IsSilent(err) {
			t.Errorf("NavigateExit(%d) should be silent", code)
		}
	}
}

func TestIsSilent(t *testing.T) {
	if IsSilent(ProjectExists("x")) {
		t.Error("ProjectExists should not be silent")
	}
	if IsSilent(fmt.Errorf("plain")) {
		t.Error("plain error should not be silent")
	}
	if !IsSilent(fmt.Errorf("outer: %w", NavigateExit(NavigateCreated))) {
		t.Error("wrapped navigate exit should be silent")
	}

	err := Silent(ExitEnvironmentFailed, "partial create")
	if !IsSilent(err) || GetExitCode(err) != ExitEnvironmentFailed {
		t.Errorf("Silent() = %+v, want silent with code %d", err, ExitEnvironmentFailed)
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{
			name:     "ScaffoldError",
			err:      ProjectNotFound("test"),
			wantCode: ExitProjectNotFound,
		},
		{
			name:     "wrapped ScaffoldError",
			err:      fmt.Errorf("outer: %w", ProjectExists("test")),
			wantCode: ExitProjectExists,
		},
		{
			name:     "regular error",
			err:      fmt.Errorf("some error"),
			wantCode: ExitGeneralError,
		},
		{
			name:     "nil error",
			err:      nil,
			wantCode: ExitGeneralError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.wantCode {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.wantCode)
			}
		})
	}
}

func TestErrorChaining(t *testing.T) {
	root := fmt.Errorf("root cause")
	middle := Wrap(ExitConfigError, "config error", root)
	outer := fmt.Errorf("operation failed: %w", middle)

	if !errors.Is(outer, root) {
		t.Error("errors.Is should find root cause")
	}
	if !Is(outer, root) {
		t.Error("Is should find root cause")
	}

	var scaffoldErr *ScaffoldError
	if !errors.As(outer, &scaffoldErr) {
		t.Error("errors.As should find ScaffoldError")
	}

	if scaffoldErr.Code != ExitConfigError {
		t.Errorf("Code = %d, want %d", scaffoldErr.Code, ExitConfigError)
	}
}
