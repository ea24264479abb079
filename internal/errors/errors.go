package errors

import (
	"errors"
	"fmt"
)

// Exit codes for scaffold
const (
	ExitSuccess           = 0
	ExitGeneralError      = 1
	ExitCancelled         = 2
	ExitProjectExists     = 3
	ExitProjectNotFound   = 4
	ExitEnvironmentFailed = 5
	ExitConfigError       = 6
	ExitFilesystemError   = 7
)

// Exit codes reported by the navigate command to the shell wrapper.
const (
	NavigateExisting  = 0
	NavigateCreated   = 1
	NavigateCancelled = 2
)

// ScaffoldError is the base error type for scaffold
type ScaffoldError struct {
	Code    int
	Message string
	Cause   error

	// Silent errors carry an exit code only; nothing is printed for them.
	Silent bool
}

func (e *ScaffoldError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ScaffoldError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *ScaffoldError) ExitCode() int {
	return e.Code
}

// New creates a new ScaffoldError
func New(code int, message string) *ScaffoldError {
	return &ScaffoldError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a ScaffoldError
func Wrap(code int, message string, cause error) *ScaffoldError {
	return &ScaffoldError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Common error constructors

// ProjectExists returns an error for a project name that is already taken
func ProjectExists(name string) *ScaffoldError {
	return New(ExitProjectExists, fmt.Sprintf("project '%s' already exists", name))
}

// ProjectNotFound returns an error for a missing project
func ProjectNotFound(name string) *ScaffoldError {
	return New(ExitProjectNotFound, fmt.Sprintf("project '%s' does not exist", name))
}

// EnvironmentFailed returns an error for a failed environment bootstrap
func EnvironmentFailed(cause error) *ScaffoldError {
	return Wrap(ExitEnvironmentFailed, "error creating virtual environment", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *ScaffoldError {
	return Wrap(ExitConfigError, message, cause)
}

// FilesystemError returns an error for a failed filesystem operation
func FilesystemError(op string, cause error) *ScaffoldError {
	return Wrap(ExitFilesystemError, fmt.Sprintf("error %s", op), cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *ScaffoldError {
	return New(ExitGeneralError, message)
}

// Silent returns an error that only sets the exit code. Used once the
// failure has already been reported to the user.
func Silent(code int, message string) *ScaffoldError {
	return &ScaffoldError{Code: code, Message: message, Silent: true}
}

// NavigateExit returns a silent error carrying a navigate exit code.
// A nil error is returned for NavigateExisting.
func NavigateExit(code int) error {
	if code == NavigateExisting {
		return nil
	}
	return Silent(code, fmt.Sprintf("navigate exited with %d", code))
}

// IsSilent reports whether err should be reported by exit code only
func IsSilent(err error) bool {
	var scaffoldErr *ScaffoldError
	return errors.As(err, &scaffoldErr) && scaffoldErr.Silent
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var scaffoldErr *ScaffoldError
	if errors.As(err, &scaffoldErr) {
		return scaffoldErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}
