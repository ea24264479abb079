// Package errors provides typed errors with exit codes for scaffold.
//
// # Error Types
//
// ScaffoldError is the base error type that wraps an error with an exit code:
//
//	type ScaffoldError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess           = 0  // Success
//	ExitGeneralError      = 1  // General/unknown errors
//	ExitCancelled         = 2  // Operator declined a prompt
//	ExitProjectExists     = 3  // Project already exists
//	ExitProjectNotFound   = 4  // Project does not exist
//	ExitEnvironmentFailed = 5  // Environment bootstrap failed
//	ExitConfigError       = 6  // Configuration error
//	ExitFilesystemError   = 7  // Filesystem operation failed
//
// The navigate command does not use these codes. Its outcome is reported
// through NavigateExit with the codes the shell wrapper expects:
//
//	NavigateExisting = 0
//	NavigateCreated  = 1
//	NavigateCancelled = 2
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
