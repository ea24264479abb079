// Package signal renders navigation outcomes for the enclosing shell.
//
// A child process cannot change its parent's working directory, so
// navigate prints marker lines on stdout instead:
//
//	NAVIGATE_TO:<absolute path>
//	ACTIVATE_VENV:<absolute path to bin/activate>
//
// A shell function generated by WrapperScript runs navigate, reads the
// markers and performs the cd and source itself.
package signal
