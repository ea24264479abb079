// Package logging provides logging utilities for scaffold.
//
// This package provides two categories of output:
//   - Structured logging: a zap logger writing to the console and to a
//     per-day log file
//   - User output: formatted messages for end users (Console)
//
// # Structured Logging
//
// A Logger is created once by the entry point and passed to whatever needs
// it. There is no package-level logger.
//
//	log, err := logging.New(logging.Options{Verbose: verbose, Dir: cfg.LogDir})
//	defer log.Close()
//	log.Debug("creating project", "name", name, "path", path)
//
// The console core logs at info level, or debug when Verbose is set. The
// file core always logs at debug level to <Dir>/scaffold_YYYYMMDD.log, in
// JSON, regardless of verbosity.
//
// Record writes to the file core only. It is used to mirror output that
// already reached the terminal, such as signal lines.
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	console.Info("Creating Python %s virtual environment...", version)
//	console.Success("Created project folder: %s", path)
//	console.Warning("Project '%s' already exists.", name)
//	console.Error("Error deleting project: %v", err)
//
// Output destinations:
//   - Info, Success, Print: the out writer (stdout)
//   - Warning, Error: the err writer (stderr)
package logging
