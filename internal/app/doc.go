// Package app wires scaffold's dependencies for a single command run.
//
// An App is built once per process from the loaded configuration and
// carries the logger, console, prompter and project manager that commands
// use. Tests replace any of them with Option values passed through the
// command context.
package app
