// Package config handles configuration for scaffold.
//
// # Sources
//
// Configuration is resolved in layers, later layers winning:
//
//  1. Defaults derived from the user's home directory
//  2. An optional TOML file ($XDG_CONFIG_HOME/scaffold/config.toml, or the
//     path passed with --config)
//  3. Environment variables
//
// # Config File
//
//	projects_dir   = "~/Documents/Projects"
//	state_dir      = "~/.local/state/scaffold"
//	log_dir        = "~/.local/state/scaffold/logs"
//	python         = "python3"
//	python_version = "3.12"
//
// # Environment Variables
//
//	SCAFFOLD_PROJECTS_DIR
//	SCAFFOLD_STATE_DIR
//	SCAFFOLD_LOG_DIR
//	SCAFFOLD_PYTHON
//	SCAFFOLD_PYTHON_VERSION
//
// A leading ~ in any configured directory is expanded to the home directory.
package config
