// Package testutil provides test fixtures and utilities.
//
// # Fixtures
//
// TOML config fixtures are embedded using go:embed:
//
//	fixtures/example_config.toml
//	fixtures/unknown_key_config.toml
//
// WriteFixture copies one into a directory so it can be passed to
// config.Load:
//
//	path := testutil.WriteFixture(t, t.TempDir(), "example_config.toml")
//	cfg, err := config.Load(path)
//
// # Test Environment
//
// NewTestEnv lays out a config whose projects root, state and log
// directories live under a temp dir, and a MockExecutor that simulates the
// environment bootstrap. The directories are created on first use:
//
//	env := testutil.NewTestEnv(t)
//	env.AddProject("alpha")
//	activate := env.AddEnvironment("beta", "backend")
package testutil
