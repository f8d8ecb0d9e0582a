// Package configs builds envdiff's run configuration.
//
// Configuration comes from three sources, highest precedence first:
//
//   - Command-line flags (applied by the cmd package)
//   - Environment variables, including GitHub Actions INPUT_* variables
//   - An optional TOML file, .envdiff.toml by default
//
// # Configuration File
//
//	base_file      = ".env.base.enc"
//	current_file   = ".env.enc"
//	sensitive_keys = ["API_KEY", "*_PASSWORD"]
//	comment        = false
//	step_summary   = true
//
// The passphrase is never read from the file; it must come from
// DOTENVENC_PASS (or INPUT_PASSPHRASE in an action) or an interactive prompt.
//
// The Config is built once at startup and passed to workflows. Nothing
// below the cmd package reads the environment directly.
package configs
