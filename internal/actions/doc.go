// Package actions publishes results to the GitHub Actions runner.
//
// Outputs are appended to the file named by GITHUB_OUTPUT using the
// multi-line form:
//
//	name<<ghadelimiter_<uuid>
//	value
//	ghadelimiter_<uuid>
//
// Every value gets a fresh random delimiter, so values may span lines. Outside
// of Actions, when GITHUB_OUTPUT is unset, the same text is written to a
// fallback writer (usually stdout).
package actions
