// Package utils provides terminal and formatting helpers shared by envdiff's
// commands.
//
// Passphrases are read with ReadPassphrase, which disables echo and refuses
// to run when stdin is not a terminal. ReadNewPassphrase asks twice and is
// used when encrypting. FormatKeys and FormatPaths render lists for verbose
// command output.
package utils
