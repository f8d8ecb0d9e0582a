// Package logger provides levelled logging for envdiff commands.
//
// Output is prefixed with a coloured tag. Colours are dropped when NO_COLOR is
// set or the output is not a terminal.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors go to stderr. Errors and WarnfAlways are shown at
// every level.
//
// # Usage
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Comparing %s with %s", base, current)
//
// Never log decrypted values or the passphrase. Key names are fine.
package logger
