// Package workflows provides high-level orchestration for envdiff commands.
//
// Workflows coordinate the other internal packages (configs, secrets,
// envdiff, actions, github) to implement complete user-facing features. Each
// workflow handles a single command's business logic, independent of CLI
// concerns like flag parsing, spinners, and output formatting.
//
// # Available Workflows
//
//   - Diff: decrypts two files, compares them, optionally redacts, renders
//   - Publish: writes Diff's outputs, step summary and pull-request comment
//   - Encrypt: encrypts a plaintext .env file
//   - Decrypt: decrypts an encrypted .env file
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Use
// errors.Is() to check for specific error conditions:
//
//	result, err := workflows.Diff(ctx, cfg, decrypter)
//	if errors.Is(err, derrors.ErrDecryptFailed) {
//	    // Suggest checking the passphrase
//	}
//
// A failure in either decryption aborts the run before anything is
// published.
package workflows
