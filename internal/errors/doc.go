// Package errors provides typed error values for envdiff.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Input errors: required configuration is missing or malformed (ErrMissingInput, ErrInvalidConfig)
//   - File errors: file system issues (ErrFileNotFound, ErrFileExists)
//   - Crypto errors: encryption/decryption failures (ErrDecryptFailed, ErrInvalidCiphertext)
//   - Publish errors: workflow outputs or pull-request comments (ErrOutputFailed, ErrCommentFailed)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("reading %s: %w", path, errors.ErrFileNotFound)
//
// Handle them in the CLI layer:
//
//	if errors.Is(err, derrors.ErrDecryptFailed) {
//	    // Suggest checking the passphrase
//	}
package errors
