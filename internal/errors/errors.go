package errors

import "errors"

// Input errors indicate missing or malformed configuration.
var (
	// ErrMissingInput indicates a required input (file path or passphrase) was not provided.
	ErrMissingInput = errors.New("required input is missing")

	// ErrInvalidConfig indicates the configuration file or an environment value is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")
)

// File errors indicate issues with file access.
var (
	// ErrFileNotFound indicates a specific file could not be located.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileExists indicates an output file already exists and would be overwritten.
	ErrFileExists = errors.New("file already exists")

	// ErrInvalidEnvFile indicates the plaintext is not a valid .env file.
	ErrInvalidEnvFile = errors.New("invalid .env file")
)

// Cryptographic errors indicate failures during encryption or decryption operations.
var (
	// ErrEncryptFailed indicates file encryption failed.
	ErrEncryptFailed = errors.New("failed to encrypt file")

	// ErrDecryptFailed indicates the ciphertext could not be authenticated,
	// usually because the passphrase is wrong.
	ErrDecryptFailed = errors.New("failed to decrypt file")

	// ErrInvalidCiphertext indicates the file is not in the encrypted format.
	ErrInvalidCiphertext = errors.New("file is not an encrypted .env file")
)

// Publish errors indicate failures while reporting results.
var (
	// ErrOutputFailed indicates a workflow output could not be written.
	ErrOutputFailed = errors.New("failed to write workflow output")

	// ErrNoPullRequest indicates the workflow event does not reference a pull request.
	ErrNoPullRequest = errors.New("workflow event is not a pull request")

	// ErrCommentFailed indicates the pull-request comment could not be posted.
	ErrCommentFailed = errors.New("failed to post pull request comment")
)
