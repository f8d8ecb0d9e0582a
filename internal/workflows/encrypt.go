package workflows

import (
	"context"
	"fmt"

	derrors "github.com/PolarWolf314/envdiff/internal/errors"
	"github.com/PolarWolf314/envdiff/internal/secrets"
)

// EncryptOptions configures the encrypt workflow.
type EncryptOptions struct {
	// InputPath is the plaintext .env file.
	InputPath string

	// OutputPath is where the encrypted file is written. Defaults to
	// InputPath with the .enc suffix.
	OutputPath string

	// Passphrase derives the encryption key.
	Passphrase []byte

	// Force overwrites an existing output file.
	Force bool
}

// EncryptResult contains the outcome of an encrypt operation.
type EncryptResult struct {
	InputPath  string
	OutputPath string

	// Keys lists the key names found in the input, in file order.
	Keys []string
}

// Encrypt encrypts a plaintext .env file.
//
// Returns ErrFileNotFound if the input is missing, ErrInvalidEnvFile if it
// does not parse, and ErrFileExists if the output exists and Force is unset.
func Encrypt(ctx context.Context, opts EncryptOptions) (*EncryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.InputPath == "" {
		return nil, fmt.Errorf("%w: input file", derrors.ErrMissingInput)
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = secrets.DefaultEncryptedPath(opts.InputPath)
	}

	mapping, err := secrets.EncryptFile(opts.Passphrase, opts.InputPath, outputPath, opts.Force)
	if err != nil {
		return nil, err
	}

	return &EncryptResult{
		InputPath:  opts.InputPath,
		OutputPath: outputPath,
		Keys:       mapping.Keys(),
	}, nil
}
