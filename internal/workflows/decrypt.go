package workflows

import (
	"context"
	"fmt"

	derrors "github.com/PolarWolf314/envdiff/internal/errors"
	"github.com/PolarWolf314/envdiff/internal/secrets"
)

// DecryptOptions configures the decrypt workflow.
type DecryptOptions struct {
	// InputPath is the encrypted file.
	InputPath string

	// Ciphertext, when set, is decrypted instead of reading InputPath.
	// InputPath is then only used in messages.
	Ciphertext []byte

	// OutputPath, when set, receives the plaintext. Otherwise the plaintext
	// is only returned.
	OutputPath string

	// Passphrase derives the decryption key.
	Passphrase []byte

	// Force overwrites an existing output file.
	Force bool
}

// DecryptResult contains the outcome of a decrypt operation.
type DecryptResult struct {
	// Plaintext is the decrypted .env content.
	Plaintext []byte

	// Keys lists the key names in file order.
	Keys []string

	// OutputPath is the file written, if any.
	OutputPath string
}

// Decrypt decrypts an encrypted .env file and checks that it parses.
//
// Returns ErrDecryptFailed for a wrong passphrase and ErrInvalidCiphertext
// for files that are not envdiff-encrypted.
func Decrypt(ctx context.Context, opts DecryptOptions) (*DecryptResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.InputPath == "" && opts.Ciphertext == nil {
		return nil, fmt.Errorf("%w: input file", derrors.ErrMissingInput)
	}

	var (
		plaintext []byte
		err       error
	)
	if opts.Ciphertext != nil {
		plaintext, err = secrets.Open(opts.Passphrase, opts.Ciphertext)
	} else {
		plaintext, err = secrets.DecryptFile(opts.Passphrase, opts.InputPath)
	}
	if err != nil {
		return nil, err
	}

	mapping, err := secrets.ParseEnv(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opts.InputPath, err)
	}

	result := &DecryptResult{
		Plaintext: plaintext,
		Keys:      mapping.Keys(),
	}

	if opts.OutputPath != "" {
		if err := secrets.WriteFile(opts.OutputPath, plaintext, opts.Force); err != nil {
			return nil, err
		}
		result.OutputPath = opts.OutputPath
	}

	return result, nil
}
