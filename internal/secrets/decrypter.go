package secrets

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/envdiff/internal/envdiff"
)

// FileDecrypter decrypts envdiff-encrypted .env files with a passphrase.
type FileDecrypter struct {
	Passphrase []byte
}

// Decrypt reads, decrypts and parses the file at path.
func (d FileDecrypter) Decrypt(ctx context.Context, path string) (*envdiff.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plaintext, err := DecryptFile(d.Passphrase, path)
	if err != nil {
		return nil, err
	}

	mapping, err := ParseEnv(plaintext)
	if err != nil {
		return nil, fmt.Errorf("parsing decrypted %s: %w", path, err)
	}
	return mapping, nil
}
