package secrets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/PolarWolf314/envdiff/internal/envdiff"
	derrors "github.com/PolarWolf314/envdiff/internal/errors"
)

// EncryptedSuffix is appended to a .env path when no output path is given.
const EncryptedSuffix = ".enc"

// DefaultEncryptedPath returns the output path used for inputPath when the
// caller does not choose one.
func DefaultEncryptedPath(inputPath string) string {
	return inputPath + EncryptedSuffix
}

// ReadFile reads path, mapping a missing file to ErrFileNotFound.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", derrors.ErrFileNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}

// WriteFile writes data with 0600 permissions, creating parent directories.
// An existing file is only replaced when overwrite is true.
func WriteFile(path string, data []byte, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", derrors.ErrFileExists, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write to %s: %w", path, err)
	}
	return nil
}

// EncryptFile encrypts the .env file at inputPath into outputPath and
// returns the parsed plaintext. The plaintext must parse as a dotenv file.
func EncryptFile(passphrase []byte, inputPath, outputPath string, overwrite bool) (*envdiff.Mapping, error) {
	plaintext, err := ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	mapping, err := ParseEnv(plaintext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}

	ciphertext, err := Seal(passphrase, plaintext)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", derrors.ErrEncryptFailed, err)
	}

	if err := WriteFile(outputPath, ciphertext, overwrite); err != nil {
		return nil, err
	}
	return mapping, nil
}

// DecryptFile returns the plaintext of the encrypted file at path.
func DecryptFile(passphrase []byte, path string) ([]byte, error) {
	ciphertext, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	plaintext, err := Open(passphrase, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return plaintext, nil
}
