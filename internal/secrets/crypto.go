package secrets

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"io"

	derrors "github.com/PolarWolf314/envdiff/internal/errors"

	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"
)

const (
	fileMagic = "EDENC1"
	saltSize  = 16
	nonceSize = 24
	keySize   = 32

	scryptN = 1 << 15
	scryptR = 8
	scryptP = 1
)

// headerSize is the number of bytes before the secretbox ciphertext.
const headerSize = len(fileMagic) + saltSize + nonceSize

// DeriveKey derives a secretbox key from a passphrase and salt with scrypt.
func DeriveKey(passphrase, salt []byte) (*[keySize]byte, error) {
	derived, err := scrypt.Key(passphrase, salt, scryptN, scryptR, scryptP, keySize)
	if err != nil {
		return nil, fmt.Errorf("deriving key: %w", err)
	}

	var key [keySize]byte
	copy(key[:], derived)
	return &key, nil
}

// Seal encrypts plaintext with a key derived from passphrase.
func Seal(passphrase, plaintext []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("%w: passphrase is empty", derrors.ErrMissingInput)
	}

	header := make([]byte, headerSize)
	copy(header, fileMagic)
	salt := header[len(fileMagic) : len(fileMagic)+saltSize]
	nonceBytes := header[len(fileMagic)+saltSize:]

	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	if _, err := io.ReadFull(rand.Reader, nonceBytes); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	key, err := DeriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}

	var nonce [nonceSize]byte
	copy(nonce[:], nonceBytes)

	return secretbox.Seal(header, plaintext, &nonce, key), nil
}

// Open decrypts data produced by Seal.
//
// Returns ErrInvalidCiphertext if data does not start with the envdiff
// header, and ErrDecryptFailed if authentication fails.
func Open(passphrase, data []byte) ([]byte, error) {
	if len(passphrase) == 0 {
		return nil, fmt.Errorf("%w: passphrase is empty", derrors.ErrMissingInput)
	}
	if len(data) < headerSize+secretbox.Overhead || !bytes.HasPrefix(data, []byte(fileMagic)) {
		return nil, derrors.ErrInvalidCiphertext
	}

	salt := data[len(fileMagic) : len(fileMagic)+saltSize]
	var nonce [nonceSize]byte
	copy(nonce[:], data[len(fileMagic)+saltSize:headerSize])

	key, err := DeriveKey(passphrase, salt)
	if err != nil {
		return nil, err
	}

	plaintext, ok := secretbox.Open(nil, data[headerSize:], &nonce, key)
	if !ok {
		return nil, fmt.Errorf("%w: wrong passphrase or corrupted data", derrors.ErrDecryptFailed)
	}

	return plaintext, nil
}
