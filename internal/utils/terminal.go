package utils

import (
	"bytes"
	"fmt"
	"os"

	"golang.org/x/term"
)

// ReadPassphrase prompts the user for a passphrase without echoing input.
// Returns an error if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read passphrase: stdin is not a terminal (hint: set DOTENVENC_PASS)")
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// ReadNewPassphrase prompts for a passphrase twice and returns it once both
// entries match.
func ReadNewPassphrase() ([]byte, error) {
	first, err := ReadPassphrase("Enter passphrase: ")
	if err != nil {
		return nil, err
	}
	if len(first) == 0 {
		return nil, fmt.Errorf("passphrase cannot be empty")
	}

	second, err := ReadPassphrase("Confirm passphrase: ")
	if err != nil {
		return nil, err
	}

	if err := ConfirmPassphrase(first, second); err != nil {
		return nil, err
	}
	return first, nil
}

// ConfirmPassphrase returns an error unless both entries are identical.
func ConfirmPassphrase(first, second []byte) error {
	if !bytes.Equal(first, second) {
		return fmt.Errorf("passphrases do not match")
	}
	return nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
