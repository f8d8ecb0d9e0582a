// Package secrets encrypts, decrypts and parses envdiff's encrypted .env files.
//
// # File Format
//
// An encrypted file is a single binary blob:
//
//	"EDENC1" | salt (16 bytes) | nonce (24 bytes) | secretbox ciphertext
//
// The 32-byte secretbox key is derived from the passphrase and the salt with
// scrypt (N=32768, r=8, p=1). A fresh salt and nonce are generated on every
// encryption, so re-encrypting the same file produces different output.
//
// # Parsing
//
// Decrypted plaintext is parsed as a dotenv file with gotenv. ParseEnv keeps
// the order in which keys first appear so diffs are reported in file order.
//
// # Security Considerations
//
// Encrypted and decrypted files are written with 0600 permissions. Decrypted
// values are only held in memory and are never logged.
package secrets
