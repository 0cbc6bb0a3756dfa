package crypto

import "errors"

var (
	// ErrEncryption is returned when a secret cannot be encrypted: the key
	// is absent or malformed, the plaintext is not valid UTF-8, or the random
	// source failed.
	ErrEncryption = errors.New("encryption failed")

	// ErrDecryption is returned for every decryption failure. It is never
	// wrapped, so callers cannot tell a bad key from a corrupt blob.
	ErrDecryption = errors.New("decryption failed")

	// ErrInvalidKey is returned when key material has the wrong size or
	// cannot be decoded.
	ErrInvalidKey = errors.New("invalid encryption key")
)
