package crypto

import "github.com/MKhiriev/pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// CipherEngine encrypts and decrypts single secrets. The key is passed to
// every call so that callers own key selection.
//
// Blob format: Base64(IV[16] || AES-CBC(PKCS7(plaintext))).
type CipherEngine interface {
	// Encrypt protects plaintext under key with a fresh random IV. Errors
	// match ErrEncryption.
	Encrypt(plaintext string, key Key) (models.CipherBlob, error)

	// Decrypt recovers the plaintext of blob. Every failure returns exactly
	// ErrDecryption.
	Decrypt(blob models.CipherBlob, key Key) (string, error)
}

// KeyChainService creates key material.
type KeyChainService interface {
	// GenerateKey returns 32 random bytes suitable for AES-256. The caller
	// owns the slice and should wipe it with Zero after encoding it.
	GenerateKey() ([]byte, error)

	// GenerateSalt returns 16 random bytes for passphrase derivation. The
	// salt is not secret.
	GenerateSalt() ([]byte, error)

	// DeriveKey stretches a passphrase into a 32 byte key with Argon2id.
	// The same passphrase and salt always give the same key.
	DeriveKey(passphrase string, salt []byte) (Key, error)
}

// KeyProvider hands out the process-wide encryption key.
type KeyProvider interface {
	Key() (Key, error)
}
