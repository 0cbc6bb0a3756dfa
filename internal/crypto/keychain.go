// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the size of generated and derived keys (AES-256).
	KeySize = 32
	// SaltSize is the size of generated KDF salts.
	SaltSize = 16
	// minSaltSize rejects salts too short to separate passphrases.
	minSaltSize = 8
)

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	random io.Reader

	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		random:       rand.Reader,
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
	}
}

// GenerateKey implements [KeyChainService].
func (k *keyChainService) GenerateKey() ([]byte, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(k.random, key); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return key, nil
}

// GenerateSalt implements [KeyChainService].
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.random, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService].
func (k *keyChainService) DeriveKey(passphrase string, salt []byte) (Key, error) {
	if passphrase == "" {
		return Key{}, fmt.Errorf("%w: empty passphrase", ErrInvalidKey)
	}
	if len(salt) < minSaltSize {
		return Key{}, fmt.Errorf("%w: salt must be at least %d bytes", ErrInvalidKey, minSaltSize)
	}

	raw := argon2.IDKey(
		[]byte(passphrase),
		salt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		KeySize,
	)
	defer Zero(raw)

	return NewKey(raw)
}
