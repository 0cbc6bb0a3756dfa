// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/pass-vault/models"
)

// ivSize is the length of the IV prefix in a blob. It equals the AES block
// size.
const ivSize = aes.BlockSize

// cipherEngine is the private implementation of [CipherEngine].
type cipherEngine struct {
	// random supplies IVs. crypto/rand.Reader outside of tests.
	random io.Reader
}

// NewCipherEngine returns an AES-CBC [CipherEngine] drawing IVs from the OS
// CSPRNG. The engine holds no key and is safe for concurrent use.
func NewCipherEngine() CipherEngine {
	return newCipherEngine(rand.Reader)
}

func newCipherEngine(random io.Reader) *cipherEngine {
	return &cipherEngine{random: random}
}

// Encrypt implements [CipherEngine].
func (e *cipherEngine) Encrypt(plaintext string, key Key) (models.CipherBlob, error) {
	if !key.valid() {
		return "", fmt.Errorf("%w: %w", ErrEncryption, ErrInvalidKey)
	}
	if !utf8.ValidString(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrEncryption)
	}

	block, err := aes.NewCipher(key.b)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryption, err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	defer Zero(padded)

	blob := make([]byte, ivSize+len(padded))
	iv := blob[:ivSize]
	if _, err := io.ReadFull(e.random, iv); err != nil {
		return "", fmt.Errorf("%w: generating IV: %w", ErrEncryption, err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(blob[ivSize:], padded)

	return models.CipherBlob(base64.StdEncoding.EncodeToString(blob)), nil
}

// Decrypt implements [CipherEngine]. All failure paths return the bare
// [ErrDecryption].
func (e *cipherEngine) Decrypt(blob models.CipherBlob, key Key) (string, error) {
	if !key.valid() {
		return "", ErrDecryption
	}

	raw, err := base64.StdEncoding.DecodeString(blob.String())
	if err != nil {
		return "", ErrDecryption
	}
	if len(raw) < ivSize+aes.BlockSize || (len(raw)-ivSize)%aes.BlockSize != 0 {
		return "", ErrDecryption
	}

	block, err := aes.NewCipher(key.b)
	if err != nil {
		return "", ErrDecryption
	}

	iv, ciphertext := raw[:ivSize], raw[ivSize:]
	plain := make([]byte, len(ciphertext))
	defer Zero(plain)

	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	n, ok := pkcs7Unpad(plain, aes.BlockSize)
	if !ok || !utf8.Valid(plain[:n]) {
		return "", ErrDecryption
	}

	return string(plain[:n]), nil
}
