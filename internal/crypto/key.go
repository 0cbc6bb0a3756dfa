// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/rs/zerolog"
)

const redacted = "[REDACTED]"

// Key is an AES key of 16, 24 or 32 bytes. The zero value is an absent key.
//
// Key never prints its bytes: fmt verbs, JSON and zerolog all get a
// placeholder.
type Key struct {
	b []byte
}

// NewKey copies raw into a new Key. raw may be wiped by the caller afterwards.
func NewKey(raw []byte) (Key, error) {
	switch len(raw) {
	case 16, 24, 32:
	default:
		return Key{}, fmt.Errorf("%w: got %d bytes, want 16, 24 or 32", ErrInvalidKey, len(raw))
	}

	b := make([]byte, len(raw))
	copy(b, raw)
	return Key{b: b}, nil
}

// IsZero reports whether the key is absent.
func (k Key) IsZero() bool {
	return len(k.b) == 0
}

// Len is the key size in bytes.
func (k Key) Len() int {
	return len(k.b)
}

// Zero wipes the key bytes. Copies of k share the wiped bytes.
func (k *Key) Zero() {
	Zero(k.b)
	k.b = nil
}

func (k Key) String() string {
	return redacted
}

func (k Key) GoString() string {
	return "crypto.Key{" + redacted + "}"
}

func (k Key) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

func (k Key) MarshalZerologObject(e *zerolog.Event) {
	e.Int("size", len(k.b)).Str("key", redacted)
}

// valid reports whether k can key an AES block cipher.
func (k Key) valid() bool {
	switch len(k.b) {
	case 16, 24, 32:
		return true
	}
	return false
}

// Zero overwrites b with zeros.
func Zero(b []byte) {
	clear(b)
}
