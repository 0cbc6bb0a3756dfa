// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultItem is a single stored credential as the persistence layer sees it.
// The password is kept only in encrypted form; every other field is plain
// metadata that the owner can search over.
type VaultItem struct {
	// ID is a UUIDv7 assigned on creation.
	ID string `json:"id" validate:"required"`

	// OwnerID identifies the vault owner. Items are always scoped by it.
	OwnerID string `json:"ownerId" validate:"required"`

	// Title is the human label of the entry. Required.
	Title string `json:"title" validate:"notblank,max=256"`

	// Username is the login used with the stored password.
	Username string `json:"username" validate:"max=256"`

	// EncryptedPassword is the sealed secret. Required.
	EncryptedPassword CipherBlob `json:"encryptedPassword" validate:"required"`

	// URL is the site or service the credential belongs to.
	URL string `json:"url" validate:"max=2048"`

	// Notes is free-form text kept next to the credential.
	Notes string `json:"notes" validate:"max=4096"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// NewVaultItem carries the user input for a vault entry before its password
// is encrypted.
type NewVaultItem struct {
	Title    string `json:"title" validate:"notblank,max=256"`
	Username string `json:"username" validate:"max=256"`
	Password string `json:"password" validate:"required"`
	URL      string `json:"url" validate:"max=2048"`
	Notes    string `json:"notes" validate:"max=4096"`
}

// VaultItemUpdate is a partial update of an entry. Nil fields are left as
// they are. A non-nil Password is encrypted again with a fresh IV.
type VaultItemUpdate struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,notblank,max=256"`
	Username *string `json:"username,omitempty" validate:"omitempty,max=256"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=1"`
	URL      *string `json:"url,omitempty" validate:"omitempty,max=2048"`
	Notes    *string `json:"notes,omitempty" validate:"omitempty,max=4096"`
}

// IsEmpty reports whether the update would change nothing.
func (u VaultItemUpdate) IsEmpty() bool {
	return u.Title == nil && u.Username == nil && u.Password == nil && u.URL == nil && u.Notes == nil
}

// DecipheredVaultItem is a vault entry with its password in the clear. It
// lives only for as long as the caller needs to show or copy the secret.
type DecipheredVaultItem struct {
	VaultItem
	Password string `json:"password"`
}
