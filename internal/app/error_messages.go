// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the vault
// command line.
//
// All Msg* constants are human-readable message strings shown to the user
// when an operation fails. Keeping them in one place ensures consistent
// wording across commands.
package app

const (
	// MsgInvalidDataProvided is shown when an item fails validation (e.g.
	// missing title or password).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgItemNotFound is shown when no item with the given id belongs to the
	// current owner.
	MsgItemNotFound = "no vault item with this id"

	// MsgDecryptionFailed is shown for every decryption failure. It does not
	// say whether the key or the data was wrong.
	MsgDecryptionFailed = "cannot decrypt: wrong key or damaged data"

	// MsgEncryptionFailed is shown when a secret cannot be sealed.
	MsgEncryptionFailed = "cannot encrypt the secret"

	// MsgInvalidKey is shown when the encryption key is missing or malformed.
	MsgInvalidKey = "encryption key is missing or invalid, create one with `vault keygen`"

	// MsgInvalidPolicy is shown when no character type is selected or the
	// length is shorter than the number of selected types.
	MsgInvalidPolicy = "password policy cannot be satisfied"

	// MsgLengthOutOfRange is shown when the requested length is outside the
	// configured bounds.
	MsgLengthOutOfRange = "password length is out of the allowed range"

	// MsgClipboardUnavailable is shown when the system has no clipboard the
	// process can reach.
	MsgClipboardUnavailable = "clipboard is not available on this system"

	// MsgInvalidConfig is shown when environment, flags or the JSON file
	// hold an unusable configuration.
	MsgInvalidConfig = "invalid configuration"

	// MsgStorageUnavailable is shown when the vault database cannot be
	// opened or queried.
	MsgStorageUnavailable = "vault database is unavailable"

	// MsgNoOwner is shown when no vault owner is configured.
	MsgNoOwner = "no vault owner configured"
)
