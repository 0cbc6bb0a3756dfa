package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, empty owner id or unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCryptoConfigs indicates an unknown key encoding or a
	// passphrase key without a KDF salt.
	ErrInvalidCryptoConfigs = errors.New("invalid crypto configuration")
	// ErrInvalidGeneratorConfigs indicates inconsistent generator bounds
	// (for example, min length above max length).
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
