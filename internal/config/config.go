// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// Supported encodings of [Crypto.EncryptionKey].
const (
	// KeyEncodingBase64 expects standard Base64 of a 16, 24 or 32 byte key.
	KeyEncodingBase64 = "base64"
	// KeyEncodingHex expects hex of a 16, 24 or 32 byte key.
	KeyEncodingHex = "hex"
	// KeyEncodingPassphrase derives a 32 byte key from the value with
	// Argon2id and [Crypto.KDFSalt].
	KeyEncodingPassphrase = "passphrase"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "pgx"
)

// StructuredConfig is the top-level configuration container of the vault.
// It aggregates all sub-configurations and is populated by merging values
// from defaults, environment variables, command-line flags, and an optional
// JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: the vault owner, log level and version.
	App App `envPrefix:"APP_"`

	// Crypto holds the static encryption secret and how to turn it into a key.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Generator holds password generator bounds and clipboard behaviour.
	Generator Generator `envPrefix:"GENERATOR_"`

	// Storage holds the vault item database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the VAULT_CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// OwnerID scopes every vault item. A single-tenant vault uses one fixed
	// owner.
	// Env: VAULT_APP_OWNER_ID
	OwnerID string `env:"OWNER_ID"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: VAULT_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is the semantic version string of the running binary.
	// Env: VAULT_APP_VERSION
	Version string `env:"VERSION"`
}

// Crypto holds the deployment secret the encryption key is built from.
type Crypto struct {
	// EncryptionKey is the secret value. Must be kept confidential and is
	// never logged.
	// Env: VAULT_CRYPTO_ENCRYPTION_KEY
	EncryptionKey string `env:"ENCRYPTION_KEY"`

	// KeyEncoding tells how to read EncryptionKey: base64, hex or passphrase.
	// Env: VAULT_CRYPTO_KEY_ENCODING
	KeyEncoding string `env:"KEY_ENCODING"`

	// KDFSalt is the Base64 salt used when KeyEncoding is passphrase.
	// Env: VAULT_CRYPTO_KDF_SALT
	KDFSalt string `env:"KDF_SALT"`
}

// Generator holds password generator settings.
type Generator struct {
	// DefaultLength is used when the caller does not ask for a length.
	// Env: VAULT_GENERATOR_DEFAULT_LENGTH
	DefaultLength int `env:"DEFAULT_LENGTH"`

	// MinLength and MaxLength bound the accepted length.
	// Env: VAULT_GENERATOR_MIN_LENGTH, VAULT_GENERATOR_MAX_LENGTH
	MinLength int `env:"MIN_LENGTH"`
	MaxLength int `env:"MAX_LENGTH"`

	// ClipboardTTL is how long a copied password stays on the clipboard.
	// Env: VAULT_GENERATOR_CLIPBOARD_TTL
	ClipboardTTL time.Duration `env:"CLIPBOARD_TTL"`

	// BatchLimit caps concurrent generations in a batch.
	// Env: VAULT_GENERATOR_BATCH_LIMIT
	BatchLimit int `env:"BATCH_LIMIT"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the vault item database.
type DB struct {
	// Driver is the database/sql driver name: sqlite3 or pgx.
	// Env: VAULT_STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the data source name: a file path for sqlite3, a
	// postgres:// URL for pgx.
	// Env: VAULT_STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Defaults returns the built-in configuration: passwords of 16 characters
// within 8..128, clipboard cleared after 15 seconds, a local SQLite file.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			OwnerID:  "local",
			LogLevel: "info",
		},
		Crypto: Crypto{
			KeyEncoding: KeyEncodingBase64,
		},
		Generator: Generator{
			DefaultLength: 16,
			MinLength:     8,
			MaxLength:     128,
			ClipboardTTL:  15 * time.Second,
			BatchLimit:    4,
		},
		Storage: Storage{
			DB: DB{
				Driver: DriverSQLite,
				DSN:    "vault.db",
			},
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  0. Defaults
//  1. Environment variables
//  2. Command-line flags (skipped when fs is nil)
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
