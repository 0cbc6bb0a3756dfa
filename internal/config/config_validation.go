// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup. Every failing group is reported;
// the result matches each group's sentinel via [errors.Is].
//
// The encryption key is not checked here: commands that never touch
// ciphertext (generate, keygen) must work without it.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.OwnerID == "" {
		errs = append(errs, fmt.Errorf("%w: owner id is empty", ErrInvalidAppConfigs))
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err))
	}

	switch cfg.Crypto.KeyEncoding {
	case KeyEncodingBase64, KeyEncodingHex:
	case KeyEncodingPassphrase:
		if cfg.Crypto.KDFSalt == "" {
			errs = append(errs, fmt.Errorf("%w: passphrase keys need a kdf salt", ErrInvalidCryptoConfigs))
		}
	default:
		errs = append(errs, fmt.Errorf("%w: unknown key encoding %q", ErrInvalidCryptoConfigs, cfg.Crypto.KeyEncoding))
	}

	g := cfg.Generator
	switch {
	case g.MinLength < 1 || g.MaxLength < g.MinLength:
		errs = append(errs, fmt.Errorf("%w: length bounds [%d, %d]", ErrInvalidGeneratorConfigs, g.MinLength, g.MaxLength))
	case g.DefaultLength < g.MinLength || g.DefaultLength > g.MaxLength:
		errs = append(errs, fmt.Errorf("%w: default length %d out of bounds", ErrInvalidGeneratorConfigs, g.DefaultLength))
	}
	if g.ClipboardTTL <= 0 || g.BatchLimit < 1 {
		errs = append(errs, fmt.Errorf("%w: clipboard ttl and batch limit must be positive", ErrInvalidGeneratorConfigs))
	}

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs))
	}
	if d := cfg.Storage.DB.Driver; d != DriverSQLite && d != DriverPostgres {
		errs = append(errs, fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, d))
	}

	return errors.Join(errs...)
}
