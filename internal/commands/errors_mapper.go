// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package commands

import (
	"errors"

	"github.com/MKhiriev/pass-vault/internal/app"
	"github.com/MKhiriev/pass-vault/internal/clipboard"
	"github.com/MKhiriev/pass-vault/internal/config"
	"github.com/MKhiriev/pass-vault/internal/crypto"
	"github.com/MKhiriev/pass-vault/internal/generator"
	"github.com/MKhiriev/pass-vault/internal/service"
	"github.com/MKhiriev/pass-vault/internal/store"
)

// humanizeError translates a service or storage error into the message shown
// to the user
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, crypto.ErrDecryption):
		return app.MsgDecryptionFailed
	case errors.Is(err, store.ErrVaultItemNotFound):
		return app.MsgItemNotFound
	case errors.Is(err, service.ErrNoOwner):
		return app.MsgNoOwner
	case errors.Is(err, clipboard.ErrUnsupported):
		return app.MsgClipboardUnavailable

	case errors.Is(err, crypto.ErrInvalidKey):
		return withDetail(app.MsgInvalidKey, err)
	case errors.Is(err, crypto.ErrEncryption):
		return withDetail(app.MsgEncryptionFailed, err)
	case errors.Is(err, generator.ErrPolicy):
		return withDetail(app.MsgInvalidPolicy, err)
	case errors.Is(err, service.ErrLengthOutOfRange):
		return withDetail(app.MsgLengthOutOfRange, err)

	case errors.Is(err, config.ErrInvalidAppConfigs),
		errors.Is(err, config.ErrInvalidCryptoConfigs),
		errors.Is(err, config.ErrInvalidGeneratorConfigs),
		errors.Is(err, config.ErrInvalidStorageConfigs):
		return withDetail(app.MsgInvalidConfig, err)

	case errors.Is(err, store.ErrUnsupportedDriver),
		errors.Is(err, store.ErrExecutingQuery),
		errors.Is(err, store.ErrExecutingStatement),
		errors.Is(err, store.ErrScanningRow),
		errors.Is(err, store.ErrScanningRows):
		return withDetail(app.MsgStorageUnavailable, err)
	}

	return err.Error()
}

func withDetail(msg string, err error) string {
	return msg + " (" + err.Error() + ")"
}
