package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pass-vault/internal/crypto"
	"github.com/MKhiriev/pass-vault/internal/logger"
	"github.com/MKhiriev/pass-vault/models"
)

type cryptoService struct {
	cipher crypto.CipherEngine
	keys   crypto.KeyProvider

	logger *logger.Logger
}

func NewCryptoService(cipher crypto.CipherEngine, keys crypto.KeyProvider, logger *logger.Logger) CryptoService {
	return &cryptoService{
		cipher: cipher,
		keys:   keys,
		logger: logger,
	}
}

func (c *cryptoService) Encrypt(ctx context.Context, plaintext string) (models.CipherBlob, error) {
	key, err := c.keys.Key()
	if err != nil {
		return "", fmt.Errorf("load encryption key: %w", err)
	}

	blob, err := c.cipher.Encrypt(plaintext, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cryptoService.Encrypt").Msg("encryption failed")
		return "", err
	}

	return blob, nil
}

func (c *cryptoService) Decrypt(ctx context.Context, blob models.CipherBlob) (string, error) {
	key, err := c.keys.Key()
	if err != nil {
		return "", fmt.Errorf("load encryption key: %w", err)
	}

	plaintext, err := c.cipher.Decrypt(blob, key)
	if err != nil {
		logger.FromContext(ctx).Debug().
			Str("func", "cryptoService.Decrypt").
			Int("blob_length", len(blob)).
			Msg("decryption failed")
		return "", err
	}

	return plaintext, nil
}
