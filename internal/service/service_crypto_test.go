package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pass-vault/internal/config"
	"github.com/MKhiriev/pass-vault/internal/crypto"
	"github.com/MKhiriev/pass-vault/internal/logger"
	"github.com/MKhiriev/pass-vault/internal/mock"
	"github.com/MKhiriev/pass-vault/internal/service"
	"github.com/MKhiriev/pass-vault/internal/store"
	"github.com/MKhiriev/pass-vault/models"
)

func TestCryptoService_RoundTrip(t *testing.T) {
	svc := service.NewCryptoService(crypto.NewCipherEngine(), crypto.NewStaticKeyProvider(testKey(t)), logger.Nop())
	ctx := context.Background()

	blob, err := svc.Encrypt(ctx, "hunter2")
	require.NoError(t, err)

	plaintext, err := svc.Decrypt(ctx, blob)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plaintext)
}

func TestCryptoService_DecryptGarbage(t *testing.T) {
	svc := service.NewCryptoService(crypto.NewCipherEngine(), crypto.NewStaticKeyProvider(testKey(t)), logger.Nop())

	_, err := svc.Decrypt(context.Background(), models.CipherBlob("not a blob"))
	assert.Same(t, crypto.ErrDecryption, err)
}

func TestCryptoService_KeyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	keys := mock.NewMockKeyProvider(ctrl)
	svc := service.NewCryptoService(mock.NewMockCipherEngine(ctrl), keys, logger.Nop())
	ctx := context.Background()

	keys.EXPECT().Key().Return(crypto.Key{}, crypto.ErrInvalidKey).Times(2)

	_, err := svc.Encrypt(ctx, "x")
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)

	_, err = svc.Decrypt(ctx, "blob")
	assert.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestNewServices(t *testing.T) {
	keys := crypto.NewStaticKeyProvider(testKey(t))
	cfg := config.StructuredConfig{Generator: testGeneratorConfig}

	generatorOnly := service.NewServices(nil, keys, cfg, logger.Nop())
	assert.Nil(t, generatorOnly.VaultService)
	assert.NotNil(t, generatorOnly.GeneratorService)
	assert.NotNil(t, generatorOnly.CryptoService)

	ctrl := gomock.NewController(t)
	storages := &store.Storages{VaultItemRepository: mock.NewMockVaultItemRepository(ctrl)}

	full := service.NewServices(storages, keys, cfg, logger.Nop())
	assert.IsType(t, &service.VaultValidationService{}, full.VaultService)
}
