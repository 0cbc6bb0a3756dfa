package service

import (
	"github.com/MKhiriev/pass-vault/internal/config"
	"github.com/MKhiriev/pass-vault/internal/crypto"
	"github.com/MKhiriev/pass-vault/internal/generator"
	"github.com/MKhiriev/pass-vault/internal/logger"
	"github.com/MKhiriev/pass-vault/internal/store"
	"github.com/MKhiriev/pass-vault/internal/utils"
)

type Services struct {
	VaultService     VaultService
	GeneratorService GeneratorService
	CryptoService    CryptoService
}

// NewServices wires the services over one key provider. storages may be nil
// when only generation and stand-alone encryption are needed; VaultService
// is then nil too.
func NewServices(storages *store.Storages, keys crypto.KeyProvider, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	engine := crypto.NewCipherEngine()

	services := &Services{
		GeneratorService: NewGeneratorService(generator.New(), cfg.Generator, logger),
		CryptoService:    NewCryptoService(engine, keys, logger),
	}

	if storages != nil {
		vault := NewVaultService(storages.VaultItemRepository, engine, keys, utils.NewUUIDGenerator(), logger)
		services.VaultService = NewVaultValidationService().Wrap(vault)
	}

	return services
}
