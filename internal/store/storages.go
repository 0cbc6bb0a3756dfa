package store

import "github.com/MKhiriev/pass-vault/internal/logger"

// Storages groups the repositories built on one database connection.
type Storages struct {
	VaultItemRepository VaultItemRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		VaultItemRepository: NewVaultItemRepository(db, logger),
	}
}
