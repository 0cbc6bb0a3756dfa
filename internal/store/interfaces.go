package store

import (
	"context"

	"github.com/MKhiriev/pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// VaultItemRepository persists vault items. Every method is scoped to an
// owner; the repository never sees plaintext passwords.
type VaultItemRepository interface {
	// CreateItem inserts a fully populated item.
	CreateItem(ctx context.Context, item models.VaultItem) error

	// GetItem returns the owner's item with the given id, or
	// ErrVaultItemNotFound.
	GetItem(ctx context.Context, ownerID, id string) (models.VaultItem, error)

	// ListItems returns the owner's items, newest first. A non-empty search
	// keeps only items whose title, username or url contains it, ignoring
	// case.
	ListItems(ctx context.Context, ownerID, search string) ([]models.VaultItem, error)

	// UpdateItem overwrites the mutable fields of an existing item, or
	// returns ErrVaultItemNotFound.
	UpdateItem(ctx context.Context, item models.VaultItem) error

	// DeleteItem removes the owner's item, or returns ErrVaultItemNotFound.
	DeleteItem(ctx context.Context, ownerID, id string) error
}

// ErrorClassificator decides whether a failed database call is worth
// repeating.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
