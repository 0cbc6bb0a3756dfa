package service

import (
	"context"

	"github.com/MKhiriev/pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService manages the credentials of the owner found in the context
// (see utils.WithOwnerID). Passwords are encrypted before they reach the
// store and decrypted only by RevealItem.
type VaultService interface {
	AddItem(ctx context.Context, item models.NewVaultItem) (models.VaultItem, error)

	// ListItems returns the owner's items, newest first. search filters by
	// title, username and url, ignoring case.
	ListItems(ctx context.Context, search string) ([]models.VaultItem, error)

	RevealItem(ctx context.Context, id string) (models.DecipheredVaultItem, error)

	// UpdateItem applies the non-nil fields of update. A new password is
	// encrypted with a fresh IV.
	UpdateItem(ctx context.Context, id string, update models.VaultItemUpdate) (models.VaultItem, error)

	DeleteItem(ctx context.Context, id string) error
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// logging or validating.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}

// GeneratorService produces passwords within the configured length range.
type GeneratorService interface {
	Generate(ctx context.Context, policy models.PasswordPolicy) (string, error)

	// GenerateBatch returns n independent passwords for the same policy.
	GenerateBatch(ctx context.Context, policy models.PasswordPolicy, n int) ([]string, error)

	// DefaultPolicy is the policy offered when the user picks nothing.
	DefaultPolicy() models.PasswordPolicy
}

// CryptoService seals and opens single secrets with the configured key.
type CryptoService interface {
	Encrypt(ctx context.Context, plaintext string) (models.CipherBlob, error)
	Decrypt(ctx context.Context, blob models.CipherBlob) (string, error)
}
