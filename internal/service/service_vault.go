// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/pass-vault/internal/crypto"
	"github.com/MKhiriev/pass-vault/internal/logger"
	"github.com/MKhiriev/pass-vault/internal/store"
	"github.com/MKhiriev/pass-vault/internal/utils"
	"github.com/MKhiriev/pass-vault/models"
)

type vaultService struct {
	vaultItemRepository store.VaultItemRepository
	cipher              crypto.CipherEngine
	keys                crypto.KeyProvider
	ids                 utils.IDGenerator

	logger *logger.Logger
}

// NewVaultService constructs the core VaultService. It trusts its input
// beyond the checks it needs for its own invariants; wrap it with
// NewVaultValidationService for field-level validation.
func NewVaultService(
	vaultItemRepository store.VaultItemRepository,
	cipher crypto.CipherEngine,
	keys crypto.KeyProvider,
	ids utils.IDGenerator,
	logger *logger.Logger,
) VaultService {
	return &vaultService{
		vaultItemRepository: vaultItemRepository,
		cipher:              cipher,
		keys:                keys,
		ids:                 ids,
		logger:              logger,
	}
}

func (v *vaultService) AddItem(ctx context.Context, newItem models.NewVaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return models.VaultItem{}, ErrNoOwner
	}

	title := strings.TrimSpace(newItem.Title)
	if title == "" || newItem.Password == "" {
		return models.VaultItem{}, ErrInvalidDataProvided
	}

	blob, err := v.encrypt(newItem.Password)
	if err != nil {
		log.Err(err).Str("func", "vaultService.AddItem").Msg("failed to encrypt password")
		return models.VaultItem{}, fmt.Errorf("encrypt password for add: %w", err)
	}

	now := timestamp()
	item := models.VaultItem{
		ID:                v.ids.Generate(),
		OwnerID:           ownerID,
		Title:             title,
		Username:          newItem.Username,
		EncryptedPassword: blob,
		URL:               newItem.URL,
		Notes:             newItem.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err = v.vaultItemRepository.CreateItem(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("save vault item: %w", err)
	}

	log.Info().
		Str("func", "vaultService.AddItem").
		Str("owner_id", ownerID).
		Str("item_id", item.ID).
		Msg("vault item added")

	return item, nil
}

func (v *vaultService) ListItems(ctx context.Context, search string) ([]models.VaultItem, error) {
	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return nil, ErrNoOwner
	}

	items, err := v.vaultItemRepository.ListItems(ctx, ownerID, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("list vault items: %w", err)
	}

	return items, nil
}

func (v *vaultService) RevealItem(ctx context.Context, id string) (models.DecipheredVaultItem, error) {
	log := logger.FromContext(ctx)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return models.DecipheredVaultItem{}, ErrNoOwner
	}

	item, err := v.vaultItemRepository.GetItem(ctx, ownerID, id)
	if err != nil {
		return models.DecipheredVaultItem{}, fmt.Errorf("get vault item: %w", err)
	}

	key, err := v.keys.Key()
	if err != nil {
		return models.DecipheredVaultItem{}, fmt.Errorf("load encryption key: %w", err)
	}

	password, err := v.cipher.Decrypt(item.EncryptedPassword, key)
	if err != nil {
		log.Warn().
			Str("func", "vaultService.RevealItem").
			Str("owner_id", ownerID).
			Str("item_id", id).
			Msg("stored password could not be decrypted")
		// returned bare so a wrong key and a damaged blob look the same
		return models.DecipheredVaultItem{}, err
	}

	return models.DecipheredVaultItem{VaultItem: item, Password: password}, nil
}

func (v *vaultService) UpdateItem(ctx context.Context, id string, update models.VaultItemUpdate) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return models.VaultItem{}, ErrNoOwner
	}

	if update.IsEmpty() {
		return models.VaultItem{}, ErrInvalidDataProvided
	}
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return models.VaultItem{}, ErrInvalidDataProvided
	}
	if update.Password != nil && *update.Password == "" {
		return models.VaultItem{}, ErrInvalidDataProvided
	}

	item, err := v.vaultItemRepository.GetItem(ctx, ownerID, id)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("get vault item for update: %w", err)
	}

	if update.Title != nil {
		item.Title = strings.TrimSpace(*update.Title)
	}
	if update.Username != nil {
		item.Username = *update.Username
	}
	if update.URL != nil {
		item.URL = *update.URL
	}
	if update.Notes != nil {
		item.Notes = *update.Notes
	}
	if update.Password != nil {
		blob, err := v.encrypt(*update.Password)
		if err != nil {
			log.Err(err).Str("func", "vaultService.UpdateItem").Msg("failed to encrypt password")
			return models.VaultItem{}, fmt.Errorf("encrypt password for update: %w", err)
		}
		item.EncryptedPassword = blob
	}
	item.UpdatedAt = timestamp()

	if err = v.vaultItemRepository.UpdateItem(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("update vault item: %w", err)
	}

	log.Info().
		Str("func", "vaultService.UpdateItem").
		Str("owner_id", ownerID).
		Str("item_id", id).
		Bool("password_changed", update.Password != nil).
		Msg("vault item updated")

	return item, nil
}

func (v *vaultService) DeleteItem(ctx context.Context, id string) error {
	ownerID, ok := utils.GetOwnerIDFromContext(ctx)
	if !ok {
		return ErrNoOwner
	}

	if err := v.vaultItemRepository.DeleteItem(ctx, ownerID, id); err != nil {
		return fmt.Errorf("delete vault item: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("func", "vaultService.DeleteItem").
		Str("owner_id", ownerID).
		Str("item_id", id).
		Msg("vault item deleted")

	return nil
}

func (v *vaultService) encrypt(password string) (models.CipherBlob, error) {
	key, err := v.keys.Key()
	if err != nil {
		return "", fmt.Errorf("load encryption key: %w", err)
	}
	return v.cipher.Encrypt(password, key)
}

// timestamp is the current time at the precision both databases keep.
func timestamp() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
