package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/pass-vault/internal/validators"
	"github.com/MKhiriev/pass-vault/models"
)

// VaultValidationService checks requests against the model rules before
// handing them to the wrapped VaultService. Every rejection matches
// ErrInvalidDataProvided and the validators sentinel that caused it.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultItemValidator(),
	}
}

func (v *VaultValidationService) AddItem(ctx context.Context, item models.NewVaultItem) (models.VaultItem, error) {
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.AddItem(ctx, item)
}

func (v *VaultValidationService) ListItems(ctx context.Context, search string) ([]models.VaultItem, error) {
	return v.inner.ListItems(ctx, search)
}

func (v *VaultValidationService) RevealItem(ctx context.Context, id string) (models.DecipheredVaultItem, error) {
	if err := validateID(id); err != nil {
		return models.DecipheredVaultItem{}, err
	}

	return v.inner.RevealItem(ctx, id)
}

func (v *VaultValidationService) UpdateItem(ctx context.Context, id string, update models.VaultItemUpdate) (models.VaultItem, error) {
	if err := validateID(id); err != nil {
		return models.VaultItem{}, err
	}
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UpdateItem(ctx, id, update)
}

func (v *VaultValidationService) DeleteItem(ctx context.Context, id string) error {
	if err := validateID(id); err != nil {
		return err
	}

	return v.inner.DeleteItem(ctx, id)
}

func (v *VaultValidationService) Wrap(wrapper VaultService) VaultService {
	v.inner = wrapper
	return v
}

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrEmptyID)
	}
	return nil
}
