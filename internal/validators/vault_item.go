package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/MKhiriev/pass-vault/models"
	"github.com/go-playground/validator/v10"
)

// Field names accepted by [VaultItemValidator.Validate]. They match the JSON
// names of the model fields.
const (
	FieldID                = "id"
	FieldOwnerID           = "ownerId"
	FieldTitle             = "title"
	FieldUsername          = "username"
	FieldPassword          = "password"
	FieldEncryptedPassword = "encryptedPassword"
	FieldURL               = "url"
	FieldNotes             = "notes"
)

var knownFields = []string{
	FieldID, FieldOwnerID, FieldTitle, FieldUsername,
	FieldPassword, FieldEncryptedPassword, FieldURL, FieldNotes,
}

// VaultItemValidator validates models.NewVaultItem, models.VaultItemUpdate and
// models.VaultItem, by value or by pointer.
type VaultItemValidator struct {
	validate *validator.Validate
}

// NewVaultItemValidator constructs a VaultItemValidator and returns it as the
// Validator interface.
func NewVaultItemValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report json names so field errors line up with the Field* constants
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// the error is impossible: the tag name is valid and the func non-nil
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &VaultItemValidator{validate: validate}
}

// Validate checks obj against its struct tags. When fields are given, only
// failures of those fields are reported. An update that changes nothing is
// rejected with ErrNoFieldsToUpdate.
func (v *VaultItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	for _, f := range fields {
		if !slices.Contains(knownFields, f) {
			return fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
	}

	switch value := obj.(type) {
	case models.NewVaultItem, models.VaultItem:
		return v.validateStruct(ctx, value, fields)
	case *models.NewVaultItem:
		if value == nil {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, obj)
		}
		return v.validateStruct(ctx, *value, fields)
	case *models.VaultItem:
		if value == nil {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, obj)
		}
		return v.validateStruct(ctx, *value, fields)
	case models.VaultItemUpdate:
		return v.validateUpdate(ctx, value, fields)
	case *models.VaultItemUpdate:
		if value == nil {
			return fmt.Errorf("%w: nil %T", ErrUnsupportedType, obj)
		}
		return v.validateUpdate(ctx, *value, fields)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *VaultItemValidator) validateUpdate(ctx context.Context, update models.VaultItemUpdate, fields []string) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	return v.validateStruct(ctx, update, fields)
}

func (v *VaultItemValidator) validateStruct(ctx context.Context, obj any, fields []string) error {
	err := v.validate.StructCtx(ctx, obj)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validating %T: %w", obj, err)
	}

	var errs []error
	for _, fe := range fieldErrs {
		if len(fields) > 0 && !slices.Contains(fields, fe.Field()) {
			continue
		}
		errs = append(errs, translate(fe))
	}

	return errors.Join(errs...)
}

// translate maps a tag failure onto the sentinel a caller can match.
func translate(fe validator.FieldError) error {
	if fe.Tag() == "max" {
		return fmt.Errorf("%w: %s exceeds %s characters", ErrFieldTooLong, fe.Field(), fe.Param())
	}

	switch fe.Field() {
	case FieldID:
		return ErrEmptyID
	case FieldOwnerID:
		return ErrEmptyOwnerID
	case FieldTitle:
		return ErrEmptyTitle
	case FieldPassword, FieldEncryptedPassword:
		return ErrEmptyPassword
	}

	return fmt.Errorf("%s failed %q validation", fe.Field(), fe.Tag())
}
