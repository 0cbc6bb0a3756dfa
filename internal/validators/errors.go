package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyID          = errors.New("item id is required")
	ErrEmptyOwnerID     = errors.New("owner id is required")
	ErrEmptyTitle       = errors.New("title is required")
	ErrEmptyPassword    = errors.New("password is required")
	ErrFieldTooLong     = errors.New("field is too long")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)
