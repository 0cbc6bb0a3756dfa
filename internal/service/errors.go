package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrNoOwner             = errors.New("no vault owner in context")

	ErrLengthOutOfRange = errors.New("password length out of range")
	ErrInvalidBatchSize = errors.New("invalid batch size")
)
