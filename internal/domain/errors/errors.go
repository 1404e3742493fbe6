package errors

import "errors"

var (
	ErrAlreadyExists         = errors.New("already exists")
	ErrNotFound              = errors.New("not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidTapType        = errors.New("invalid tap type")
	ErrInvalidCardholderType = errors.New("invalid cardholder type")
	ErrNegativeBalance       = errors.New("negative balance")
)
