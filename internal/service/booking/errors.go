package booking

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid booking status")
	ErrCreateFailed  = errors.New("failed to create booking")
	ErrUpdateFailed  = errors.New("failed to update booking")
	ErrNotFound      = errors.New("booking not found")
	ErrInvalidInput  = errors.New("invalid booking input")
)
