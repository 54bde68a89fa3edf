package get_available_slots

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
