package settings

import "errors"

var (
	// ErrInvalidInput is returned when a config fails validation.
	ErrInvalidInput = errors.New("invalid settings data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("settings service: internal error")
)
