package clients

import "errors"

var (
	// ErrClientNotFound is returned when the id matches no record.
	ErrClientNotFound = errors.New("client not found")

	// ErrInvalidInput is returned when required fields are missing or malformed.
	ErrInvalidInput = errors.New("invalid client data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("clients service: internal error")
)
