package professionals

import "errors"

var (
	// ErrProfessionalNotFound is returned when the id matches no record.
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInvalidInput is returned when required fields are missing.
	ErrInvalidInput = errors.New("invalid professional data")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("professionals service: internal error")
)
