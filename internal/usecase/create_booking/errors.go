package create_booking

import "errors"

var (
	// ErrInvalidInput is returned when the request fails validation.
	ErrInvalidInput = errors.New("invalid input data")

	// ErrClientCreatedBookingFailed is returned when the client record was
	// written but the appointment insert failed. There is no compensation:
	// the client stays, and the caller must know the booking did not happen.
	ErrClientCreatedBookingFailed = errors.New("client created but appointment creation failed")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("create_booking: internal error")
)
