package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when the id matches no booking.
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("appointments service: internal error")
)
