package booking

import "errors"

var (
	// ErrInvalidTransition is returned when an action does not belong to
	// the flow's current step.
	ErrInvalidTransition = errors.New("booking flow: action not allowed in current step")

	// ErrProfessionalRequired is returned when advancing without a chosen
	// professional.
	ErrProfessionalRequired = errors.New("booking flow: professional not selected")

	// ErrSlotRequired is returned when advancing without both a date and a
	// time.
	ErrSlotRequired = errors.New("booking flow: date and time not selected")

	// ErrTimeNotOffered is returned when the chosen time is not among the
	// slots offered for the chosen date.
	ErrTimeNotOffered = errors.New("booking flow: time not among offered slots")

	// ErrContactRequired is returned when advancing without a name and phone.
	ErrContactRequired = errors.New("booking flow: name and phone required")

	// ErrSessionNotFound is returned for unknown or expired session tokens.
	ErrSessionNotFound = errors.New("booking session not found")
)
