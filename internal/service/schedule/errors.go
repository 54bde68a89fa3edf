package schedule

import "errors"

var (
	// ErrInvalidDate is returned when the date key is not YYYY-MM-DD.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidTime is returned when any entry in a slot list fails the
	// 24h HH:MM check. The whole save is rejected; nothing is persisted.
	ErrInvalidTime = errors.New("invalid time slot")

	// ErrInternal is returned on storage failures.
	ErrInternal = errors.New("schedule service: internal error")
)
