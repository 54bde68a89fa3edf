package appointments

import "errors"

var (
	// ErrAppointmentNotFound is returned when no appointment matches the id.
	ErrAppointmentNotFound = errors.New("appointments.repository: appointment not found")

	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("appointments.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("appointments.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("appointments.repository: failed to scan row")
)
