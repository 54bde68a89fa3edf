package professionals

import "errors"

var (
	// ErrProfessionalNotFound is returned when no professional matches the id.
	ErrProfessionalNotFound = errors.New("professionals.repository: professional not found")

	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("professionals.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("professionals.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("professionals.repository: failed to scan row")
)
