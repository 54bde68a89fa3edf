package availability

import "errors"

var (
	// ErrNotFound is returned when no slot set is saved for the key. Callers
	// treat this as "no availability", not as a failure.
	ErrNotFound = errors.New("availability.repository: no slots saved for this professional and date")

	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
