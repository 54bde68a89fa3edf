package clients

import "errors"

var (
	// ErrClientNotFound is returned when no client matches the lookup. For a
	// phone lookup during booking this is a normal, expected outcome.
	ErrClientNotFound = errors.New("clients.repository: client not found")

	// ErrDuplicatePhone is returned when an insert loses the race against a
	// concurrent insert of the same phone. Callers re-run the phone lookup.
	ErrDuplicatePhone = errors.New("clients.repository: phone already registered")

	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("clients.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("clients.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("clients.repository: failed to scan row")
)
