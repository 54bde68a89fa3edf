package chatmessages

import "errors"

var (
	// ErrBuildQuery is returned when an SQL query cannot be built.
	ErrBuildQuery = errors.New("chatmessages.repository: failed to build query")

	// ErrExecQuery is returned when an SQL query fails to execute.
	ErrExecQuery = errors.New("chatmessages.repository: failed to execute query")

	// ErrScanRow is returned when a result row cannot be scanned.
	ErrScanRow = errors.New("chatmessages.repository: failed to scan row")
)
