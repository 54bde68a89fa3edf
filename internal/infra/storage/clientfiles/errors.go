package clientfiles

import "errors"

var (
	ErrBuildQuery = errors.New("clientfiles.repository: failed to build query")
	ErrExecQuery  = errors.New("clientfiles.repository: failed to execute query")
	ErrScanRow    = errors.New("clientfiles.repository: failed to scan row")
)
