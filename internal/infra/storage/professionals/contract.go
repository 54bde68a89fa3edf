package professionals

import "github.com/igextreme/agenda-service/pkg/dbmetrics"

// DBExecutor is re-exported from dbmetrics so callers can hand in either a
// raw *sql.DB or the metrics-wrapped handle.
type DBExecutor = dbmetrics.DBExecutor
