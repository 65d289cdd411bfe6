package booking

import "github.com/avelis/ARB-BookingService/pkg/dbmetrics"

// Reuse the dbmetrics executor interfaces so the repository runs unchanged
// against *sql.DB, the instrumented wrapper, or an open transaction.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
