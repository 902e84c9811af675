package booking

import "github.com/LeesureYatchs/Leisure-Yatchs/pkg/dbmetrics"

// Database executor interfaces shared with dbmetrics. Both *sql.DB and
// the instrumented wrapper satisfy them.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
