package dialect

import (
	"fmt"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	byDriver   = map[string]func() Dialect{
		"azuresql":         NewSQLServerDialect,
		"sqlserver":        NewSQLServerDialect,
		"mssql":            NewSQLServerDialect,
		"godror":           NewOracleDialect,
		"goracle":          NewOracleDialect,
		"oci8":             NewOracleDialect,
		"oracle":           NewOracleDialect,
		"cloudsqlpostgres": NewPostgresDialect,
		"cockroach":        NewPostgresDialect,
		"nrpostgres":       NewPostgresDialect,
		"pgx":              NewPostgresDialect,
		"postgres":         NewPostgresDialect,
		"postgresql":       NewPostgresDialect,
		"mysql":            NewMySQLDialect,
		"nrmysql":          NewMySQLDialect,
		"mariadb":          NewMySQLDialect,
		"tidb":             NewTiDBDialect,
		"sqlite":           NewSQLiteDialect,
		"sqlite3":          NewSQLiteDialect,
		"nrsqlite3":        NewSQLiteDialect,
	}
)

// Register makes a dialect available under a driver name, replacing any
// existing registration.
func Register(driverName string, factory func() Dialect) {
	registryMu.Lock()
	defer registryMu.Unlock()
	byDriver[strings.ToLower(driverName)] = factory
}

// ForDriver returns the dialect registered for driverName.
func ForDriver(driverName string) (Dialect, error) {
	registryMu.RLock()
	factory, ok := byDriver[strings.ToLower(driverName)]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDriver, driverName)
	}
	return factory(), nil
}
