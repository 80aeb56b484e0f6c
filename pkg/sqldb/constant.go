package sqldb

import "errors"

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
	DriverSQLite   = "sqlite"
)

var (
	ErrUnsupportedDriver = errors.New("unsupported database driver")
	ErrEmptyDSN          = errors.New("database dsn is required")
)
