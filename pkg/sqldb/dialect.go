package sqldb

// Dialect hides the SQL differences between the supported databases.
// Queries passed around the repositories use sqlx named parameters (:name),
// so placeholder styles are handled by sqlx.Rebind rather than here.
type Dialect interface {
	// Name returns the dialect name ("postgres", "mysql", "sqlite").
	Name() string

	// DriverName returns the database/sql driver to open.
	DriverName() string

	// UpsertSQL returns an INSERT that updates updateColumns when a row
	// with the same conflictColumn already exists.
	UpsertSQL(table string, columns []string, conflictColumn string, updateColumns []string) string

	// CreateTableSQL converts a portable DDL statement to this dialect.
	// The portable form uses "INTEGER PRIMARY KEY AUTOINCREMENT" for the key.
	CreateTableSQL(schema string) string

	// ConnectDSN adds this dialect's session settings to dsn so that every
	// pooled connection starts with them. Settings already in dsn win.
	ConnectDSN(dsn string) (string, error)

	// SupportsReturning reports whether INSERT ... RETURNING is available.
	SupportsReturning() bool

	// SyncSequenceSQL returns a statement that moves the id generator of
	// table past the current maximum, or "" when the database does it itself.
	SyncSequenceSQL(table, column string) string
}

const portableAutoIncrement = "INTEGER PRIMARY KEY AUTOINCREMENT"

// NewDialect returns the dialect for name.
func NewDialect(name string) (Dialect, error) {
	switch name {
	case DriverPostgres, "postgresql":
		return postgresDialect{}, nil
	case DriverMySQL:
		return mysqlDialect{}, nil
	case DriverSQLite, "sqlite3":
		return sqliteDialect{}, nil
	default:
		return nil, ErrUnsupportedDriver
	}
}
