package sqldb

import (
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

type sqliteDialect struct{}

func (sqliteDialect) Name() string       { return DriverSQLite }
func (sqliteDialect) DriverName() string { return "sqlite3" }

// UpsertSQL uses ON CONFLICT (SQLite 3.24+) rather than INSERT OR REPLACE,
// which would delete and re-insert the row.
func (sqliteDialect) UpsertSQL(table string, columns []string, conflictColumn string, updateColumns []string) string {
	updates := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		updates[i] = fmt.Sprintf("%s = excluded.%s", col, col)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(%s) DO UPDATE SET %s",
		table,
		strings.Join(columns, ", "),
		namedPlaceholders(columns),
		conflictColumn,
		strings.Join(updates, ", "),
	)
}

func (sqliteDialect) CreateTableSQL(schema string) string {
	return schema
}

// ConnectDSN uses go-sqlite3's underscore parameters, which the driver
// applies as PRAGMAs on every connection it opens.
func (sqliteDialect) ConnectDSN(dsn string) (string, error) {
	return withQueryDefaults(dsn, map[string]string{
		"_journal_mode": "WAL",
		"_busy_timeout": "30000",
		"_synchronous":  "NORMAL",
	})
}

func (sqliteDialect) SupportsReturning() bool { return true }

// AUTOINCREMENT tables track the largest id ever inserted in sqlite_sequence.
func (sqliteDialect) SyncSequenceSQL(table, column string) string { return "" }
