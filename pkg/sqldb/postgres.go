package sqldb

import (
	"fmt"
	"strings"

	_ "github.com/lib/pq"
)

type postgresDialect struct{}

func (postgresDialect) Name() string       { return DriverPostgres }
func (postgresDialect) DriverName() string { return "postgres" }

func (postgresDialect) UpsertSQL(table string, columns []string, conflictColumn string, updateColumns []string) string {
	updates := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		updates[i] = fmt.Sprintf("%s = EXCLUDED.%s", col, col)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		table,
		strings.Join(columns, ", "),
		namedPlaceholders(columns),
		conflictColumn,
		strings.Join(updates, ", "),
	)
}

func (postgresDialect) CreateTableSQL(schema string) string {
	return strings.ReplaceAll(schema, portableAutoIncrement, "BIGSERIAL PRIMARY KEY")
}

// ConnectDSN accepts both URL and keyword/value DSNs; lib/pq sends unknown
// keys such as timezone as run-time parameters.
func (postgresDialect) ConnectDSN(dsn string) (string, error) {
	if strings.Contains(dsn, "://") {
		return withQueryDefaults(dsn, map[string]string{"timezone": "UTC"})
	}
	if strings.Contains(dsn, "timezone=") {
		return dsn, nil
	}
	return strings.TrimSpace(dsn + " timezone=UTC"), nil
}

func (postgresDialect) SupportsReturning() bool { return true }

func (postgresDialect) SyncSequenceSQL(table, column string) string {
	return fmt.Sprintf(
		"SELECT setval(pg_get_serial_sequence('%s', '%s'), GREATEST(COALESCE(MAX(%s), 0), 1), MAX(%s) IS NOT NULL) FROM %s",
		table, column, column, column, table,
	)
}
