package sqldb

import (
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

type mysqlDialect struct{}

func (mysqlDialect) Name() string       { return DriverMySQL }
func (mysqlDialect) DriverName() string { return "mysql" }

func (mysqlDialect) UpsertSQL(table string, columns []string, conflictColumn string, updateColumns []string) string {
	updates := make([]string, len(updateColumns))
	for i, col := range updateColumns {
		updates[i] = fmt.Sprintf("%s = VALUES(%s)", col, col)
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON DUPLICATE KEY UPDATE %s",
		table,
		strings.Join(columns, ", "),
		namedPlaceholders(columns),
		strings.Join(updates, ", "),
	)
}

func (mysqlDialect) CreateTableSQL(schema string) string {
	return strings.ReplaceAll(schema, portableAutoIncrement, "BIGINT PRIMARY KEY AUTO_INCREMENT")
}

// ConnectDSN sets the session time_zone; the driver runs every entry of
// Params as a SET on each new connection.
func (mysqlDialect) ConnectDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse mysql dsn: %w", err)
	}
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	if _, ok := cfg.Params["time_zone"]; !ok {
		cfg.Params["time_zone"] = "'+00:00'"
	}
	return cfg.FormatDSN(), nil
}

func (mysqlDialect) SupportsReturning() bool { return false }

// AUTO_INCREMENT already moves past explicitly inserted ids.
func (mysqlDialect) SyncSequenceSQL(table, column string) string { return "" }
