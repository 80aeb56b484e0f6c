package sqlstore

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"task-tracker/internal/task/repository"
	pkgLog "task-tracker/pkg/log"
	"task-tracker/pkg/sqldb"
)

type implRepository struct {
	db      *sqlx.DB
	dialect sqldb.Dialect
	l       pkgLog.Logger
}

// New creates a SQL-backed Repository for the task domain.
func New(db *sqlx.DB, dialect sqldb.Dialect, l pkgLog.Logger) repository.Repository {
	if db == nil {
		panic("task/repository/sqlstore: db is required")
	}
	if dialect == nil {
		panic("task/repository/sqlstore: dialect is required")
	}
	return &implRepository{db: db, dialect: dialect, l: l}
}

// Migrate creates the tasks table if it does not exist yet.
func Migrate(ctx context.Context, db *sqlx.DB, dialect sqldb.Dialect) error {
	if _, err := db.ExecContext(ctx, dialect.CreateTableSQL(createTasksTable)); err != nil {
		return fmt.Errorf("%w: %v", repository.ErrFailedToMigrate, err)
	}
	return nil
}

// scope returns a method-scoped prefix for log lines.
func (r *implRepository) scope(method string) string {
	return fmt.Sprintf("task/repository/sqlstore.%s", method)
}

// bind expands named parameters and rebinds them for the current driver.
func (r *implRepository) bind(query string, arg any) (string, []any, error) {
	q, args, err := sqlx.Named(query, arg)
	if err != nil {
		return "", nil, err
	}
	return r.db.Rebind(q), args, nil
}
