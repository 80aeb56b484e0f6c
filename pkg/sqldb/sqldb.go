package sqldb

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// Config describes how to reach the relational database.
type Config struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects, pings and configures the database described by cfg.
func Open(ctx context.Context, cfg Config) (*sqlx.DB, Dialect, error) {
	dialect, err := NewDialect(cfg.Driver)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %q", err, cfg.Driver)
	}
	if cfg.DSN == "" {
		return nil, nil, ErrEmptyDSN
	}

	dsn, err := dialect.ConnectDSN(cfg.DSN)
	if err != nil {
		return nil, nil, err
	}

	db, err := sqlx.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", dialect.Name(), err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", dialect.Name(), err)
	}

	return db, dialect, nil
}

func namedPlaceholders(columns []string) string {
	named := make([]string, len(columns))
	for i, col := range columns {
		named[i] = ":" + col
	}
	return strings.Join(named, ", ")
}

// withQueryDefaults adds params missing from the query string of dsn.
func withQueryDefaults(dsn string, params map[string]string) (string, error) {
	base, rawQuery, _ := strings.Cut(dsn, "?")
	q, err := url.ParseQuery(rawQuery)
	if err != nil {
		return "", fmt.Errorf("parse dsn parameters: %w", err)
	}
	for k, v := range params {
		if !q.Has(k) {
			q.Set(k, v)
		}
	}
	return base + "?" + q.Encode(), nil
}
