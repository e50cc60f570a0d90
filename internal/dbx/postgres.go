package dbx

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DriverName is the database/sql driver registered by pgx/v5/stdlib.
const DriverName = "pgx"

// OpenPostgres opens a handle for dsn and verifies it with a ping. The pool
// is capped at one connection: the CLI holds a single session for the whole
// invocation. dsn may be a URL or a keyword/value string ("dbname=snippets").
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	return db, nil
}

// PgErrorAttrs returns log key/value pairs describing a PostgreSQL server
// error found anywhere in err's chain, or nil when there is none.
func PgErrorAttrs(err error) []any {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}

	attrs := []any{"sqlstate", pgErr.Code, "severity", pgErr.Severity}
	if pgErr.ConstraintName != "" {
		attrs = append(attrs, "constraint", pgErr.ConstraintName)
	}
	return attrs
}
