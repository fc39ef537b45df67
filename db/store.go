// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dialect selects the SQL driver and schema variant.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

var (
	ErrUnavailable         = errors.New("store unavailable")
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// PostgreSQL SQLSTATE codes
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Conn issues parameterized statements against either the pool or a
// transaction. Every error it returns has been classified.
type Conn struct {
	q querier
}

// Store is the pooled gateway to the relational store.
type Store struct {
	*Conn
	db      *sql.DB
	dialect Dialect
}

// Open connects to the store and verifies it is reachable.
// For SQLite, dsn is a file path (or ":memory:").
func Open(ctx context.Context, dialect Dialect, dsn string) (*Store, error) {
	var conn *sql.DB
	var err error

	switch dialect {
	case DialectPostgres:
		conn, err = sql.Open("postgres", dsn)
	case DialectSQLite:
		conn, err = sql.Open("sqlite", SQLiteDSN(dsn))
		if err == nil {
			// Writers serialize on a single connection; SQLite would
			// otherwise fail lock upgrades with SQLITE_BUSY.
			conn.SetMaxOpenConns(1)
		}
	default:
		return nil, fmt.Errorf("unsupported database type %q", dialect)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	return &Store{Conn: &Conn{q: conn}, db: conn, dialect: dialect}, nil
}

// SQLiteDSN turns a database path into a modernc DSN with foreign keys on.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path
	}
	if !strings.HasPrefix(path, "file:") {
		path = "file:" + path
	}
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Ping reports whether the store is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return classify(s.db.PingContext(ctx))
}

func (s *Store) Close() error {
	return s.db.Close()
}

// WithTx runs fn inside a transaction. The transaction commits when fn
// returns nil and rolls back otherwise; the connection is released on
// every path. Errors returned by fn are passed through untouched.
func (s *Store) WithTx(ctx context.Context, fn func(tx *Conn) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return classify(err)
	}
	defer tx.Rollback()

	if err := fn(&Conn{q: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return classify(err)
	}
	return nil
}

func (c *Conn) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := c.q.ExecContext(ctx, query, args...)
	return res, classify(err)
}

// Row wraps *sql.Row so that Scan errors are classified.
type Row struct {
	row *sql.Row
}

func (c *Conn) QueryRow(ctx context.Context, query string, args ...any) *Row {
	return &Row{row: c.q.QueryRowContext(ctx, query, args...)}
}

// Scan returns sql.ErrNoRows unchanged when the query matched nothing.
func (r *Row) Scan(dest ...any) error {
	return classify(r.row.Scan(dest...))
}

// Each runs query and calls scan once per row. Rows are closed before
// Each returns. Errors from scan are returned as is.
func (c *Conn) Each(ctx context.Context, scan func(rows *sql.Rows) error, query string, args ...any) error {
	rows, err := c.q.QueryContext(ctx, query, args...)
	if err != nil {
		return classify(err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return classify(rows.Err())
}

// InsertReturningID executes an INSERT ... RETURNING id statement and
// returns the generated identity.
func (c *Conn) InsertReturningID(ctx context.Context, query string, args ...any) (int64, error) {
	var id int64
	if err := c.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// classify maps driver errors onto the gateway's error kinds.
func classify(err error) error {
	if err == nil || errors.Is(err, sql.ErrNoRows) {
		return err
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrUniqueViolation) || errors.Is(err, ErrForeignKeyViolation) {
		return err
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%w: %s", ErrUniqueViolation, pqErr.Constraint)
		case pqForeignKeyViolation:
			return fmt.Errorf("%w: %s", ErrForeignKeyViolation, pqErr.Constraint)
		}
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		code := liteErr.Code()
		switch {
		case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%w: %s", ErrUniqueViolation, liteErr.Error())
		case code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%w: %s", ErrForeignKeyViolation, liteErr.Error())
		case code&0xff == sqlite3.SQLITE_CONSTRAINT:
			// primary result code only; fall back to the message
			msg := liteErr.Error()
			if strings.Contains(msg, "UNIQUE") {
				return fmt.Errorf("%w: %s", ErrUniqueViolation, msg)
			}
			if strings.Contains(msg, "FOREIGN KEY") {
				return fmt.Errorf("%w: %s", ErrForeignKeyViolation, msg)
			}
		}
	}

	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
