// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db is the gateway to the relational store.

# Opening

Open connects to PostgreSQL (lib/pq) or SQLite (modernc.org/sqlite) and
pings the store before returning:

	store, err := db.Open(ctx, db.DialectPostgres, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

SQLite pools are limited to a single connection with foreign keys enabled.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(ctx, store); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - polls: id, question
  - options: id, poll_id, option_text
  - users: token (voters, provisioned out of band)
  - votes: id, user_token (UNIQUE), option_id

# Relationships

	polls 1──* options
	options 1──* votes
	users 1──1 votes

# Transactions

WithTx scopes a unit of work. The callback receives a *Conn bound to the
transaction; returning an error rolls back.

	err := store.WithTx(ctx, func(tx *db.Conn) error {
		_, err := tx.Exec(ctx, "INSERT INTO users (token) VALUES ($1)", token)
		return err
	})

# Errors

Every error leaving the package is one of:

  - sql.ErrNoRows: QueryRow matched nothing
  - ErrUniqueViolation: UNIQUE or PRIMARY KEY constraint failed
  - ErrForeignKeyViolation: REFERENCES constraint failed
  - ErrUnavailable: anything else (connection, timeout, driver)
*/
package db
