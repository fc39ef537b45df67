// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, s *Store) error {
	schema := postgresSchema
	if s.dialect == DialectSQLite {
		schema = sqliteSchema
	}

	if _, err := s.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const postgresSchema = `
-- Polls
CREATE TABLE IF NOT EXISTS polls (
    id SERIAL PRIMARY KEY,
    question TEXT NOT NULL
);

-- Options
CREATE TABLE IF NOT EXISTS options (
    id SERIAL PRIMARY KEY,
    poll_id INTEGER NOT NULL REFERENCES polls(id),
    option_text TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_options_poll_id ON options(poll_id);

-- Voters (provisioned out of band)
CREATE TABLE IF NOT EXISTS users (
    token TEXT PRIMARY KEY
);

-- Votes: one per token, across all polls
CREATE TABLE IF NOT EXISTS votes (
    id SERIAL PRIMARY KEY,
    user_token TEXT NOT NULL UNIQUE REFERENCES users(token),
    option_id INTEGER NOT NULL REFERENCES options(id)
);

CREATE INDEX IF NOT EXISTS idx_votes_option_id ON votes(option_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS polls (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    question TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS options (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    poll_id INTEGER NOT NULL REFERENCES polls(id),
    option_text TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_options_poll_id ON options(poll_id);

CREATE TABLE IF NOT EXISTS users (
    token TEXT PRIMARY KEY
);

CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_token TEXT NOT NULL UNIQUE REFERENCES users(token),
    option_id INTEGER NOT NULL REFERENCES options(id)
);

CREATE INDEX IF NOT EXISTS idx_votes_option_id ON votes(option_id);
`
