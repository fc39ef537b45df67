// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 5000)
  - DatabaseType: postgres or sqlite (default: postgres)
  - DatabaseURL: PostgreSQL URL or SQLite file path
  - DBHost, DBName, DBUser, DBPassword, DBSSLMode: used to build the
    PostgreSQL URL when DatabaseURL is empty
  - DBTimeout: per-request store timeout (default: none)
  - AdminPassword: credential for poll results (required)
  - VoteRateLimit: votes per second per client (default: 5, 0 disables)
  - IssueTokens: provision N voter tokens and exit

# CLI Flags

	-p               Server port
	-t               Database type
	-d               Database URL or path
	-db-timeout      Store timeout (e.g. 2s)
	-vote-rate       Vote rate limit
	-admin-password  Admin password
	-env-file        .env file (default: .env)
	-issue-tokens    Voter tokens to issue

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_TYPE   → -t
	DATABASE_URL    → -d
	DB_TIMEOUT      → -db-timeout
	VOTE_RATE_LIMIT → -vote-rate
	ADMIN_PASSWORD  → -admin-password

DB_HOST (localhost), DB_NAME (ps_project), DB_USER (postgres), DB_PASSWORD
and DB_SSLMODE (disable) have no flags.

CLI flags take precedence over environment variables, and environment
variables over the .env file. A missing .env file is not an error.

# Validation

ParseFlags returns an error if:

  - ADMIN_PASSWORD is missing (it has no default)
  - DATABASE_TYPE is not postgres or sqlite
  - sqlite is selected without a path
  - PORT, DB_TIMEOUT or VOTE_RATE_LIMIT cannot be parsed
*/
package cliparse
