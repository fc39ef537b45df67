// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the polling API server.

Anyone can create a poll and add options; voters holding a pre-issued token
may vote once across the whole system; an administrator reads per-option
tallies with a shared password.

# Starting the Server

The server reads CLI flags, then environment variables, then a .env file:

	ADMIN_PASSWORD=secret DB_PASSWORD=... go run .

Or with flags, against a local SQLite file:

	go run . -t sqlite -d polls.db -admin-password secret

# Configuration

Required settings:

  - ADMIN_PASSWORD (-admin-password): Credential for results

Optional settings:

  - PORT (-p): Server port (default: 5000)
  - DATABASE_TYPE (-t): postgres or sqlite (default: postgres)
  - DATABASE_URL (-d): Connection URL, or file path for sqlite
  - DB_HOST, DB_NAME, DB_USER, DB_PASSWORD, DB_SSLMODE: Used to build the
    PostgreSQL URL when DATABASE_URL is unset
  - DB_TIMEOUT (-db-timeout): Per-request store timeout
  - VOTE_RATE_LIMIT (-vote-rate): Votes per second per client IP (0 disables)
  - TRUST_PROXY (-trust-proxy): Rate limit on X-Forwarded-For instead of
    the peer address (only behind a trusted proxy)

# Voter Tokens

Tokens are provisioned out of band:

	go run . -issue-tokens 50 > tokens.txt
	go run . -register-token alice-2025

# Architecture

  - handlers: HTTP request handlers (polls, voting, results, health)
  - service: Poll, voting, results and voter business rules
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, validation, rate limiting, JSON helpers
  - metrics: Prometheus collectors
  - models: Request/response types
  - auth: Token generation and admin password checks
  - db: Store gateway, error classification and schema
  - cliparse: Configuration parsing
  - web: Embedded frontend page

See package documentation for each component.
*/
package main
