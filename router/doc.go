// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the polling API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(store, cfg, metrics.New())

# Endpoints

Operational:

	GET /health  - Store reachability (200 OK / 503)
	GET /metrics - Prometheus exposition

Polls:

	POST /create_poll      - Create poll
	POST /add_option       - Add option to a poll
	GET  /polls/{poll_id}  - Poll question and options

Voting:

	POST /vote - Cast the token's single vote (rate limited per client IP)

Results (admin password in body):

	POST /polls/{poll_id}/results - Tallies and winner

Frontend:

	GET / - Embedded static page

# Middleware

API routes are wrapped, outermost first, with request logging, Prometheus
latency instrumentation and the optional per-request store timeout.
*/
package router
