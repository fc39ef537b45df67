// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP request handlers for the polling API.

# Handler Types

Each handler is a thin struct around one service:

  - PollHandler: poll creation, options, public poll view
  - VotingHandler: vote casting (records outcomes in metrics)
  - ResultsHandler: admin-only tallies
  - HealthHandler: store reachability

Handlers are created via constructor functions:

	pollHandler := handlers.NewPollHandler(service.NewPollService(store))

# Endpoints

	POST /create_poll              → CreatePoll
	POST /add_option               → AddOption
	GET  /polls/{poll_id}          → GetPoll
	POST /vote                     → Vote
	POST /polls/{poll_id}/results  → GetResults (requires admin password)
	GET  /health                   → Health

# Errors

Request bodies are decoded and validated with middleware.DecodeAndValidate.
Service errors are mapped to status codes in one place:

	bad request     400
	already voted   400
	unauthorized    401
	not found       404
	store failure   500 "Database connection failed!"

Error bodies never carry internal error text; store failures are logged
with the request id instead.
*/
package handlers
