// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/cliparse"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/db"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/handlers"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/metrics"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/middleware"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/service"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/web"
)

func NewRouter(store *db.Store, cfg cliparse.Config, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pollHandler := handlers.NewPollHandler(service.NewPollService(store))
	votingHandler := handlers.NewVotingHandler(service.NewVotingService(store), m)
	resultsHandler := handlers.NewResultsHandler(service.NewResultsAggregator(store, cfg.AdminPassword))
	healthHandler := handlers.NewHealthHandler(store)

	wrap := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(m.Instrument(middleware.WithTimeout(cfg.DBTimeout, h)))
	}

	vote := votingHandler.Vote
	if cfg.VoteRateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.VoteRateLimit, int(2*cfg.VoteRateLimit))
		limiter.TrustProxy = cfg.TrustProxy
		vote = limiter.Limit(vote)
	}

	// Operational endpoints
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", m.Handler())

	// Poll management
	mux.HandleFunc("POST /create_poll", wrap(pollHandler.CreatePoll))
	mux.HandleFunc("POST /add_option", wrap(pollHandler.AddOption))
	mux.HandleFunc("GET /polls/{poll_id}", wrap(pollHandler.GetPoll))

	// Voting
	mux.HandleFunc("POST /vote", wrap(vote))

	// Results (admin password in body)
	mux.HandleFunc("POST /polls/{poll_id}/results", wrap(resultsHandler.GetResults))

	// Frontend; {$} keeps unknown paths at 404
	mux.HandleFunc("GET /{$}", web.Index)

	return mux
}
