// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /polls/{poll_id}", middleware.WithLogging(handler))

Each request gets an X-Request-ID (reused from the request when present).
Logs request start (method, path, remote) and completion (status, duration_ms).

# Timeouts

	middleware.WithTimeout(5*time.Second, handler)

bounds the request context. A zero duration disables it.

# Rate Limiting

	limiter := middleware.NewRateLimiter(5, 10)
	mux.HandleFunc("POST /vote", limiter.Limit(handler))

Keeps one token bucket per client IP; throttled requests get 429.

# CORS Middleware

Enable cross-origin requests for frontend access:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers
Content-Type, Authorization, X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Decode and validate request bodies:

	var req models.VoteRequest
	if err := middleware.DecodeAndValidate(w, r, &req); err != nil {
		// err is a *RequestError with a caller-safe message
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

The headers are client-supplied. The rate limiter keys on RemoteIP(r)
unless its TrustProxy field is set.
*/
package middleware
