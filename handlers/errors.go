// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/middleware"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/service"
)

const msgStoreUnavailable = "Database connection failed!"

// messages overrides the default caller-facing text per error kind.
type messages map[error]string

var kindStatus = map[error]int{
	service.ErrBadRequest:   http.StatusBadRequest,
	service.ErrNotFound:     http.StatusNotFound,
	service.ErrUnauthorized: http.StatusUnauthorized,
	service.ErrAlreadyVoted: http.StatusBadRequest,
	service.ErrUnavailable:  http.StatusInternalServerError,
	service.ErrInternal:     http.StatusInternalServerError,
}

var kindMessage = map[error]string{
	service.ErrBadRequest:   "Invalid request",
	service.ErrNotFound:     "Not found",
	service.ErrUnauthorized: "Unauthorized access!",
	service.ErrAlreadyVoted: "You have already voted!",
	service.ErrUnavailable:  msgStoreUnavailable,
	service.ErrInternal:     "Internal server error",
}

// writeServiceError writes the status and message for err's kind. Internal
// error text is logged, never returned.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, overrides messages) {
	var reqErr *middleware.RequestError
	if errors.As(err, &reqErr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, reqErr.Message)
		return
	}

	kind := service.Kind(err)
	if kind == nil {
		kind = service.ErrInternal
	}

	status := kindStatus[kind]
	msg := kindMessage[kind]
	if m, ok := overrides[kind]; ok {
		msg = m
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", w.Header().Get(middleware.RequestIDHeader),
			"error", err,
		)
	} else {
		slog.Debug("request rejected", "path", r.URL.Path, "error", err)
	}

	middleware.ErrorResponse(w, status, msg)
}
