// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/middleware"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/models"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/service"
)

type PollHandler struct {
	polls *service.PollService
}

func NewPollHandler(polls *service.PollService) *PollHandler {
	return &PollHandler{polls: polls}
}

// CreatePoll handles POST /create_poll
func (h *PollHandler) CreatePoll(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePollRequest
	if err := middleware.DecodeAndValidate(w, r, &req); err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	pollID, err := h.polls.CreatePoll(r.Context(), req.Question)
	if err != nil {
		writeServiceError(w, r, err, messages{service.ErrBadRequest: "question is required"})
		return
	}

	slog.Info("poll created", "poll_id", pollID)

	middleware.JSONResponse(w, http.StatusOK, models.CreatePollResponse{
		PollID:  pollID,
		Message: "Poll created successfully!",
	})
}

// AddOption handles POST /add_option
func (h *PollHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	var req models.AddOptionRequest
	if err := middleware.DecodeAndValidate(w, r, &req); err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	optionID, err := h.polls.AddOption(r.Context(), req.PollID, req.OptionText)
	if err != nil {
		writeServiceError(w, r, err, messages{
			service.ErrBadRequest: "option_text is required",
			service.ErrNotFound:   "Poll not found",
		})
		return
	}

	slog.Info("option added", "poll_id", req.PollID, "option_id", optionID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Option added successfully!",
	})
}

// GetPoll handles GET /polls/{poll_id}
func (h *PollHandler) GetPoll(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pollIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found")
		return
	}

	poll, err := h.polls.GetPoll(r.Context(), pollID)
	if err != nil {
		writeServiceError(w, r, err, messages{service.ErrNotFound: "Poll not found"})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, poll)
}

// pollIDFromPath parses the {poll_id} wildcard. Anything that is not a
// positive integer cannot name a poll.
func pollIDFromPath(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("poll_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
