// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/metrics"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/middleware"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/models"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/service"
)

type VotingHandler struct {
	voting  *service.VotingService
	metrics *metrics.Metrics
}

func NewVotingHandler(voting *service.VotingService, m *metrics.Metrics) *VotingHandler {
	return &VotingHandler{voting: voting, metrics: m}
}

// Vote handles POST /vote
func (h *VotingHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req models.VoteRequest
	if err := middleware.DecodeAndValidate(w, r, &req); err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	err := h.voting.CastVote(r.Context(), req.Token, req.OptionID)
	h.metrics.ObserveVote(err)
	if err != nil {
		writeServiceError(w, r, err, messages{
			service.ErrUnauthorized: "Invalid token!",
			service.ErrNotFound:     "Option not found",
		})
		return
	}

	// Never log the token itself
	slog.Info("vote recorded", "option_id", req.OptionID)

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "Vote counted successfully!",
	})
}
