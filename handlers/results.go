// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/middleware"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/models"
	"github.com/PUNEETH-KUMAR-M/Polling-System-Prototype/service"
)

type ResultsHandler struct {
	results *service.ResultsAggregator
}

func NewResultsHandler(results *service.ResultsAggregator) *ResultsHandler {
	return &ResultsHandler{results: results}
}

// GetResults handles POST /polls/{poll_id}/results
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	pollID, ok := pollIDFromPath(r)
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Poll not found!")
		return
	}

	var req models.ResultsRequest
	if err := middleware.DecodeAndValidate(w, r, &req); err != nil {
		writeServiceError(w, r, err, nil)
		return
	}

	res, err := h.results.GetResults(r.Context(), pollID, req.Password)
	if err != nil {
		writeServiceError(w, r, err, messages{service.ErrNotFound: "Poll not found!"})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, res)
}
