// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/hackathons/middleware"
	"github.com/danielhkuo/hackathons/models"
)

type APIHandler struct {
	source Source
}

func NewAPIHandler(source Source) *APIHandler {
	return &APIHandler{source: source}
}

// GetRecentHackathons handles GET /api/hackathon.getRecentHackathons
func (h *APIHandler) GetRecentHackathons(w http.ResponseWriter, r *http.Request) {
	hackathons, err := h.source.GetRecentHackathons(r.Context())
	if err != nil {
		slog.Error("failed to load recent hackathons", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, hackathons)
}

// GetHackathonWithWinners handles GET /api/hackathon.getHackathonWithWinners?input={"url":"..."}
// Winners are only present for finished hackathons.
func (h *APIHandler) GetHackathonWithWinners(w http.ResponseWriter, r *http.Request) {
	var input models.GetHackathonWithWinnersInput
	if err := middleware.ParseJSONInput(r, &input); err != nil {
		if errors.Is(err, middleware.ErrMissingInput) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "input is required")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON input")
		return
	}
	if input.URL == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "url is required")
		return
	}

	result, err := h.source.GetHackathonWithWinners(r.Context(), input.URL)
	if errors.Is(err, models.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Hackathon not found")
		return
	}
	if err != nil {
		slog.Error("failed to load hackathon", "url", input.URL, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, result)
}
