// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package api

import (
	"net/http"
	"strconv"

	"github.com/anand880441-source/meal-explorer/internal/badges"
)

// defaultTrendingLimit matches the UI's trending shelf size.
const defaultTrendingLimit = 8

// GetStreak returns the current streak record.
func (h *Handler) GetStreak(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, h.Streak.Get())
}

// MarkStreak records a qualifying action for today and re-evaluates badges.
func (h *Handler) MarkStreak(w http.ResponseWriter, r *http.Request) {
	streak := h.Streak.MarkToday()
	h.Engine.EvaluateAll(r.Context())
	respondJSON(w, http.StatusOK, streak)
}

// GetTrending returns the session's most-viewed recipe ids.
func (h *Handler) GetTrending(w http.ResponseWriter, r *http.Request) {
	limit := defaultTrendingLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}
	respondJSON(w, http.StatusOK, map[string]any{"ids": h.Trending.TopN(limit)})
}

// RecordView counts one recipe view toward the session trending ranking.
func (h *Handler) RecordView(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := decodeBody(r, &body); err != nil || body.ID == "" {
		respondError(w, http.StatusBadRequest, "body must be {\"id\": \"<recipe-id>\"}")
		return
	}

	h.Trending.RecordView(body.ID)
	w.WriteHeader(http.StatusNoContent)
}

// ListBadges returns the full badge catalog together with the unlock set.
func (h *Handler) ListBadges(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"catalog":  badges.Catalog,
		"unlocked": h.Engine.Unlocked(),
	})
}
