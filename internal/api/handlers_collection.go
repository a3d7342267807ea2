// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ListLikes returns the liked recipe ids in insertion order.
func (h *Handler) ListLikes(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"ids": h.Liked.IDs()})
}

// AddLike inserts a recipe id into the liked set and re-evaluates badges.
func (h *Handler) AddLike(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID string `json:"id"`
	}
	if err := decodeBody(r, &body); err != nil || body.ID == "" {
		respondError(w, http.StatusBadRequest, "body must be {\"id\": \"<recipe-id>\"}")
		return
	}

	h.Liked.Add(body.ID)
	h.Engine.EvaluateAll(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"ids": h.Liked.IDs()})
}

// RemoveLike deletes a recipe id from the liked set.
func (h *Handler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	h.Liked.Remove(chi.URLParam(r, "id"))
	h.Engine.EvaluateAll(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"ids": h.Liked.IDs()})
}

// ClearLikes empties the liked collection.
func (h *Handler) ClearLikes(w http.ResponseWriter, r *http.Request) {
	h.Liked.Clear()
	h.Engine.EvaluateAll(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"ids": h.Liked.IDs()})
}

// ListRatings returns the full ratings map.
func (h *Handler) ListRatings(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"ratings": h.Ratings.All()})
}

// SetRating stores a star rating. Stars outside 0..5 are rejected here so
// undefined store behavior is unreachable from the API.
func (h *Handler) SetRating(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Stars int `json:"stars"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "body must be {\"stars\": 0..5}")
		return
	}
	if body.Stars < 0 || body.Stars > 5 {
		respondError(w, http.StatusBadRequest, "stars must be between 0 and 5")
		return
	}

	h.Ratings.Set(chi.URLParam(r, "id"), body.Stars)
	h.Engine.EvaluateAll(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"ratings": h.Ratings.All()})
}

// ClearRating removes a recipe's rating key entirely.
func (h *Handler) ClearRating(w http.ResponseWriter, r *http.Request) {
	h.Ratings.Clear(chi.URLParam(r, "id"))
	h.Engine.EvaluateAll(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"ratings": h.Ratings.All()})
}

// ListNotes returns the full notes map.
func (h *Handler) ListNotes(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{"notes": h.Notes.All()})
}

// SetNote stores the note text for a recipe.
func (h *Handler) SetNote(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &body); err != nil {
		respondError(w, http.StatusBadRequest, "body must be {\"text\": \"...\"}")
		return
	}

	h.Notes.Set(chi.URLParam(r, "id"), body.Text)
	h.Engine.EvaluateAll(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"notes": h.Notes.All()})
}

// ClearNote removes a recipe's note key entirely.
func (h *Handler) ClearNote(w http.ResponseWriter, r *http.Request) {
	h.Notes.Clear(chi.URLParam(r, "id"))
	h.Engine.EvaluateAll(r.Context())
	respondJSON(w, http.StatusOK, map[string]any{"notes": h.Notes.All()})
}
