// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package api

import (
	"net/http"
	"slices"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/anand880441-source/meal-explorer/internal/grocery"
	"github.com/anand880441-source/meal-explorer/internal/stores"
)

// GetPlan returns the full weekly meal plan.
func (h *Handler) GetPlan(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"days": stores.Weekdays,
		"plan": h.Planner.Plan(),
	})
}

// AddPlanEntry appends a meal to a weekday's plan.
func (h *Handler) AddPlanEntry(w http.ResponseWriter, r *http.Request) {
	day := chi.URLParam(r, "day")
	if !slices.Contains(stores.Weekdays, day) {
		respondError(w, http.StatusBadRequest, "unknown weekday")
		return
	}

	var entry stores.PlanEntry
	if err := decodeBody(r, &entry); err != nil || entry.ID == "" {
		respondError(w, http.StatusBadRequest, "body must be a plan entry with an id")
		return
	}

	h.Planner.Add(day, entry)
	respondJSON(w, http.StatusOK, map[string]any{"plan": h.Planner.Plan()})
}

// RemovePlanEntry removes the entry at an index from a weekday's plan.
func (h *Handler) RemovePlanEntry(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		respondError(w, http.StatusBadRequest, "index must be a non-negative integer")
		return
	}

	h.Planner.Remove(chi.URLParam(r, "day"), index)
	respondJSON(w, http.StatusOK, map[string]any{"plan": h.Planner.Plan()})
}

// ClearPlan empties the entire week.
func (h *Handler) ClearPlan(w http.ResponseWriter, _ *http.Request) {
	h.Planner.Clear()
	respondJSON(w, http.StatusOK, map[string]any{"plan": h.Planner.Plan()})
}

// GetGroceryList builds the grocery list from the liked collection.
func (h *Handler) GetGroceryList(w http.ResponseWriter, r *http.Request) {
	items, err := h.Grocery.Build(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	if items == nil {
		items = []grocery.Item{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"items":   items,
		"checked": h.Grocery.Checked(),
	})
}

// ToggleGroceryItem flips an item's checked-off state.
func (h *Handler) ToggleGroceryItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Key string `json:"key"`
	}
	if err := decodeBody(r, &body); err != nil || body.Key == "" {
		respondError(w, http.StatusBadRequest, "body must be {\"key\": \"<item-key>\"}")
		return
	}

	h.Grocery.Toggle(body.Key)
	respondJSON(w, http.StatusOK, map[string]any{"checked": h.Grocery.Checked()})
}

// ClearGroceryChecked unchecks every grocery item.
func (h *Handler) ClearGroceryChecked(w http.ResponseWriter, _ *http.Request) {
	h.Grocery.ClearChecked()
	respondJSON(w, http.StatusOK, map[string]any{"checked": h.Grocery.Checked()})
}
