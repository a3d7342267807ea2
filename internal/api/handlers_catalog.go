// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/anand880441-source/meal-explorer/internal/catalog"
)

// SearchRecipes proxies a title search to the recipe catalog.
func (h *Handler) SearchRecipes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		respondError(w, http.StatusBadRequest, "q query parameter is required")
		return
	}

	recipes, err := h.Catalog.Search(r.Context(), query)
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	if recipes == nil {
		recipes = []catalog.Recipe{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"recipes": recipes})
}

// LookupRecipe proxies a full-record lookup to the recipe catalog.
func (h *Handler) LookupRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.Catalog.Lookup(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	if recipe == nil {
		respondError(w, http.StatusNotFound, "recipe not found")
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

// RandomRecipe proxies a random pick to the recipe catalog (the UI's spin
// wheel and "surprise me" entry points).
func (h *Handler) RandomRecipe(w http.ResponseWriter, r *http.Request) {
	recipe, err := h.Catalog.Random(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	respondJSON(w, http.StatusOK, recipe)
}

// ListCategories proxies the catalog's category listing.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Catalog.Categories(r.Context())
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// RecipesByCategory proxies the catalog's per-category recipe listing.
func (h *Handler) RecipesByCategory(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.Catalog.FilterByCategory(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, http.StatusBadGateway, "catalog unavailable")
		return
	}
	if recipes == nil {
		recipes = []catalog.Recipe{}
	}
	respondJSON(w, http.StatusOK, map[string]any{"recipes": recipes})
}
