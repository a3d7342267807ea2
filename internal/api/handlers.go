// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package api

import (
	"net/http"
	"strconv"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/goccy/go-json"

	"github.com/anand880441-source/meal-explorer/internal/badges"
	"github.com/anand880441-source/meal-explorer/internal/bus"
	"github.com/anand880441-source/meal-explorer/internal/catalog"
	"github.com/anand880441-source/meal-explorer/internal/grocery"
	"github.com/anand880441-source/meal-explorer/internal/logging"
	"github.com/anand880441-source/meal-explorer/internal/metrics"
	"github.com/anand880441-source/meal-explorer/internal/stores"
)

// Handler bundles the collection core for the HTTP surface. Every mutating
// handler re-runs the badge engine after the store mutation; the UI only
// calls in, it never derives badges itself.
type Handler struct {
	Liked    *stores.LikedStore
	Ratings  *stores.RatingStore
	Notes    *stores.NoteStore
	Streak   *stores.StreakStore
	Trending *stores.TrendingStore
	Planner  *stores.PlannerStore
	Engine   *badges.Engine
	Catalog  catalog.Client
	Grocery  *grocery.Builder
	Bus      *bus.Bus
}

// Health reports liveness.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondJSON writes v as a JSON response.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Warn().Err(err).Msg("response encode failed")
	}
}

// respondError writes a JSON error body.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeBody parses a JSON request body into v.
func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// requestMetrics records per-request Prometheus counters.
func requestMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		metrics.RecordHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(ww.Status()))
	})
}
