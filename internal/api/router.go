// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

// Package api exposes the collection core to the UI over HTTP: REST routes
// for every domain store, the badge engine, the meal planner and grocery
// list, a thin proxy to the recipe catalog, and a websocket endpoint
// streaming change notifications to the browser.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/anand880441-source/meal-explorer/internal/config"
)

// NewRouter assembles the chi router over the handler set.
func NewRouter(h *Handler, cfg config.ServerConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(httprate.LimitByIP(cfg.RateLimit, time.Minute))

		r.Route("/likes", func(r chi.Router) {
			r.Get("/", h.ListLikes)
			r.Post("/", h.AddLike)
			r.Delete("/", h.ClearLikes)
			r.Delete("/{id}", h.RemoveLike)
		})

		r.Route("/ratings", func(r chi.Router) {
			r.Get("/", h.ListRatings)
			r.Put("/{id}", h.SetRating)
			r.Delete("/{id}", h.ClearRating)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.ListNotes)
			r.Put("/{id}", h.SetNote)
			r.Delete("/{id}", h.ClearNote)
		})

		r.Route("/streak", func(r chi.Router) {
			r.Get("/", h.GetStreak)
			r.Post("/mark", h.MarkStreak)
		})

		r.Route("/trending", func(r chi.Router) {
			r.Get("/", h.GetTrending)
			r.Post("/views", h.RecordView)
		})

		r.Get("/badges", h.ListBadges)

		r.Route("/plan", func(r chi.Router) {
			r.Get("/", h.GetPlan)
			r.Delete("/", h.ClearPlan)
			r.Post("/{day}", h.AddPlanEntry)
			r.Delete("/{day}/{index}", h.RemovePlanEntry)
		})

		r.Route("/grocery", func(r chi.Router) {
			r.Get("/", h.GetGroceryList)
			r.Post("/toggle", h.ToggleGroceryItem)
			r.Delete("/checked", h.ClearGroceryChecked)
		})

		r.Route("/recipes", func(r chi.Router) {
			r.Get("/search", h.SearchRecipes)
			r.Get("/random", h.RandomRecipe)
			r.Get("/{id}", h.LookupRecipe)
		})

		r.Get("/categories", h.ListCategories)
		r.Get("/categories/{name}/recipes", h.RecipesByCategory)

		r.Get("/ws", h.WebSocket)
	})

	return r
}
