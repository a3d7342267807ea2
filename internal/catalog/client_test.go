// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

const searchResponse = `{"meals":[{
	"idMeal":"52772",
	"strMeal":"Teriyaki Chicken Casserole",
	"strCategory":"Chicken",
	"strArea":"Japanese",
	"strInstructions":"Preheat oven to 350.",
	"strMealThumb":"https://example.test/52772.jpg",
	"strYoutube":"https://youtube.test/watch",
	"strIngredient1":"soy sauce","strMeasure1":"3/4 cup",
	"strIngredient2":"water","strMeasure2":"1/2 cup",
	"strIngredient3":"","strMeasure3":"",
	"strIngredient4":null,"strMeasure4":null
}]}`

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, RequestsPerSecond: 1000, Burst: 1000})
}

func TestClient_SearchDecodesRecipe(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.php" || r.URL.Query().Get("s") != "teriyaki" {
			t.Errorf("unexpected request %s", r.URL)
		}
		w.Write([]byte(searchResponse))
	}))

	recipes, err := client.Search(context.Background(), "teriyaki")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(recipes) != 1 {
		t.Fatalf("expected 1 recipe, got %d", len(recipes))
	}

	recipe := recipes[0]
	if recipe.ID != "52772" || recipe.Title != "Teriyaki Chicken Casserole" {
		t.Errorf("unexpected identity fields: %+v", recipe)
	}
	if recipe.Area != "Japanese" || recipe.Category != "Chicken" {
		t.Errorf("unexpected taxonomy fields: %+v", recipe)
	}
}

func TestClient_FlattensIngredientPairs(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(searchResponse))
	}))

	recipes, err := client.Search(context.Background(), "x")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}

	ingredients := recipes[0].Ingredients
	if len(ingredients) != 2 {
		t.Fatalf("expected blank and null slots dropped, got %d ingredients", len(ingredients))
	}
	if ingredients[0].Name != "soy sauce" || ingredients[0].Measure != "3/4 cup" {
		t.Errorf("unexpected first ingredient: %+v", ingredients[0])
	}
	if ingredients[1].Name != "water" || ingredients[1].Measure != "1/2 cup" {
		t.Errorf("unexpected second ingredient: %+v", ingredients[1])
	}
}

func TestClient_NullMealsMeansEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	}))

	recipes, err := client.Search(context.Background(), "zzzzz")
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(recipes) != 0 {
		t.Errorf("expected empty result for null meals, got %d", len(recipes))
	}
}

func TestClient_LookupMissingReturnsNil(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	}))

	recipe, err := client.Lookup(context.Background(), "0")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if recipe != nil {
		t.Errorf("expected nil for unknown id, got %+v", recipe)
	}
}

func TestClient_ErrorStatusSurfacesError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))

	if _, err := client.Search(context.Background(), "x"); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		if _, err := client.Search(ctx, "x"); err == nil {
			t.Fatal("expected failure")
		}
	}

	before := hits.Load()
	if _, err := client.Search(ctx, "x"); err == nil {
		t.Error("expected open circuit to fail")
	}
	if hits.Load() != before {
		t.Errorf("expected open circuit to fail fast without a request, server saw %d more", hits.Load()-before)
	}
}

func TestClient_CategoriesDecode(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"categories":[{
			"idCategory":"1",
			"strCategory":"Beef",
			"strCategoryThumb":"https://example.test/beef.png",
			"strCategoryDescription":"Beef dishes."
		}]}`))
	}))

	categories, err := client.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != 1 || categories[0].Name != "Beef" {
		t.Errorf("unexpected categories: %+v", categories)
	}
}

func TestClient_RecipeAreasCachesLookups(t *testing.T) {
	var lookups atomic.Int64
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		lookups.Add(1)
		w.Write([]byte(searchResponse))
	}))

	ctx := context.Background()
	areas, err := client.RecipeAreas(ctx, []string{"52772"})
	if err != nil {
		t.Fatalf("RecipeAreas failed: %v", err)
	}
	if areas["52772"] != "Japanese" {
		t.Errorf("unexpected areas: %v", areas)
	}

	if _, err := client.RecipeAreas(ctx, []string{"52772"}); err != nil {
		t.Fatalf("RecipeAreas failed: %v", err)
	}
	if got := lookups.Load(); got != 1 {
		t.Errorf("expected cached second resolve, got %d lookups", got)
	}
}

func TestClient_RecipeAreasOmitsUnknownIds(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"meals":null}`))
	}))

	areas, err := client.RecipeAreas(context.Background(), []string{"404"})
	if err != nil {
		t.Fatalf("RecipeAreas failed: %v", err)
	}
	if len(areas) != 0 {
		t.Errorf("expected unknown id omitted, got %v", areas)
	}
}
