// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package catalog

import (
	"fmt"
	"strings"
)

// maxIngredients is the catalog's fixed number of numbered ingredient slots
// per recipe record.
const maxIngredients = 20

// Ingredient is one name/measure pair from a recipe record.
type Ingredient struct {
	Name    string `json:"name"`
	Measure string `json:"measure"`
}

// Recipe is the catalog's recipe record, with the wire format's numbered
// ingredient slots flattened into a slice.
type Recipe struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Thumbnail    string       `json:"thumbnail"`
	Area         string       `json:"area"`
	Category     string       `json:"category"`
	Instructions string       `json:"instructions"`
	VideoURL     string       `json:"videoUrl,omitempty"`
	Ingredients  []Ingredient `json:"ingredients"`
}

// Category is one entry of the catalog's category listing.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Thumbnail   string `json:"thumbnail"`
	Description string `json:"description"`
}

// mealsEnvelope is the wire shape of every recipe response: a "meals" array
// that is null (not empty) when nothing matched. Fields inside a meal are
// strings or null, so each meal decodes as a loose map.
type mealsEnvelope struct {
	Meals []map[string]any `json:"meals"`
}

// categoriesEnvelope is the wire shape of the category listing.
type categoriesEnvelope struct {
	Categories []map[string]any `json:"categories"`
}

// fieldStr extracts a string field from a loose wire record, mapping null
// and absent to "".
func fieldStr(m map[string]any, key string) string {
	if v, ok := m[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// parseRecipe converts one wire meal record into a Recipe. Ingredient slots
// with an empty name are skipped; a missing measure becomes "".
func parseRecipe(m map[string]any) Recipe {
	r := Recipe{
		ID:           fieldStr(m, "idMeal"),
		Title:        fieldStr(m, "strMeal"),
		Thumbnail:    fieldStr(m, "strMealThumb"),
		Area:         fieldStr(m, "strArea"),
		Category:     fieldStr(m, "strCategory"),
		Instructions: fieldStr(m, "strInstructions"),
		VideoURL:     fieldStr(m, "strYoutube"),
	}

	for i := 1; i <= maxIngredients; i++ {
		name := fieldStr(m, fmt.Sprintf("strIngredient%d", i))
		if name == "" {
			continue
		}
		r.Ingredients = append(r.Ingredients, Ingredient{
			Name:    name,
			Measure: fieldStr(m, fmt.Sprintf("strMeasure%d", i)),
		})
	}
	return r
}

// parseCategory converts one wire category record into a Category.
func parseCategory(m map[string]any) Category {
	return Category{
		ID:          fieldStr(m, "idCategory"),
		Name:        fieldStr(m, "strCategory"),
		Thumbnail:   fieldStr(m, "strCategoryThumb"),
		Description: fieldStr(m, "strCategoryDescription"),
	}
}
