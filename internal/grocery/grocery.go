// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

// Package grocery builds a shopping list from the liked collection: every
// liked recipe's ingredients, grouped by recipe, with a session-scoped
// checked-off set for crossing items out while shopping.
package grocery

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/anand880441-source/meal-explorer/internal/catalog"
	"github.com/anand880441-source/meal-explorer/internal/logging"
	"github.com/anand880441-source/meal-explorer/internal/storage"
	"github.com/anand880441-source/meal-explorer/internal/stores"
)

// sessionKey holds the checked-off item keys. Session scope: a new browsing
// session starts with nothing crossed out.
const sessionKey = "mep_grocery_checked"

// Item is one grocery list line.
type Item struct {
	Name       string `json:"name"`
	Measure    string `json:"measure"`
	RecipeID   string `json:"recipeId"`
	RecipeName string `json:"recipeName"`
}

// Key identifies an item for the checked-off set. Recipe-scoped so the same
// ingredient from two recipes checks off independently.
func (i Item) Key() string {
	return i.RecipeID + ":" + i.Name
}

// Builder assembles the grocery list from liked recipes via the catalog and
// tracks checked-off state.
type Builder struct {
	liked  *stores.LikedStore
	client catalog.Client

	mu      sync.Mutex
	session storage.Store
}

// NewBuilder creates a grocery list builder.
func NewBuilder(liked *stores.LikedStore, client catalog.Client, session storage.Store) *Builder {
	return &Builder{liked: liked, client: client, session: session}
}

// Build fetches every liked recipe and flattens their ingredients into list
// items, in liked-set insertion order. A liked id the catalog no longer
// knows is skipped with a log line rather than failing the whole list.
func (b *Builder) Build(ctx context.Context) ([]Item, error) {
	var items []Item
	for _, id := range b.liked.IDs() {
		recipe, err := b.client.Lookup(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("lookup liked recipe %s: %w", id, err)
		}
		if recipe == nil {
			logging.Warn().Str("id", id).Msg("liked recipe missing from catalog, skipping")
			continue
		}
		for _, ing := range recipe.Ingredients {
			items = append(items, Item{
				Name:       ing.Name,
				Measure:    ing.Measure,
				RecipeID:   recipe.ID,
				RecipeName: recipe.Title,
			})
		}
	}
	return items, nil
}

// Checked returns the checked-off item keys. Never nil.
func (b *Builder) Checked() []string {
	var keys []string
	b.session.Read(sessionKey, &keys)
	if keys == nil {
		keys = []string{}
	}
	return keys
}

// Toggle flips the checked state of the item key.
func (b *Builder) Toggle(key string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	keys := b.Checked()
	if i := slices.Index(keys, key); i >= 0 {
		keys = slices.Delete(keys, i, i+1)
	} else {
		keys = append(keys, key)
	}
	b.session.Write(sessionKey, keys)
}

// ClearChecked unchecks everything.
func (b *Builder) ClearChecked() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.session.Remove(sessionKey)
}
