// Meal Explorer - Recipe Discovery and Collection Tracking
// Copyright 2026 Anand (anand880441-source)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/anand880441-source/meal-explorer

package badges

import (
	"context"
	"slices"
	"sync"

	"github.com/anand880441-source/meal-explorer/internal/bus"
	"github.com/anand880441-source/meal-explorer/internal/logging"
	"github.com/anand880441-source/meal-explorer/internal/metrics"
	"github.com/anand880441-source/meal-explorer/internal/storage"
	"github.com/anand880441-source/meal-explorer/internal/stores"
)

// storageKey holds the unlock set: a list of badge keys, append-only for the
// life of the durable store. Badges are never revoked.
const storageKey = "mep_badges"

// AreaResolver maps recipe ids to their cuisine/area tag. The globetrotter
// rule needs it because cuisine lives in the external catalog, not in any
// domain store. Implemented by the catalog client.
type AreaResolver interface {
	RecipeAreas(ctx context.Context, ids []string) (map[string]string, error)
}

// thresholdRule is one count-based unlock condition. Rules are pure and
// order-independent; evaluating with unchanged inputs is a no-op.
type thresholdRule struct {
	key string
	met func(likes, ratings, notes, streak int) bool
}

var thresholdRules = []thresholdRule{
	{KeyFirstSave, func(l, _, _, _ int) bool { return l >= 1 }},
	{KeyFiveSaves, func(l, _, _, _ int) bool { return l >= 5 }},
	{KeyTenSaves, func(l, _, _, _ int) bool { return l >= 10 }},
	{KeyFirstRate, func(_, r, _, _ int) bool { return r >= 1 }},
	{KeyFiveRatings, func(_, r, _, _ int) bool { return r >= 5 }},
	{KeyFirstNote, func(_, _, n, _ int) bool { return n >= 1 }},
	{KeyThreeStreak, func(_, _, _, s int) bool { return s >= 3 }},
	{KeySevenStreak, func(_, _, _, s int) bool { return s >= 7 }},
}

// Engine evaluates the badge rules against the combined state of the domain
// stores and owns the persisted unlock set. Reading across all stores is a
// deliberate cross-cutting dependency; the engine consumes their derived
// getters, never their raw storage keys.
type Engine struct {
	mu       sync.Mutex
	store    storage.Store
	bus      *bus.Bus
	liked    *stores.LikedStore
	ratings  *stores.RatingStore
	notes    *stores.NoteStore
	streak   *stores.StreakStore
	resolver AreaResolver
}

// NewEngine creates the badge engine over the given stores.
func NewEngine(store storage.Store, b *bus.Bus, liked *stores.LikedStore, ratings *stores.RatingStore, notes *stores.NoteStore, streak *stores.StreakStore) *Engine {
	return &Engine{
		store:   store,
		bus:     b,
		liked:   liked,
		ratings: ratings,
		notes:   notes,
		streak:  streak,
	}
}

// SetAreaResolver wires the cuisine lookup used by the globetrotter rule.
// Without a resolver that rule is simply never evaluated.
func (e *Engine) SetAreaResolver(r AreaResolver) {
	e.resolver = r
}

// Unlocked returns the unlocked badge keys in unlock order. Never nil.
func (e *Engine) Unlocked() []string {
	var keys []string
	e.store.Read(storageKey, &keys)
	if keys == nil {
		keys = []string{}
	}
	return keys
}

// Has reports whether key is unlocked.
func (e *Engine) Has(key string) bool {
	return slices.Contains(e.Unlocked(), key)
}

// Unlock adds key to the unlock set, publishes the badge-unlocked event, and
// reports whether a new unlock occurred. Already-unlocked keys return false
// with no write and no event.
func (e *Engine) Unlock(key string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.unlockLocked(key)
}

func (e *Engine) unlockLocked(key string) bool {
	keys := e.Unlocked()
	if slices.Contains(keys, key) {
		return false
	}

	e.store.Write(storageKey, append(keys, key))
	metrics.RecordBadgeUnlock(key)
	logging.Info().Str("badge", key).Msg("badge unlocked")
	e.bus.Publish(bus.TopicBadgeUnlocked, bus.BadgeUnlocked{Key: key})
	return true
}

// EvaluateAll re-reads the domain stores and unlocks every badge whose rule
// is newly satisfied. Callers run it after each relevant mutation; running
// it twice with unchanged inputs unlocks nothing and publishes nothing.
func (e *Engine) EvaluateAll(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	likes := e.liked.Count()
	ratings := e.ratings.Count()
	notes := e.notes.Count()
	streak := e.streak.Get().Count

	for _, rule := range thresholdRules {
		if rule.met(likes, ratings, notes, streak) {
			e.unlockLocked(rule.key)
		}
	}

	e.evaluateGlobetrotter(ctx)
}

// evaluateGlobetrotter unlocks the cuisine-diversity badge when the liked
// set spans at least 3 distinct areas. Resolver errors skip the rule for
// this evaluation; a later one retries.
func (e *Engine) evaluateGlobetrotter(ctx context.Context) {
	if e.resolver == nil || e.Has(KeyGlobetrotter) {
		return
	}

	ids := e.liked.IDs()
	if len(ids) < 3 {
		return
	}

	areas, err := e.resolver.RecipeAreas(ctx, ids)
	if err != nil {
		logging.Debug().Err(err).Msg("cuisine lookup failed, skipping globetrotter rule")
		return
	}

	distinct := map[string]struct{}{}
	for _, area := range areas {
		if area != "" {
			distinct[area] = struct{}{}
		}
	}
	if len(distinct) >= 3 {
		e.unlockLocked(KeyGlobetrotter)
	}
}
