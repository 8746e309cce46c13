// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

// Package recipecache maintains the persisted, regenerable cache of
// AI-suggested recipes keyed to a user's current ingredient set.
package recipecache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ProSnigdho/MyFridgeAI/internal/llm"
	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
)

var (
	// ErrEmptyPantry reports that there is nothing to cook with. The
	// external service is never called in this case.
	ErrEmptyPantry = errors.New("recipecache: no ingredients on hand")

	// ErrBusy reports that a regeneration is already in flight for the
	// user. The second request is rejected, not queued.
	ErrBusy = errors.New("recipecache: regeneration already in flight")

	// ErrServiceUnavailable reports that the generation service call failed.
	ErrServiceUnavailable = errors.New("recipecache: generation service unavailable")
)

type generator interface {
	GenerateRecipes(ctx context.Context, ingredients []string) (string, error)
}

type ingredientSource interface {
	IngredientNames(ctx context.Context, userID string) ([]string, error)
}

type shoppingSource interface {
	UncheckedNames(ctx context.Context, userID string) ([]string, error)
}

type recipeWriter interface {
	CreateBatch(ctx context.Context, userID string, recipes []pantrydb.NewCachedRecipe) ([]pantrydb.CachedRecipe, error)
	Clear(ctx context.Context, userID string) error
}

// Cache regenerates and clears a user's cached recipes.
type Cache struct {
	generator generator
	pantry    ingredientSource
	shopping  shoppingSource
	recipes   recipeWriter

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New creates a cache. shopping may be nil; when set, unchecked
// shopping-list entries are offered to the generator alongside the pantry.
func New(generator generator, pantry ingredientSource, shopping shoppingSource, recipes recipeWriter) *Cache {
	return &Cache{
		generator: generator,
		pantry:    pantry,
		shopping:  shopping,
		recipes:   recipes,
		inFlight:  map[string]struct{}{},
	}
}

// Regenerate reads the current ingredient set, asks the generation service
// for suggestions and appends them to the persisted cache. The cache is not
// replaced; Clear is the only way entries leave it.
func (c *Cache) Regenerate(ctx context.Context, userID string) ([]pantrydb.CachedRecipe, error) {
	if !c.begin(userID) {
		return nil, ErrBusy
	}
	defer c.end(userID)

	ingredients, err := c.ingredients(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ingredients) == 0 {
		return nil, ErrEmptyPantry
	}

	rawText, err := c.generator.GenerateRecipes(ctx, ingredients)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	records, err := llm.ExtractArray(rawText)
	if err != nil {
		return nil, err
	}

	generated := make([]pantrydb.NewCachedRecipe, 0, len(records))
	for _, raw := range records {
		var recipe pantrydb.NewCachedRecipe
		if err := json.Unmarshal(raw, &recipe); err != nil || recipe.Title == "" {
			slog.DebugContext(ctx, "recipecache: dropping unusable recipe record", "error", err)
			continue
		}
		generated = append(generated, recipe)
	}

	created, err := c.recipes.CreateBatch(ctx, userID, generated)
	if err != nil {
		return nil, fmt.Errorf("recipecache: persisting recipes: %w", err)
	}
	return created, nil
}

// Clear deletes every cached recipe for the user.
func (c *Cache) Clear(ctx context.Context, userID string) error {
	return c.recipes.Clear(ctx, userID)
}

func (c *Cache) ingredients(ctx context.Context, userID string) ([]string, error) {
	names, err := c.pantry.IngredientNames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recipecache: reading pantry: %w", err)
	}
	if c.shopping == nil {
		return names, nil
	}
	unchecked, err := c.shopping.UncheckedNames(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("recipecache: reading shopping list: %w", err)
	}
	return append(names, unchecked...), nil
}

func (c *Cache) begin(userID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.inFlight[userID]; ok {
		return false
	}
	c.inFlight[userID] = struct{}{}
	return true
}

func (c *Cache) end(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.inFlight, userID)
}
