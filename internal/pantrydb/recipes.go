// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package pantrydb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"golang.org/x/sync/errgroup"
)

// RecipeStore persists AI-suggested recipes for a user. Entries are created
// in batches after a generation call and only ever removed all at once.
type RecipeStore struct {
	client *firestore.Client
}

func NewRecipeStore(client *firestore.Client) *RecipeStore {
	return &RecipeStore{client: client}
}

func (s *RecipeStore) collection(userID string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(userID).Collection("cachedRecipes")
}

// CreateBatch appends the generated recipes to the user's cache. Existing
// entries are untouched; the cache only shrinks through Clear.
func (s *RecipeStore) CreateBatch(ctx context.Context, userID string, recipes []NewCachedRecipe) ([]CachedRecipe, error) {
	created := make([]CachedRecipe, len(recipes))
	var grp errgroup.Group
	for i, recipe := range recipes {
		grp.Go(func() error {
			doc := s.collection(userID).NewDoc()
			stored := CachedRecipe{
				ID:            doc.ID,
				Title:         recipe.Title,
				Ingredients:   recipe.Ingredients,
				Instructions:  recipe.Instructions,
				EstimatedTime: recipe.EstimatedTime,
				MatchScore:    recipe.MatchScore,
				AccentColor:   recipe.AccentColor,
				OwnerID:       userID,
			}
			res, err := doc.Create(ctx, stored)
			if err != nil {
				return fmt.Errorf("pantrydb: creating cached recipe: %w", err)
			}
			stored.CreatedAt = res.UpdateTime
			created[i] = stored
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return created, nil
}

// Clear deletes every cached recipe for the user. The delete is per entry
// and not atomic; a fault partway through leaves a partial cache, which is
// acceptable since entries are independently useful.
func (s *RecipeStore) Clear(ctx context.Context, userID string) error {
	recipes, err := s.List(ctx, userID)
	if err != nil {
		return err
	}
	for _, recipe := range recipes {
		if _, err := s.collection(userID).Doc(recipe.ID).Delete(ctx); err != nil {
			return fmt.Errorf("pantrydb: clearing cached recipe %s: %w", recipe.ID, err)
		}
	}
	return nil
}

// List returns the user's cached recipes, newest first.
func (s *RecipeStore) List(ctx context.Context, userID string) ([]CachedRecipe, error) {
	query := s.collection(userID).Query.OrderBy("createdAt", firestore.Desc)
	return collectDocuments(query.Documents(ctx), decodeCachedRecipe)
}

// Subscribe returns a live feed of the user's cached recipes, newest first.
func (s *RecipeStore) Subscribe(ctx context.Context, userID string) *Feed[CachedRecipe] {
	query := s.collection(userID).Query.OrderBy("createdAt", firestore.Desc)
	return Watch(ctx, query, decodeCachedRecipe)
}

func decodeCachedRecipe(doc *firestore.DocumentSnapshot) (CachedRecipe, error) {
	var recipe CachedRecipe
	if err := doc.DataTo(&recipe); err != nil {
		return CachedRecipe{}, fmt.Errorf("pantrydb: decoding cached recipe: %w", err)
	}
	return recipe, nil
}
