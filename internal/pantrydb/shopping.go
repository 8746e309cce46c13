// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package pantrydb

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"cloud.google.com/go/firestore"
)

// InventoryWriter is the part of the inventory store used by shopping-list
// promotion.
type InventoryWriter interface {
	Create(ctx context.Context, userID string, item NewInventoryItem) (InventoryItem, error)
}

// ShoppingListStore is the store for a user's shopping list. Checking off an
// entry promotes it into the inventory exactly once; the promotion is
// one-directional and never rolled back.
type ShoppingListStore struct {
	client    *firestore.Client
	inventory InventoryWriter
}

func NewShoppingListStore(client *firestore.Client, inventory InventoryWriter) *ShoppingListStore {
	return &ShoppingListStore{client: client, inventory: inventory}
}

func (s *ShoppingListStore) collection(userID string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(userID).Collection("shoppingList")
}

// Create adds an unchecked entry to the user's shopping list.
func (s *ShoppingListStore) Create(ctx context.Context, userID string, name string) (ShoppingListItem, error) {
	if strings.TrimSpace(name) == "" {
		return ShoppingListItem{}, fmt.Errorf("pantrydb: shopping list entry name is required")
	}
	doc := s.collection(userID).NewDoc()
	item := ShoppingListItem{
		ID:      doc.ID,
		Name:    name,
		OwnerID: userID,
	}
	res, err := doc.Create(ctx, item)
	if err != nil {
		return ShoppingListItem{}, fmt.Errorf("pantrydb: creating shopping list entry: %w", err)
	}
	item.CreatedAt = res.UpdateTime
	return item, nil
}

// Delete removes an entry. Deleting a nonexistent ID is not an error.
func (s *ShoppingListStore) Delete(ctx context.Context, userID string, id string) error {
	if _, err := s.collection(userID).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("pantrydb: deleting shopping list entry %s: %w", id, err)
	}
	return nil
}

// SetChecked toggles an entry. The false to true transition is terminal: it
// creates a corresponding inventory item with default quantity and shelf
// life. The inventory write is fire-and-forget relative to the toggle; if it
// fails the entry stays checked and the failure is only logged. Unchecking
// never deletes the promoted item.
func (s *ShoppingListStore) SetChecked(ctx context.Context, userID string, id string, checked bool) (ShoppingListItem, error) {
	doc := s.collection(userID).Doc(id)
	snap, err := doc.Get(ctx)
	if err != nil {
		return ShoppingListItem{}, fmt.Errorf("pantrydb: fetching shopping list entry %s: %w", id, err)
	}
	item, err := decodeShoppingListItem(snap)
	if err != nil {
		return ShoppingListItem{}, err
	}

	wasChecked := item.Checked
	if _, err := doc.Update(ctx, []firestore.Update{{Path: "checked", Value: checked}}); err != nil {
		return ShoppingListItem{}, fmt.Errorf("pantrydb: updating shopping list entry %s: %w", id, err)
	}
	item.Checked = checked

	s.promoteIfNeeded(ctx, userID, item, wasChecked, checked)
	return item, nil
}

// promoteIfNeeded performs the cross-store promotion for a false to true
// transition. Promotion errors are logged, not returned and not retried;
// the checked entry standing without its inventory item is a documented
// inconsistency window.
func (s *ShoppingListStore) promoteIfNeeded(ctx context.Context, userID string, item ShoppingListItem, wasChecked bool, nowChecked bool) {
	if wasChecked || !nowChecked {
		return
	}
	if _, err := s.inventory.Create(ctx, userID, NewInventoryItem{
		Name:          item.Name,
		Quantity:      DefaultQuantity,
		ShelfLifeDays: DefaultShelfLifeDays,
	}); err != nil {
		slog.ErrorContext(ctx, "pantrydb: promoting shopping list entry to inventory",
			"entry", item.ID, "error", err)
	}
}

// List returns the user's shopping list, newest first.
func (s *ShoppingListStore) List(ctx context.Context, userID string) ([]ShoppingListItem, error) {
	query := s.collection(userID).Query.OrderBy("createdAt", firestore.Desc)
	return collectDocuments(query.Documents(ctx), decodeShoppingListItem)
}

// UncheckedNames returns the names of entries not yet checked off, for use
// in recipe generation alongside the pantry.
func (s *ShoppingListStore) UncheckedNames(ctx context.Context, userID string) ([]string, error) {
	items, err := s.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(items))
	for _, item := range items {
		if !item.Checked {
			names = append(names, item.Name)
		}
	}
	return names, nil
}

// Subscribe returns a live feed of the user's shopping list, newest first.
func (s *ShoppingListStore) Subscribe(ctx context.Context, userID string) *Feed[ShoppingListItem] {
	query := s.collection(userID).Query.OrderBy("createdAt", firestore.Desc)
	return Watch(ctx, query, decodeShoppingListItem)
}

func decodeShoppingListItem(doc *firestore.DocumentSnapshot) (ShoppingListItem, error) {
	var item ShoppingListItem
	if err := doc.DataTo(&item); err != nil {
		return ShoppingListItem{}, fmt.Errorf("pantrydb: decoding shopping list entry: %w", err)
	}
	return item, nil
}
