// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package pantrydb

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/firestore"
	"golang.org/x/sync/errgroup"
)

// ListOptions narrows a one-shot list read.
type ListOptions struct {
	// Limit caps the number of returned items. Zero means no limit.
	Limit int

	// NamePrefix filters items whose name starts with the prefix. When set,
	// results are ordered by name instead of creation time.
	NamePrefix string
}

// InventoryStore is the authoritative store for a user's perishable items.
// It is the single writer of truth for item existence; views only hold
// read-through copies delivered by Subscribe.
type InventoryStore struct {
	client *firestore.Client
}

func NewInventoryStore(client *firestore.Client) *InventoryStore {
	return &InventoryStore{client: client}
}

func (s *InventoryStore) collection(userID string) *firestore.CollectionRef {
	return s.client.Collection("users").Doc(userID).Collection("inventory")
}

// Create writes a new inventory item for the user. The ID is assigned here
// and the creation timestamp is assigned by the server on write.
func (s *InventoryStore) Create(ctx context.Context, userID string, item NewInventoryItem) (InventoryItem, error) {
	if strings.TrimSpace(item.Name) == "" {
		return InventoryItem{}, fmt.Errorf("pantrydb: inventory item name is required")
	}
	quantity := item.Quantity
	if quantity == "" {
		quantity = DefaultQuantity
	}
	shelfLife := item.ShelfLifeDays
	if shelfLife < 0 {
		shelfLife = 0
	}

	doc := s.collection(userID).NewDoc()
	stored := InventoryItem{
		ID:            doc.ID,
		Name:          item.Name,
		Quantity:      quantity,
		ShelfLifeDays: shelfLife,
		OwnerID:       userID,
	}
	res, err := doc.Create(ctx, stored)
	if err != nil {
		return InventoryItem{}, fmt.Errorf("pantrydb: creating inventory item: %w", err)
	}
	// The server assigns createdAt on write; the returned copy carries the
	// write time so derived shelf-life state is sane without a read-back.
	stored.CreatedAt = res.UpdateTime
	return stored, nil
}

// CreateBatch writes the items as one logical batch. Creations within the
// batch have no relative order. A failure stops nothing already written;
// the error reports the first failed write.
func (s *InventoryStore) CreateBatch(ctx context.Context, userID string, items []NewInventoryItem) ([]InventoryItem, error) {
	created := make([]InventoryItem, len(items))
	var grp errgroup.Group
	for i, item := range items {
		grp.Go(func() error {
			stored, err := s.Create(ctx, userID, item)
			if err != nil {
				return err
			}
			created[i] = stored
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}
	return created, nil
}

// Delete removes an item. Deleting a nonexistent ID is not an error.
func (s *InventoryStore) Delete(ctx context.Context, userID string, id string) error {
	if _, err := s.collection(userID).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("pantrydb: deleting inventory item %s: %w", id, err)
	}
	return nil
}

// List returns the user's items, newest first, or name-ordered when a name
// prefix filter is set.
func (s *InventoryStore) List(ctx context.Context, userID string, opts ListOptions) ([]InventoryItem, error) {
	query := s.query(userID, opts)
	return collectDocuments(query.Documents(ctx), decodeInventoryItem)
}

// IngredientNames returns the distinct item names currently in the pantry,
// preserving newest-first order of first appearance.
func (s *InventoryStore) IngredientNames(ctx context.Context, userID string) ([]string, error) {
	items, err := s.List(ctx, userID, ListOptions{})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(items))
	names := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item.Name))
		if _, ok := seen[key]; ok || key == "" {
			continue
		}
		seen[key] = struct{}{}
		names = append(names, item.Name)
	}
	return names, nil
}

// Subscribe returns a live feed of the user's items, newest first. The feed
// must be stopped when the consumer goes away.
func (s *InventoryStore) Subscribe(ctx context.Context, userID string) *Feed[InventoryItem] {
	return Watch(ctx, s.query(userID, ListOptions{}), decodeInventoryItem)
}

func (s *InventoryStore) query(userID string, opts ListOptions) firestore.Query {
	query := s.collection(userID).Query
	if opts.NamePrefix != "" {
		query = query.OrderBy("name", firestore.Asc).
			StartAt(opts.NamePrefix).
			EndAt(opts.NamePrefix + "\uf8ff")
	} else {
		query = query.OrderBy("createdAt", firestore.Desc)
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	return query
}

func decodeInventoryItem(doc *firestore.DocumentSnapshot) (InventoryItem, error) {
	var item InventoryItem
	if err := doc.DataTo(&item); err != nil {
		return InventoryItem{}, fmt.Errorf("pantrydb: decoding inventory item: %w", err)
	}
	return item, nil
}
