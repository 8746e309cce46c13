// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

package pantrydb

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
)

// ProfileStore keeps the denormalized display copy of user profiles. The
// authentication provider owns the profile; the display name is the only
// field the app writes after signup.
type ProfileStore struct {
	client *firestore.Client
}

func NewProfileStore(client *firestore.Client) *ProfileStore {
	return &ProfileStore{client: client}
}

func (s *ProfileStore) doc(userID string) *firestore.DocumentRef {
	return s.client.Collection("users").Doc(userID)
}

// Get returns the user's profile copy. A missing document yields an empty
// profile rather than an error; the copy is created lazily on first write.
func (s *ProfileStore) Get(ctx context.Context, userID string) (UserProfile, error) {
	snap, err := s.doc(userID).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return UserProfile{}, nil
		}
		return UserProfile{}, fmt.Errorf("pantrydb: fetching profile %s: %w", userID, err)
	}
	var profile UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return UserProfile{}, fmt.Errorf("pantrydb: decoding profile %s: %w", userID, err)
	}
	return profile, nil
}

// UpdateName sets the display name, creating the profile copy if needed.
func (s *ProfileStore) UpdateName(ctx context.Context, userID string, name string) error {
	if _, err := s.doc(userID).Set(ctx, map[string]any{"name": name}, firestore.MergeAll); err != nil {
		return fmt.Errorf("pantrydb: updating profile name for %s: %w", userID, err)
	}
	return nil
}

// EnsureProfile writes the denormalized copy after signup or first login.
func (s *ProfileStore) EnsureProfile(ctx context.Context, userID string, profile UserProfile) error {
	if _, err := s.doc(userID).Set(ctx, profile, firestore.MergeAll); err != nil {
		return fmt.Errorf("pantrydb: ensuring profile for %s: %w", userID, err)
	}
	return nil
}
