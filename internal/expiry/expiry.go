// Copyright (c) MyFridgeAI
// SPDX-License-Identifier: MIT

// Package expiry computes remaining shelf life for perishable items. All
// functions are pure; callers pass the current time so displayed countdowns
// stay correct without background jobs, and results are never cached.
package expiry

import (
	"time"

	"github.com/ProSnigdho/MyFridgeAI/internal/pantrydb"
)

// ExpiringSoonDays is the canonical threshold for the "expiring soon"
// classification, used for both item badges and aggregate counts.
const ExpiringSoonDays = 2

// Remaining is the derived shelf-life state of an item at a point in time.
type Remaining struct {
	// Days is the whole days of shelf life left, never negative.
	Days int `json:"remainingDays"`

	// DecayRatio is the fraction of shelf life remaining, in [0, 1].
	// It is 0 for items with no shelf life at all.
	DecayRatio float64 `json:"decayRatio"`
}

// ExpiringSoon reports whether the item should carry an expiring badge.
func (r Remaining) ExpiringSoon() bool {
	return r.Days <= ExpiringSoonDays
}

// Compute derives the remaining shelf life of an item created at createdAt
// with the given total shelf life. Negative elapsed time from clock skew
// counts as zero elapsed; a negative shelf life counts as zero.
func Compute(shelfLifeDays int, createdAt time.Time, now time.Time) Remaining {
	if shelfLifeDays < 0 {
		shelfLifeDays = 0
	}
	elapsed := int(now.Sub(createdAt).Hours() / 24)
	if elapsed < 0 {
		elapsed = 0
	}
	days := shelfLifeDays - elapsed
	if days < 0 {
		days = 0
	}
	ratio := 0.0
	if shelfLifeDays > 0 {
		ratio = float64(days) / float64(shelfLifeDays)
	}
	return Remaining{Days: days, DecayRatio: ratio}
}

// Item pairs an inventory item with its derived state for view rendering.
type Item struct {
	pantrydb.InventoryItem
	Remaining
	ExpiringSoon bool `json:"expiringSoon"`
}

// Annotate derives the view rows for a snapshot of inventory items.
func Annotate(items []pantrydb.InventoryItem, now time.Time) []Item {
	annotated := make([]Item, len(items))
	for i, item := range items {
		remaining := Compute(item.ShelfLifeDays, item.CreatedAt, now)
		annotated[i] = Item{
			InventoryItem: item,
			Remaining:     remaining,
			ExpiringSoon:  remaining.ExpiringSoon(),
		}
	}
	return annotated
}

// Summary is the aggregate state shown on the home screen stat cards.
type Summary struct {
	// Total is the number of items in the inventory.
	Total int `json:"total"`

	// ExpiringSoon is the number of items at or under the threshold.
	ExpiringSoon int `json:"expiringSoon"`
}

// Summarize counts the total and expiring-soon items in a snapshot.
func Summarize(items []pantrydb.InventoryItem, now time.Time) Summary {
	summary := Summary{Total: len(items)}
	for _, item := range items {
		if Compute(item.ShelfLifeDays, item.CreatedAt, now).ExpiringSoon() {
			summary.ExpiringSoon++
		}
	}
	return summary
}
