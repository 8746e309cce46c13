package pantrydb

import (
	"context"
	"errors"
	"testing"
)

type fakeInventory struct {
	created []NewInventoryItem
	deleted []string
	err     error
}

func (f *fakeInventory) Create(_ context.Context, _ string, item NewInventoryItem) (InventoryItem, error) {
	if f.err != nil {
		return InventoryItem{}, f.err
	}
	f.created = append(f.created, item)
	return InventoryItem{ID: "new-item", Name: item.Name}, nil
}

func TestPromoteIfNeeded(t *testing.T) {
	entry := ShoppingListItem{ID: "entry1", Name: "Greek Yogurt", OwnerID: "user1"}

	t.Run("checking off creates exactly one inventory item", func(t *testing.T) {
		inventory := &fakeInventory{}
		store := NewShoppingListStore(nil, inventory)

		store.promoteIfNeeded(t.Context(), "user1", entry, false, true)

		if len(inventory.created) != 1 {
			t.Fatalf("expected one created item, got %d", len(inventory.created))
		}
		got := inventory.created[0]
		if got.Name != "Greek Yogurt" {
			t.Fatalf("expected promoted name, got %q", got.Name)
		}
		if got.Quantity != DefaultQuantity {
			t.Fatalf("expected quantity %q, got %q", DefaultQuantity, got.Quantity)
		}
		if got.ShelfLifeDays != DefaultShelfLifeDays {
			t.Fatalf("expected default shelf life, got %d", got.ShelfLifeDays)
		}
	})

	t.Run("unchecking does not touch the inventory", func(t *testing.T) {
		inventory := &fakeInventory{}
		store := NewShoppingListStore(nil, inventory)

		store.promoteIfNeeded(t.Context(), "user1", entry, true, false)

		if len(inventory.created) != 0 {
			t.Fatal("expected no creations on uncheck")
		}
		if len(inventory.deleted) != 0 {
			t.Fatal("unchecking must not delete the promoted item")
		}
	})

	t.Run("re-checking an already checked entry does not promote again", func(t *testing.T) {
		inventory := &fakeInventory{}
		store := NewShoppingListStore(nil, inventory)

		store.promoteIfNeeded(t.Context(), "user1", entry, true, true)

		if len(inventory.created) != 0 {
			t.Fatal("expected no creation for a true to true transition")
		}
	})

	t.Run("promotion failure is swallowed", func(t *testing.T) {
		inventory := &fakeInventory{err: errors.New("unavailable")}
		store := NewShoppingListStore(nil, inventory)

		// Must not panic or propagate; the checked entry stands.
		store.promoteIfNeeded(t.Context(), "user1", entry, false, true)
	})
}
